package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"scam/internal/config"
	"scam/internal/editor"
	"scam/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error

	runID  string
	log    *slog.Logger
	logCtx context.Context
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		runID:        uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = err
				return
			}
		}
		c.config = cfg
		c.configPath = resolved
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// logger builds the invocation logger once. Console output goes to stderr
// unless fileOnly is set, in which case only the configured log file is
// written.
func (c *commandContext) logger(ctx context.Context, fileOnly bool) (*slog.Logger, context.Context, error) {
	if c.log != nil {
		return c.log, c.logCtx, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, ctx, err
	}
	var logger *slog.Logger
	if fileOnly {
		logger, err = logging.NewFileOnlyFromConfig(cfg)
	} else {
		logger, err = logging.NewFromConfig(cfg)
	}
	if err != nil {
		return nil, ctx, err
	}
	ctx = logging.WithRunID(ctx, c.runID)
	c.log = logging.WithContext(ctx, logger)
	c.logCtx = ctx
	return c.log, c.logCtx, nil
}

func (c *commandContext) openEditor(cmd *cobra.Command, fileOnly bool) (*editor.Editor, context.Context, error) {
	logger, ctx, err := c.logger(cmd.Context(), fileOnly)
	if err != nil {
		return nil, nil, err
	}
	cfg, _ := c.ensureConfig()
	ed, err := editor.OpenWithLogger(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return ed, ctx, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
