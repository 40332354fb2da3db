package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeMod(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.SchemaFile) == "" {
		c.Paths.SchemaFile = defaultSchemaFile
	}
	if c.Paths.SchemaFile, err = expandPath(strings.TrimSpace(c.Paths.SchemaFile)); err != nil {
		return fmt.Errorf("paths.schema_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.BuiltinDir) == "" {
		c.Paths.BuiltinDir = defaultBuiltinDir
	}
	if c.Paths.BuiltinDir, err = expandPath(strings.TrimSpace(c.Paths.BuiltinDir)); err != nil {
		return fmt.Errorf("paths.builtin_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CustomDir) == "" {
		c.Paths.CustomDir = defaultCustomDir
	}
	if c.Paths.CustomDir, err = expandPath(strings.TrimSpace(c.Paths.CustomDir)); err != nil {
		return fmt.Errorf("paths.custom_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMod() error {
	var err error
	if strings.TrimSpace(c.Mod.WorkDir) == "" {
		c.Mod.WorkDir = defaultModWorkDir
	}
	if c.Mod.WorkDir, err = expandPath(strings.TrimSpace(c.Mod.WorkDir)); err != nil {
		return fmt.Errorf("mod.work_dir: %w", err)
	}
	c.Mod.CfgPath = strings.Trim(strings.TrimSpace(strings.ReplaceAll(c.Mod.CfgPath, `\`, "/")), "/")
	if c.Mod.CfgPath == "" {
		c.Mod.CfgPath = defaultModCfgPath
	}
	if strings.TrimSpace(c.Mod.Packer) == "" {
		c.Mod.Packer = defaultPackerPath
	}
	if c.Mod.Packer, err = expandPath(strings.TrimSpace(c.Mod.Packer)); err != nil {
		return fmt.Errorf("mod.packer: %w", err)
	}
	args := make([]string, 0, len(c.Mod.PackerArgs))
	for _, arg := range c.Mod.PackerArgs {
		if arg = strings.TrimSpace(arg); arg != "" {
			args = append(args, arg)
		}
	}
	c.Mod.PackerArgs = args
	if c.Mod.PackTimeoutSeconds < 0 {
		c.Mod.PackTimeoutSeconds = 0
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
