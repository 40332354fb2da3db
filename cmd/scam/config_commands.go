package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"scam/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			var err error
			if target == "" {
				target, err = config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
			} else if target, err = config.ExpandPath(target); err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			printf(cmd, "Wrote sample configuration to %s\n", target)
			printf(cmd, "Point builtin_dir and schema_file at your game data before running scam.\n")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			printf(cmd, "Config path: %s\n", ctx.configPath)
			if !ctx.configSeen {
				printf(cmd, "Config file did not exist; defaults were used\n")
			}
			logFile := cfg.LogFile()
			if logFile == "" {
				logFile = "(disabled)"
			}
			rows := [][]string{
				{"Schema file", cfg.Paths.SchemaFile},
				{"Built-in presets", cfg.Paths.BuiltinDir},
				{"Custom presets", cfg.Paths.CustomDir},
				{"Mod cfg", cfg.ModCfgFile()},
				{"Packer", packerSummary(cfg)},
				{"Log file", logFile},
			}
			printf(cmd, "%s", renderTable([]string{"Setting", "Value"}, rows, nil))
			printf(cmd, "Configuration valid\n")
			return nil
		},
	}
}

func packerSummary(cfg *config.Config) string {
	if !cfg.Mod.Pack {
		return "(disabled)"
	}
	return strings.Join(append([]string{cfg.Mod.Packer}, cfg.Mod.PackerArgs...), " ")
}
