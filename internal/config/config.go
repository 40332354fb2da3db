package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the data file locations.
type Paths struct {
	SchemaFile string `toml:"schema_file"`
	BuiltinDir string `toml:"builtin_dir"`
	CustomDir  string `toml:"custom_dir"`
	LogDir     string `toml:"log_dir"`
}

// Mod contains configuration for mod emission and packing.
type Mod struct {
	WorkDir            string   `toml:"work_dir"`
	CfgPath            string   `toml:"cfg_path"`
	Packer             string   `toml:"packer"`
	PackerArgs         []string `toml:"packer_args"`
	Pack               bool     `toml:"pack"`
	KeepWorkDir        bool     `toml:"keep_work_dir"`
	PackTimeoutSeconds int      `toml:"pack_timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for scam.
//
// Configuration sections:
//   - Paths: schema file, preset directories, optional log directory
//   - Mod: working tree layout and the external packer invocation
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Mod     Mod     `toml:"mod"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the per-user configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/scam/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config
// has all path fields expanded and normalized. A missing file is not an error;
// defaults are used and exists is false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// resolveConfigPath prefers an explicit path, then ./scam.toml, then the
// per-user file.
func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	projectPath, err := filepath.Abs("scam.toml")
	if err != nil {
		return "", false, err
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	return defaultPath, false, nil
}

// LogFile returns the log file path, or "" when file logging is disabled.
func (c *Config) LogFile() string {
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return ""
	}
	return filepath.Join(c.Paths.LogDir, defaultLogFileName)
}

// SchemaFileName returns the base name of the schema file, used to hide it from
// the built-in preset listing when both share a directory.
func (c *Config) SchemaFileName() string {
	return filepath.Base(c.Paths.SchemaFile)
}

// ModCfgFile returns the absolute path of the generated cfg file.
func (c *Config) ModCfgFile() string {
	return filepath.Join(c.Mod.WorkDir, filepath.FromSlash(c.Mod.CfgPath))
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
