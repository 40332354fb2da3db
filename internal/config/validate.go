package config

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMod(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if filepath.Clean(c.Paths.BuiltinDir) == filepath.Clean(c.Paths.CustomDir) {
		return errors.New("paths.custom_dir must differ from paths.builtin_dir")
	}
	return nil
}

func (c *Config) validateMod() error {
	if strings.HasPrefix(c.Mod.CfgPath, "../") || path.Clean(c.Mod.CfgPath) != c.Mod.CfgPath || c.Mod.CfgPath == ".." {
		return fmt.Errorf("mod.cfg_path %q must be a clean path inside mod.work_dir", c.Mod.CfgPath)
	}
	if !strings.EqualFold(path.Ext(c.Mod.CfgPath), ".cfg") {
		return fmt.Errorf("mod.cfg_path %q must name a .cfg file", c.Mod.CfgPath)
	}
	work := filepath.Clean(c.Mod.WorkDir)
	for name, dir := range map[string]string{
		"paths.builtin_dir": c.Paths.BuiltinDir,
		"paths.custom_dir":  c.Paths.CustomDir,
	} {
		if within(work, dir) || within(dir, work) {
			return fmt.Errorf("mod.work_dir must not overlap %s; it is deleted after packing", name)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
}

func within(parent, child string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(child))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
