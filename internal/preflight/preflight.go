package preflight

import (
	"context"

	"scam/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// The packer is only checked when packing is enabled.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckSchema(cfg.Paths.SchemaFile),
		CheckDirectoryAccess("Built-in presets", cfg.Paths.BuiltinDir, AccessRead),
		CheckPresets("Built-in preset files", cfg.Paths.BuiltinDir, cfg.SchemaFileName()),
		CheckCreatableDir("Custom presets", cfg.Paths.CustomDir),
		CheckPresets("Custom preset files", cfg.Paths.CustomDir, ""),
		CheckCreatableDir("Mod working tree", cfg.Mod.WorkDir),
	}
	if cfg.Mod.Pack {
		results = append(results, CheckPacker(cfg.Mod.Packer))
	}
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckCreatableDir("Log directory", cfg.Paths.LogDir))
	}

	select {
	case <-ctx.Done():
		results = append(results, Result{Name: "Preflight", Detail: ctx.Err().Error()})
	default:
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
