package testsupport

import (
	"path/filepath"
	"testing"

	"scam/internal/config"
)

// BuiltinPresetText is a recommended preset touching one key per kind.
const BuiltinPresetText = `[General]
FOV = 100
ShowHints = false

[MovementParams]
SprintSpeed = 2.0
`

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The schema file is written from SchemaText into the built-in directory and
// packing is disabled unless WithStubbedPacker is applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.BuiltinDir = filepath.Join(base, "default_ini")
	cfgVal.Paths.SchemaFile = filepath.Join(cfgVal.Paths.BuiltinDir, "default_values.ini")
	cfgVal.Paths.CustomDir = filepath.Join(base, "custom_ini")
	cfgVal.Mod.WorkDir = filepath.Join(base, "z_SCAMMovementAiming_P")
	cfgVal.Mod.Packer = filepath.Join(base, "repak", "repak")
	cfgVal.Mod.Pack = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	WriteFile(t, cfgVal.Paths.SchemaFile, SchemaText)

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSchema replaces the schema file content.
func WithSchema(text string) ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, b.cfg.Paths.SchemaFile, text)
	}
}

// WithBuiltinPreset writes a read-only preset named name.
func WithBuiltinPreset(name, text string) ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, filepath.Join(b.cfg.Paths.BuiltinDir, name+".ini"), text)
	}
}

// WithCustomPreset writes a user preset named name.
func WithCustomPreset(name, text string) ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, filepath.Join(b.cfg.Paths.CustomDir, name+".ini"), text)
	}
}

// WithStubbedPacker enables packing with a stub packer exiting with exitCode.
func WithStubbedPacker(exitCode int) ConfigOption {
	return func(b *configBuilder) {
		WriteStubExecutable(b.t, b.cfg.Mod.Packer, exitCode)
		b.cfg.Mod.Pack = true
	}
}

// WithKeepWorkDir keeps the mod working tree after a successful pack.
func WithKeepWorkDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Mod.KeepWorkDir = true
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.CustomDir)
}

// PackerArgs returns the arguments recorded by the stub packer, one line per
// invocation.
func PackerArgs(t testing.TB, cfg *config.Config) string {
	t.Helper()
	return ReadFile(t, cfg.Mod.Packer+".args")
}
