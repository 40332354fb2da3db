package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"scam/internal/faults"
	"scam/internal/testsupport"
)

func TestSchemaCommandListsKeys(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "schema")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	requireContains(t, out, "FOV")
	requireContains(t, out, "Field of view")
	requireContains(t, out, "SyncTurnRate")

	out, _, err = env.run(t, "schema", "--section", "aiming")
	if err != nil {
		t.Fatalf("schema --section: %v", err)
	}
	requireContains(t, out, "SyncTurnRate")
	requireNotContains(t, out, "WalkSpeed")

	if _, _, err := env.run(t, "schema", "--section", "Missing"); err == nil {
		t.Fatal("expected error for unknown section")
	}
}

func TestPresetsCommandListsBothSources(t *testing.T) {
	env := setupCLITestEnv(t,
		testsupport.WithBuiltinPreset("fast_sprint", testsupport.BuiltinPresetText),
		testsupport.WithCustomPreset("mine", "[General]\nFOV = 120\n"),
	)

	out, _, err := env.run(t, "presets")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	requireContains(t, out, "Fast Sprint")
	requireContains(t, out, "built-in")
	requireContains(t, out, "mine")
	requireContains(t, out, "custom")
	requireNotContains(t, out, "default_values")
}

func TestShowMarksChangedAndInvalidValues(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "show", "--changed", "--set", "General.FOV=110", "--set", "MovementParams.WalkSpeed=fast")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Preset: default")
	requireContains(t, out, "110")
	requireContains(t, out, "changed")
	requireContains(t, out, "invalid")
	requireNotContains(t, out, "SprintSpeed")
}

func TestShowRejectsUnknownKeys(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := env.run(t, "show", "--set", "General.Nope=1")
	if !errors.Is(err, faults.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if _, _, err := env.run(t, "show", "--set", "FOV"); err == nil {
		t.Fatal("expected malformed --set to fail")
	}
}

func TestDiffPrintsPresetText(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithBuiltinPreset("fast_sprint", testsupport.BuiltinPresetText))

	out, _, err := env.run(t, "diff", "--preset", "fast_sprint")
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	want := "[General]\nFOV = 100\nShowHints = False\n\n[MovementParams]\nSprintSpeed = 2.0\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("diff output mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffWithSyncCopiesTurnRate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "diff", "--sync", "--set", "MovementParams.BaseTurnRate=150")
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	want := "[MovementParams]\nBaseTurnRate = 150\nBaseLookUpRate = 150\n\n[Aiming]\nSyncTurnRate = True\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("diff output mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveRequiresChanges(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := env.run(t, "save", "mine")
	if err == nil {
		t.Fatal("expected save without changes to fail")
	}
	if got := err.Error(); got != "Make changes before saving!" {
		t.Fatalf("unexpected message %q", got)
	}
	testsupport.RequireMissing(t, filepath.Join(env.cfg.Paths.CustomDir, "mine.ini"))

	_, _, err = env.run(t, "save", "mine", "--set", "General.FOV=")
	if err == nil || err.Error() != "Please verify all values are correct!" {
		t.Fatalf("expected validation message, got %v", err)
	}
	testsupport.RequireMissing(t, filepath.Join(env.cfg.Paths.CustomDir, "mine.ini"))
}

func TestSaveConfirmsOverwrite(t *testing.T) {
	env := setupCLITestEnv(t)
	path := filepath.Join(env.cfg.Paths.CustomDir, "mine.ini")

	out, _, err := env.run(t, "save", "mine", "--set", "General.FOV=110")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	requireContains(t, out, "Saved preset mine")
	if got := testsupport.ReadFile(t, path); got != "[General]\nFOV = 110\n" {
		t.Fatalf("unexpected preset text %q", got)
	}

	out, _, err = env.runWithInput(t, "n\n", "save", "mine", "--set", "General.FOV=120")
	if err != nil {
		t.Fatalf("save declined: %v", err)
	}
	requireContains(t, out, "Save cancelled")
	if got := testsupport.ReadFile(t, path); got != "[General]\nFOV = 110\n" {
		t.Fatalf("declined overwrite changed the file: %q", got)
	}

	if _, _, err := env.runWithInput(t, "y\n", "save", "mine", "--set", "General.FOV=120"); err != nil {
		t.Fatalf("save confirmed: %v", err)
	}
	if got := testsupport.ReadFile(t, path); got != "[General]\nFOV = 120\n" {
		t.Fatalf("confirmed overwrite not written: %q", got)
	}

	if _, _, err := env.run(t, "save", "mine", "--overwrite", "--set", "General.FOV=130"); err != nil {
		t.Fatalf("save --overwrite: %v", err)
	}
	if got := testsupport.ReadFile(t, path); got != "[General]\nFOV = 130\n" {
		t.Fatalf("--overwrite not written: %q", got)
	}
}

func TestModDryRunPrintsCfg(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "mod", "--dry-run", "--set", "General.FOV=110")
	if err != nil {
		t.Fatalf("mod --dry-run: %v", err)
	}
	want := "CustomPlayer : struct.begin {refurl=../ObjPrototypes.cfg; refkey=Player}\n" +
		"   General : struct.begin\n" +
		"      FOV = 110\n" +
		"   struct.end\n" +
		"struct.end"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
	testsupport.RequireMissing(t, env.cfg.Mod.WorkDir)
}

func TestModWithoutPackWritesTree(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedPacker(0))

	out, _, err := env.run(t, "mod", "--no-pack", "--set", "General.FOV=110")
	if err != nil {
		t.Fatalf("mod --no-pack: %v", err)
	}
	requireContains(t, out, "Mod cfg written to")
	cfgFile := filepath.Join(env.cfg.Mod.WorkDir, filepath.FromSlash(env.cfg.Mod.CfgPath))
	requireContains(t, testsupport.ReadFile(t, cfgFile), "FOV = 110")
	testsupport.RequireMissing(t, env.cfg.Mod.Packer+".args")
}

func TestModPacksAndCleansUp(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedPacker(0))

	out, _, err := env.run(t, "mod", "--set", "General.FOV=110")
	if err != nil {
		t.Fatalf("mod: %v", err)
	}
	requireContains(t, out, "Mod packed")
	requireContains(t, testsupport.PackerArgs(t, env.cfg), env.cfg.Mod.WorkDir)
	testsupport.RequireMissing(t, env.cfg.Mod.WorkDir)
}

func TestModKeepsTreeWhenPackerFails(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedPacker(3))

	_, stderr, err := env.run(t, "mod", "--set", "General.FOV=110")
	if !errors.Is(err, faults.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
	requireContains(t, err.Error(), "Failed to create mod")
	requireContains(t, stderr, "Working tree kept at")
	if _, statErr := os.Stat(env.cfg.Mod.WorkDir); statErr != nil {
		t.Fatalf("expected working tree to remain: %v", statErr)
	}
}

func TestModRequiresChanges(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedPacker(0))

	_, _, err := env.run(t, "mod")
	if err == nil || err.Error() != "Make changes before creating a mod!" {
		t.Fatalf("expected no-changes message, got %v", err)
	}
	testsupport.RequireMissing(t, env.cfg.Mod.Packer+".args")
}

func TestDoctorReportsFailures(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "doctor")
	if err != nil {
		t.Fatalf("doctor: %v\n%s", err, out)
	}
	requireContains(t, out, "Schema")
	requireContains(t, out, "ok")

	if err := os.Remove(env.cfg.Paths.SchemaFile); err != nil {
		t.Fatalf("remove schema: %v", err)
	}
	out, _, err = env.run(t, "doctor")
	if err == nil {
		t.Fatal("expected doctor to fail without a schema file")
	}
	requireContains(t, out, "fail")
}

func TestConfigCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, env.configPath)
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "(disabled)")

	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "", nil)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, "", nil); err == nil {
		t.Fatal("expected init to refuse overwriting")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, "", nil); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestLogLevelFlagIsValidated(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := env.run(t, "--log-level", "loud", "schema"); err == nil {
		t.Fatal("expected invalid log level to fail")
	}
}
