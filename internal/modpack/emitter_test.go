package modpack_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"scam/internal/faults"
	"scam/internal/modpack"
	"scam/internal/preset"
	"scam/internal/schema"
	"scam/internal/testsupport"
)

type fakeExecutor struct {
	binary string
	args   []string
	lines  []string
	err    error
	seen   string
	block  bool
}

func (f *fakeExecutor) Run(ctx context.Context, binary string, args []string, onOutput func(string)) error {
	f.binary = binary
	f.args = args
	if len(args) > 0 {
		data, _ := os.ReadFile(filepath.Join(args[len(args)-1], "Game", "SCAM.cfg"))
		f.seen = string(data)
	}
	for _, line := range f.lines {
		onOutput(line)
	}
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

func sampleDiff() *preset.Preset {
	diff := preset.New("diff")
	diff.Set(testsupport.FOV, schema.Int(110))
	return diff
}

func TestEmitWithoutPackingKeepsTree(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	emitter := modpack.New(cfg.Mod)

	result, err := emitter.Emit(context.Background(), sampleDiff())
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if result.Packed || !result.Kept {
		t.Fatalf("unexpected result %+v", result)
	}
	if got := testsupport.ReadFile(t, cfg.ModCfgFile()); got != result.Content {
		t.Fatalf("cfg content %q, want %q", got, result.Content)
	}
	if !strings.Contains(result.Content, "      FOV = 110\n") {
		t.Fatalf("unexpected content %q", result.Content)
	}
}

func TestEmitReplacesExistingTree(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	stale := testsupport.WriteFile(t, filepath.Join(cfg.Mod.WorkDir, "stale.txt"), "old")

	if _, err := modpack.New(cfg.Mod).Emit(context.Background(), sampleDiff()); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	testsupport.RequireMissing(t, stale)
}

func TestEmitPacksAndRemovesTree(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedPacker(0))

	result, err := modpack.New(cfg.Mod).Emit(context.Background(), sampleDiff())
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !result.Packed || result.Kept {
		t.Fatalf("unexpected result %+v", result)
	}
	testsupport.RequireMissing(t, cfg.Mod.WorkDir)
	if got := strings.TrimSpace(testsupport.PackerArgs(t, cfg)); got != "pack "+cfg.Mod.WorkDir {
		t.Fatalf("packer args %q", got)
	}
}

func TestEmitKeepWorkDir(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedPacker(0), testsupport.WithKeepWorkDir())

	result, err := modpack.New(cfg.Mod).Emit(context.Background(), sampleDiff())
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !result.Packed || !result.Kept {
		t.Fatalf("unexpected result %+v", result)
	}
	testsupport.ReadFile(t, cfg.ModCfgFile())
}

func TestEmitPackerFailureKeepsTree(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedPacker(3))

	result, err := modpack.New(cfg.Mod).Emit(context.Background(), sampleDiff())
	if !errors.Is(err, faults.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
	if result.Packed || !result.Kept {
		t.Fatalf("unexpected result %+v", result)
	}
	testsupport.ReadFile(t, cfg.ModCfgFile())
	if msg := faults.UserMessage(err, "creating a mod"); !strings.HasPrefix(msg, "Failed to create mod: ") {
		t.Fatalf("unexpected user message %q", msg)
	}
}

func TestEmitMissingPacker(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Mod.Pack = true

	result, err := modpack.New(cfg.Mod).Emit(context.Background(), sampleDiff())
	if !errors.Is(err, faults.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
	if !strings.Contains(err.Error(), "packer not found") {
		t.Fatalf("unexpected error %v", err)
	}
	if !result.Kept {
		t.Fatal("expected the working tree to be reported as kept")
	}
	if got := testsupport.ReadFile(t, cfg.ModCfgFile()); got != result.Content {
		t.Fatalf("cfg on disk %q, want %q", got, result.Content)
	}
}

func TestEmitUsesExecutorAndForwardsArgs(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedPacker(0))
	cfg.Mod.CfgPath = "Game/SCAM.cfg"
	cfg.Mod.PackerArgs = []string{"pack", "--version", "V11"}
	fake := &fakeExecutor{lines: []string{"packing", ""}}

	result, err := modpack.New(cfg.Mod, modpack.WithExecutor(fake)).Emit(context.Background(), sampleDiff())
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if fake.binary != cfg.Mod.Packer {
		t.Fatalf("binary %q, want %q", fake.binary, cfg.Mod.Packer)
	}
	want := []string{"pack", "--version", "V11", cfg.Mod.WorkDir}
	if strings.Join(fake.args, " ") != strings.Join(want, " ") {
		t.Fatalf("args %v, want %v", fake.args, want)
	}
	if fake.seen != result.Content {
		t.Fatalf("packer saw %q, want %q", fake.seen, result.Content)
	}
}

func TestEmitTimeout(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedPacker(0))
	cfg.Mod.PackTimeoutSeconds = 1
	fake := &fakeExecutor{block: true}

	start := time.Now()
	_, err := modpack.New(cfg.Mod, modpack.WithExecutor(fake)).Emit(context.Background(), sampleDiff())
	if !errors.Is(err, faults.ErrExternalTool) || !strings.Contains(err.Error(), "timed out") {
		t.Fatalf("expected timeout error, got %v", err)
	}
	if time.Since(start) > 10*time.Second {
		t.Fatal("timeout not enforced")
	}
	testsupport.ReadFile(t, cfg.ModCfgFile())
}
