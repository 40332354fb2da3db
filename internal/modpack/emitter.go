package modpack

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"scam/internal/config"
	"scam/internal/faults"
	"scam/internal/logging"
	"scam/internal/preset"
)

const lockSuffix = ".lock"

// Result describes one emission.
type Result struct {
	WorkDir  string
	CfgFile  string
	Content  string
	Packed   bool
	Kept     bool
	Duration time.Duration
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(e *Emitter) {
		if exec != nil {
			e.exec = exec
		}
	}
}

// WithLogger sets the emitter logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Emitter) {
		if logger != nil {
			e.logger = logging.NewComponentLogger(logger, "modpack")
		}
	}
}

// Emitter writes mod working trees and runs the packer.
type Emitter struct {
	workDir     string
	cfgPath     string
	packer      string
	packerArgs  []string
	pack        bool
	keepWorkDir bool
	timeout     time.Duration
	exec        Executor
	logger      *slog.Logger
}

// New constructs an Emitter from the mod configuration.
func New(cfg config.Mod, opts ...Option) *Emitter {
	e := &Emitter{
		workDir:     cfg.WorkDir,
		cfgPath:     cfg.CfgPath,
		packer:      strings.TrimSpace(cfg.Packer),
		packerArgs:  append([]string(nil), cfg.PackerArgs...),
		pack:        cfg.Pack,
		keepWorkDir: cfg.KeepWorkDir,
		timeout:     time.Duration(cfg.PackTimeoutSeconds) * time.Second,
		exec:        commandExecutor{},
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetPack overrides whether Emit runs the packer.
func (e *Emitter) SetPack(pack bool) { e.pack = pack }

// SetKeepWorkDir overrides whether the working tree survives a successful pack.
func (e *Emitter) SetKeepWorkDir(keep bool) { e.keepWorkDir = keep }

// CfgFile returns the path of the generated cfg file.
func (e *Emitter) CfgFile() string {
	return filepath.Join(e.workDir, filepath.FromSlash(e.cfgPath))
}

// Emit renders diff into a fresh working tree and, when packing is enabled,
// runs the packer over it.
func (e *Emitter) Emit(ctx context.Context, diff *preset.Preset) (Result, error) {
	start := time.Now()
	result := Result{WorkDir: e.workDir, CfgFile: e.CfgFile(), Content: Render(diff)}
	if strings.TrimSpace(e.workDir) == "" {
		return result, faults.Wrap(faults.ErrConfiguration, "modpack", "emit", "mod work directory not configured", nil)
	}

	unlock, err := e.lock(ctx)
	if err != nil {
		return result, err
	}
	defer unlock()

	if err := e.writeTree(result.CfgFile, result.Content); err != nil {
		return result, err
	}
	overrides := 0
	if diff != nil {
		overrides = diff.Len()
	}
	e.logger.Info("mod tree written",
		logging.String(logging.FieldPath, result.CfgFile),
		logging.Int("overrides", overrides),
	)

	if !e.pack {
		result.Kept = true
		result.Duration = time.Since(start)
		return result, nil
	}

	// The tree stays on disk for inspection when the packer is unusable.
	packer, err := e.resolvePacker()
	if err != nil {
		result.Kept = true
		result.Duration = time.Since(start)
		return result, err
	}
	if err := e.runPacker(ctx, packer); err != nil {
		result.Kept = true
		result.Duration = time.Since(start)
		return result, err
	}
	result.Packed = true

	if e.keepWorkDir {
		result.Kept = true
	} else if err := os.RemoveAll(e.workDir); err != nil {
		result.Kept = true
		logging.WarnWithContext(e.logger, "failed to remove mod tree", "mod_cleanup_failed",
			logging.String(logging.FieldPath, e.workDir),
			logging.Error(err),
			logging.String(logging.FieldImpact, "stale working tree left on disk"),
			logging.String(logging.FieldErrorHint, "delete the directory manually"),
		)
	}
	result.Duration = time.Since(start)
	e.logger.Info("mod created",
		logging.String(logging.FieldPath, e.workDir),
		logging.Bool("kept", result.Kept),
		logging.Duration("duration", result.Duration),
	)
	return result, nil
}

func (e *Emitter) resolvePacker() (string, error) {
	if e.packer == "" {
		return "", faults.Wrap(faults.ErrExternalTool, "modpack", "pack", "packer not configured", nil)
	}
	path, err := exec.LookPath(e.packer)
	if err != nil {
		return "", faults.Wrap(faults.ErrExternalTool, "modpack", "pack", "packer not found", err)
	}
	return path, nil
}

func (e *Emitter) lock(ctx context.Context) (func(), error) {
	parent := filepath.Dir(filepath.Clean(e.workDir))
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, fmt.Errorf("create mod parent directory: %w", err)
	}
	lock := flock.New(filepath.Clean(e.workDir) + lockSuffix)
	lockCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	locked, err := lock.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("acquire mod lock: %w", err)
	}
	if !locked {
		return nil, errors.New("another scam instance is creating a mod")
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			e.logger.Warn("failed to release mod lock", logging.Error(err))
		}
		_ = os.Remove(lock.Path())
	}, nil
}

func (e *Emitter) writeTree(cfgFile, content string) error {
	if err := os.RemoveAll(e.workDir); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear mod tree: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfgFile), 0o755); err != nil {
		return fmt.Errorf("create mod tree: %w", err)
	}
	if err := os.WriteFile(cfgFile, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write mod cfg: %w", err)
	}
	return nil
}

func (e *Emitter) runPacker(ctx context.Context, packer string) error {
	packCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		packCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	args := append(append([]string(nil), e.packerArgs...), e.workDir)
	e.logger.Debug("running packer",
		logging.String("command", packer),
		logging.Strings("args", args),
	)
	err := e.exec.Run(packCtx, packer, args, func(line string) {
		if line = strings.TrimSpace(line); line != "" {
			e.logger.Debug("packer output", logging.String("line", line))
		}
	})
	if err != nil {
		if errors.Is(packCtx.Err(), context.DeadlineExceeded) {
			return faults.Wrap(faults.ErrExternalTool, "modpack", "pack", fmt.Sprintf("packer timed out after %s", e.timeout), err)
		}
		return faults.Wrap(faults.ErrExternalTool, "modpack", "pack", "packer failed", err)
	}
	return nil
}
