package preset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"scam/internal/faults"
	"scam/internal/logging"
)

// Extension is the file extension of preset files.
const Extension = ".ini"

const (
	lockFileName = ".scam.lock"
	lockTimeout  = 5 * time.Second
	lockRetry    = 100 * time.Millisecond
)

// ErrPresetExists is returned when a save would replace a preset and the caller
// did not confirm the overwrite.
var ErrPresetExists = errors.New("preset already exists")

// Source identifies which directory a preset lives in.
type Source int

const (
	SourceBuiltin Source = iota
	SourceCustom
)

func (s Source) String() string {
	if s == SourceCustom {
		return "custom"
	}
	return "built-in"
}

// Entry describes a preset file on disk.
type Entry struct {
	Name   string
	Label  string
	Source Source
	Path   string
}

// Store resolves presets across the built-in and custom directories.
type Store struct {
	builtinDir string
	customDir  string
	exclude    map[string]struct{}
	logger     *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithExcluded hides the named files (base names, with extension) from the
// built-in listing. The schema file usually lives next to the built-in presets.
func WithExcluded(files ...string) StoreOption {
	return func(s *Store) {
		for _, name := range files {
			if name = strings.TrimSpace(name); name != "" {
				s.exclude[name] = struct{}{}
			}
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logging.NewComponentLogger(logger, "preset")
		}
	}
}

// NewStore constructs a Store.
func NewStore(builtinDir, customDir string, opts ...StoreOption) *Store {
	s := &Store{
		builtinDir: builtinDir,
		customDir:  customDir,
		exclude:    make(map[string]struct{}),
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CustomDir returns the read/write preset directory.
func (s *Store) CustomDir() string {
	return s.customDir
}

// List returns the names of preset files in dir without their extension. A
// missing directory yields an empty list.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list presets in %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Extension))
	}
	return names, nil
}

// Builtin lists the built-in presets.
func (s *Store) Builtin() ([]Entry, error) {
	return s.list(s.builtinDir, SourceBuiltin)
}

// Custom lists the user presets.
func (s *Store) Custom() ([]Entry, error) {
	return s.list(s.customDir, SourceCustom)
}

// All lists built-in presets followed by user presets.
func (s *Store) All() ([]Entry, error) {
	builtin, err := s.Builtin()
	if err != nil {
		return nil, err
	}
	custom, err := s.Custom()
	if err != nil {
		return nil, err
	}
	return append(builtin, custom...), nil
}

func (s *Store) list(dir string, source Source) ([]Entry, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, nil
	}
	names, err := List(dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		if _, skip := s.exclude[name+Extension]; skip {
			continue
		}
		entries = append(entries, Entry{
			Name:   name,
			Label:  Label(name),
			Source: source,
			Path:   filepath.Join(dir, name+Extension),
		})
	}
	return entries, nil
}

// Resolve finds a preset by name. User presets shadow built-in ones.
func (s *Store) Resolve(name string) (Entry, error) {
	if err := ValidateName(name); err != nil {
		return Entry{}, err
	}
	for _, candidate := range []struct {
		dir    string
		source Source
	}{{s.customDir, SourceCustom}, {s.builtinDir, SourceBuiltin}} {
		if strings.TrimSpace(candidate.dir) == "" {
			continue
		}
		if candidate.source == SourceBuiltin {
			if _, skip := s.exclude[name+Extension]; skip {
				continue
			}
		}
		path := filepath.Join(candidate.dir, name+Extension)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return Entry{Name: name, Label: Label(name), Source: candidate.source, Path: path}, nil
		}
	}
	return Entry{}, faults.Wrap(faults.ErrNotFound, "preset", "resolve", fmt.Sprintf("preset %q", name), nil)
}

// LoadNamed resolves and loads a preset.
func (s *Store) LoadNamed(name string) (*Preset, error) {
	entry, err := s.Resolve(name)
	if err != nil {
		return nil, err
	}
	p, err := Load(entry.Path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("preset loaded",
		logging.String(logging.FieldPreset, entry.Name),
		logging.String("source", entry.Source.String()),
		logging.Int("overrides", p.Len()),
	)
	return p, nil
}

// Exists reports whether a user preset with this name exists.
func (s *Store) Exists(name string) bool {
	if ValidateName(name) != nil {
		return false
	}
	info, err := os.Stat(filepath.Join(s.customDir, name+Extension))
	return err == nil && !info.IsDir()
}

// SaveNamed writes p into the custom directory under p.Name. An existing file
// is only replaced when overwrite is true.
func (s *Store) SaveNamed(ctx context.Context, p *Preset, overwrite bool) (string, error) {
	if err := ValidateName(p.Name); err != nil {
		return "", err
	}
	if strings.TrimSpace(s.customDir) == "" {
		return "", faults.Wrap(faults.ErrConfiguration, "preset", "save", "custom preset directory not configured", nil)
	}
	if err := os.MkdirAll(s.customDir, 0o755); err != nil {
		return "", fmt.Errorf("create preset directory: %w", err)
	}

	lock := flock.New(filepath.Join(s.customDir, lockFileName))
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()
	locked, err := lock.TryLockContext(lockCtx, lockRetry)
	if err != nil {
		return "", fmt.Errorf("acquire preset lock: %w", err)
	}
	if !locked {
		return "", errors.New("another scam instance is saving presets")
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Warn("failed to release preset lock", logging.Error(err))
		}
	}()

	path := filepath.Join(s.customDir, p.Name+Extension)
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%w: %s", ErrPresetExists, p.Name)
		}
	}
	if err := Save(p, path); err != nil {
		return "", err
	}
	s.logger.Info("preset saved",
		logging.String(logging.FieldPreset, p.Name),
		logging.String(logging.FieldPath, path),
		logging.Int("overrides", p.Len()),
	)
	return path, nil
}

// ValidateName rejects names that cannot be used as a preset file name.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return faults.Wrap(faults.ErrValidation, "preset", "name", "preset name is required", nil)
	case trimmed != name:
		return faults.Wrap(faults.ErrValidation, "preset", "name", fmt.Sprintf("preset name %q has surrounding spaces", name), nil)
	case strings.HasPrefix(name, "."):
		return faults.Wrap(faults.ErrValidation, "preset", "name", fmt.Sprintf("preset name %q may not start with a dot", name), nil)
	case strings.ContainsAny(name, `/\:*?"<>|`):
		return faults.Wrap(faults.ErrValidation, "preset", "name", fmt.Sprintf("preset name %q may not contain path separators or reserved characters", name), nil)
	}
	return nil
}

// Label turns a file-style preset name into a display label.
func Label(name string) string {
	spaced := strings.Join(strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(name)), " ")
	if spaced == "" {
		return name
	}
	return cases.Title(language.Und, cases.NoLower).String(spaced)
}

func nameFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
