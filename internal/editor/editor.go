package editor

import (
	"context"
	"log/slog"
	"strings"

	"scam/internal/config"
	"scam/internal/faults"
	"scam/internal/logging"
	"scam/internal/modpack"
	"scam/internal/preset"
	"scam/internal/schema"
	"scam/internal/session"
)

// DefaultName labels the session state after LoadDefault.
const DefaultName = "default"

// Editor owns one editing session.
type Editor struct {
	schema  *schema.Schema
	store   *preset.Store
	session *session.Session
	emitter *modpack.Emitter
	logger  *slog.Logger
	current string
	skipped []schema.KeyRef
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the editor logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New assembles an Editor from already constructed parts. The session starts
// at the schema defaults.
func New(sch *schema.Schema, store *preset.Store, emitter *modpack.Emitter, opts ...Option) *Editor {
	e := &Editor{
		schema:  sch,
		store:   store,
		emitter: emitter,
		logger:  logging.NewNop(),
		current: DefaultName,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.session = session.New(sch, session.WithLogger(e.logger))
	e.logger = logging.NewComponentLogger(e.logger, "editor")
	return e
}

// Open loads the schema named by cfg and builds the store and emitter around it.
func Open(cfg *config.Config, opts ...modpack.Option) (*Editor, error) {
	return OpenWithLogger(cfg, logging.NewNop(), opts...)
}

// OpenWithLogger is Open with an explicit logger shared by every component.
func OpenWithLogger(cfg *config.Config, logger *slog.Logger, opts ...modpack.Option) (*Editor, error) {
	if cfg == nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "editor", "open", "configuration required", nil)
	}
	sch, err := schema.LoadFile(cfg.Paths.SchemaFile)
	if err != nil {
		return nil, err
	}
	store := preset.NewStore(cfg.Paths.BuiltinDir, cfg.Paths.CustomDir,
		preset.WithExcluded(cfg.SchemaFileName()),
		preset.WithLogger(logger),
	)
	emitter := modpack.New(cfg.Mod, append([]modpack.Option{modpack.WithLogger(logger)}, opts...)...)
	logger.Debug("schema loaded",
		logging.String(logging.FieldPath, cfg.Paths.SchemaFile),
		logging.Int("keys", sch.Len()),
	)
	return New(sch, store, emitter, WithLogger(logger)), nil
}

// Schema returns the loaded schema.
func (e *Editor) Schema() *schema.Schema { return e.schema }

// Session returns the live session state.
func (e *Editor) Session() *session.Session { return e.session }

// Store returns the preset store.
func (e *Editor) Store() *preset.Store { return e.store }

// Emitter returns the mod emitter.
func (e *Editor) Emitter() *modpack.Emitter { return e.emitter }

// Current returns the name of the preset last loaded (DefaultName after
// LoadDefault).
func (e *Editor) Current() string { return e.current }

// Skipped returns the overrides ignored by the last LoadPreset.
func (e *Editor) Skipped() []schema.KeyRef {
	return append([]schema.KeyRef(nil), e.skipped...)
}

// LoadDefault resets every key to its default value.
func (e *Editor) LoadDefault() {
	e.session.Reset()
	e.current = DefaultName
	e.skipped = nil
	e.logger.Info("defaults loaded")
}

// LoadPreset resets the session and applies the named preset. Custom presets
// shadow built-in ones of the same name.
func (e *Editor) LoadPreset(name string) error {
	p, err := e.store.LoadNamed(strings.TrimSpace(name))
	if err != nil {
		return err
	}
	e.skipped = e.session.Apply(p)
	e.current = p.Name
	e.logger.Info("preset loaded",
		logging.String(logging.FieldPreset, p.Name),
		logging.Int("overrides", p.Len()),
		logging.Int("skipped", len(e.skipped)),
	)
	return nil
}

// Presets lists built-in presets followed by custom ones.
func (e *Editor) Presets() ([]preset.Entry, error) {
	return e.store.All()
}

// CheckExportable returns the current diff when the session may be saved or
// exported.
func (e *Editor) CheckExportable() (*preset.Preset, error) {
	if invalid := e.session.Invalid(); len(invalid) > 0 {
		refs := make([]string, 0, len(invalid))
		for _, ref := range invalid {
			refs = append(refs, ref.String())
		}
		return nil, faults.Wrap(faults.ErrValidation, "editor", "check", "invalid values: "+strings.Join(refs, ", "), nil)
	}
	diff := e.session.Diff()
	if diff.IsEmpty() {
		return nil, faults.Wrap(faults.ErrNoChanges, "editor", "check", "no values differ from the defaults", nil)
	}
	return diff, nil
}

// SavePreset writes the current overrides as the named custom preset. An
// existing preset is only replaced when overwrite is true; otherwise the
// error matches preset.ErrPresetExists.
func (e *Editor) SavePreset(ctx context.Context, name string, overwrite bool) (string, error) {
	name = strings.TrimSpace(name)
	if err := preset.ValidateName(name); err != nil {
		return "", err
	}
	diff, err := e.CheckExportable()
	if err != nil {
		e.logRejection("save", err)
		return "", err
	}
	diff.Name = name
	path, err := e.store.SaveNamed(ctx, diff, overwrite)
	if err != nil {
		return "", err
	}
	e.current = name
	return path, nil
}

// CreateMod renders the current overrides and runs the packer.
func (e *Editor) CreateMod(ctx context.Context) (modpack.Result, error) {
	diff, err := e.CheckExportable()
	if err != nil {
		e.logRejection("mod", err)
		return modpack.Result{}, err
	}
	result, err := e.emitter.Emit(ctx, diff)
	if err != nil {
		logging.ErrorWithContext(e.logger, "mod creation failed", "mod_failed",
			logging.Error(err),
			logging.String(logging.FieldPath, result.WorkDir),
			logging.String(logging.FieldErrorHint, "inspect the working tree and packer output"),
		)
		return result, err
	}
	return result, nil
}

func (e *Editor) logRejection(operation string, err error) {
	e.logger.Info("request rejected",
		logging.String("operation", operation),
		logging.String("reason", err.Error()),
	)
}
