package session

import (
	"fmt"
	"log/slog"
	"strings"

	"scam/internal/faults"
	"scam/internal/logging"
	"scam/internal/preset"
	"scam/internal/schema"
)

type entry struct {
	kind schema.Kind
	text string
	flag bool
}

// Session is the mutable set of current values for every schema key.
type Session struct {
	schema  *schema.Schema
	entries map[schema.KeyRef]*entry
	sync    bool
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logging.NewComponentLogger(logger, "session")
		}
	}
}

// New creates a session holding the schema defaults.
func New(sch *schema.Schema, opts ...Option) *Session {
	s := &Session{
		schema:  sch,
		entries: make(map[schema.KeyRef]*entry, sch.Len()),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Schema returns the schema backing the session.
func (s *Session) Schema() *schema.Schema {
	return s.schema
}

// Reset sets every key to its default and the sync flag to the schema's own
// default for it.
func (s *Session) Reset() {
	for _, sec := range s.schema.Sections() {
		for _, e := range sec.Entries {
			current := &entry{kind: e.Default.Kind()}
			if current.kind == schema.KindBool {
				current.flag = e.Default.Bool()
			} else {
				current.text = e.Default.String()
			}
			s.entries[e.Ref()] = current
		}
	}
	s.sync = s.schema.SyncDefault()
}

// Apply resets the session and then writes every override of p. The sync
// flag is taken from Aiming.SyncTurnRate without propagating rates. Overrides
// for unknown keys, or whose kind conflicts with the schema (bool versus text),
// are skipped and returned.
func (s *Session) Apply(p *preset.Preset) []schema.KeyRef {
	s.Reset()
	var skipped []schema.KeyRef
	for _, item := range p.Items() {
		if item.Ref == schema.SyncRef {
			if item.Value.Kind() != schema.KindBool {
				skipped = append(skipped, item.Ref)
				continue
			}
			s.setSyncFlag(item.Value.Bool())
			continue
		}
		current, ok := s.entries[item.Ref]
		if !ok {
			skipped = append(skipped, item.Ref)
			continue
		}
		isBool := item.Value.Kind() == schema.KindBool
		switch {
		case current.kind == schema.KindBool && isBool:
			current.flag = item.Value.Bool()
		case current.kind != schema.KindBool && !isBool:
			current.text = item.Value.String()
		default:
			skipped = append(skipped, item.Ref)
		}
	}
	for _, ref := range skipped {
		attrs := append(logging.Ref(ref.Section, ref.Key),
			logging.String(logging.FieldPreset, p.Name),
			logging.String(logging.FieldImpact, "key keeps its current value"),
			logging.String(logging.FieldErrorHint, "remove the key or match the default value type"),
		)
		logging.WarnWithContext(s.logger, "preset override skipped", "preset_key_skipped", attrs...)
	}
	return skipped
}

// SetRaw stores unvalidated text for a non-boolean key. With sync on, a valid
// integer written to either rate key is written to both.
func (s *Session) SetRaw(ref schema.KeyRef, text string) error {
	current, err := s.editable(ref)
	if err != nil {
		return err
	}
	if current.kind == schema.KindBool {
		return faults.Wrap(faults.ErrValidation, "session", "set", fmt.Sprintf("%s is a toggle; set it to true or false", ref), nil)
	}
	if s.sync && schema.IsRateKey(ref) {
		if n, ok := schema.ParseInt(text); ok {
			s.writeRates(n)
			return nil
		}
	}
	current.text = text
	return nil
}

// SetBool stores a toggle value. Setting Aiming.SyncTurnRate is the same as
// SetSync.
func (s *Session) SetBool(ref schema.KeyRef, value bool) error {
	if ref == schema.SyncRef {
		s.SetSync(value)
		return nil
	}
	current, err := s.editable(ref)
	if err != nil {
		return err
	}
	if current.kind != schema.KindBool {
		return faults.Wrap(faults.ErrValidation, "session", "set", fmt.Sprintf("%s is not a toggle", ref), nil)
	}
	current.flag = value
	return nil
}

// Set routes text to SetBool for toggles (accepting true/false in any case)
// and to SetRaw for everything else.
func (s *Session) Set(ref schema.KeyRef, text string) error {
	if ref == schema.SyncRef || s.Kind(ref) == schema.KindBool {
		value, ok := schema.ParseBool(strings.TrimSpace(text))
		if !ok {
			return faults.Wrap(faults.ErrValidation, "session", "set", fmt.Sprintf("%s expects true or false, got %q", ref, text), nil)
		}
		return s.SetBool(ref, value)
	}
	return s.SetRaw(ref, text)
}

// Toggle flips a boolean key (or the sync flag) and returns the new value.
func (s *Session) Toggle(ref schema.KeyRef) (bool, error) {
	if ref == schema.SyncRef {
		s.SetSync(!s.sync)
		return s.sync, nil
	}
	current, ok := s.entries[ref]
	if !ok {
		return false, unknownKey(ref)
	}
	next := !current.flag
	if err := s.SetBool(ref, next); err != nil {
		return false, err
	}
	return next, nil
}

// Kind returns the kind of the key's schema default, or KindString for
// unknown keys.
func (s *Session) Kind(ref schema.KeyRef) schema.Kind {
	if current, ok := s.entries[ref]; ok {
		return current.kind
	}
	return schema.KindString
}

// Text returns the raw text of a non-boolean key.
func (s *Session) Text(ref schema.KeyRef) (string, bool) {
	current, ok := s.entries[ref]
	if !ok || current.kind == schema.KindBool {
		return "", false
	}
	return current.text, true
}

// Bool returns the value of a boolean key. The sync key reports the sync flag.
func (s *Session) Bool(ref schema.KeyRef) (bool, bool) {
	if ref == schema.SyncRef {
		return s.sync, true
	}
	current, ok := s.entries[ref]
	if !ok || current.kind != schema.KindBool {
		return false, false
	}
	return current.flag, true
}

// Display returns the current value as text for any key kind.
func (s *Session) Display(ref schema.KeyRef) string {
	if b, ok := s.Bool(ref); ok {
		return schema.Bool(b).String()
	}
	text, _ := s.Text(ref)
	return text
}

func (s *Session) editable(ref schema.KeyRef) (*entry, error) {
	current, ok := s.entries[ref]
	if !ok {
		return nil, unknownKey(ref)
	}
	if ref.Section == schema.SyncSection {
		return nil, faults.Wrap(faults.ErrValidation, "session", "set", fmt.Sprintf("%s is reserved and cannot be edited", ref), nil)
	}
	return current, nil
}

func unknownKey(ref schema.KeyRef) error {
	return faults.Wrap(faults.ErrNotFound, "session", "set", fmt.Sprintf("unknown key %s", ref), nil)
}
