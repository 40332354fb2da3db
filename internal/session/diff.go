package session

import (
	"scam/internal/preset"
	"scam/internal/schema"
)

// Changed reports whether ref's current rendering differs from its default.
// For the sync key this compares the sync flag with its schema default.
func (s *Session) Changed(ref schema.KeyRef) bool {
	if ref == schema.SyncRef {
		return s.sync != s.schema.SyncDefault()
	}
	current, ok := s.entries[ref]
	if !ok {
		return false
	}
	def, _ := s.schema.Default(ref)
	if current.kind == schema.KindBool {
		return current.flag != def.Bool()
	}
	return current.text != def.String()
}

// Diff returns the overrides needed to reproduce the session from the
// defaults. The sync section is never diffed generically; instead
// Aiming.SyncTurnRate = True is appended whenever sync is on, even if that is
// also its default. Changed text is typed with schema.Coerce.
func (s *Session) Diff() *preset.Preset {
	diff := preset.New("")
	for _, sec := range s.schema.Sections() {
		if sec.Name == schema.SyncSection {
			continue
		}
		for _, e := range sec.Entries {
			ref := e.Ref()
			if !s.Changed(ref) {
				continue
			}
			current := s.entries[ref]
			if current.kind == schema.KindBool {
				diff.Set(ref, schema.Bool(current.flag))
				continue
			}
			diff.Set(ref, schema.Coerce(current.text))
		}
	}
	if s.sync {
		diff.Set(schema.SyncRef, schema.Bool(true))
	}
	return diff
}

// ChangedKeys returns every changed editable key in schema order.
func (s *Session) ChangedKeys() []schema.KeyRef {
	var changed []schema.KeyRef
	for _, ref := range s.schema.Keys() {
		if ref.Section == schema.SyncSection {
			continue
		}
		if s.Changed(ref) {
			changed = append(changed, ref)
		}
	}
	return changed
}
