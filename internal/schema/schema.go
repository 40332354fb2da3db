package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Reserved identifiers with special editing and export behaviour.
const (
	SyncSection   = "Aiming"
	SyncKey       = "SyncTurnRate"
	RateSection   = "MovementParams"
	TurnRateKey   = "BaseTurnRate"
	LookUpRateKey = "BaseLookUpRate"
)

// KeyRef addresses a key within a section.
type KeyRef struct {
	Section string
	Key     string
}

func (r KeyRef) String() string {
	return r.Section + "." + r.Key
}

// ParseKeyRef splits "Section.Key" at the first dot.
func ParseKeyRef(text string) (KeyRef, error) {
	section, key, ok := strings.Cut(strings.TrimSpace(text), ".")
	section = strings.TrimSpace(section)
	key = strings.TrimSpace(key)
	if !ok || section == "" || key == "" {
		return KeyRef{}, fmt.Errorf("key %q: expected Section.Key", text)
	}
	return KeyRef{Section: section, Key: key}, nil
}

// SyncRef is the key holding the turn/look-up rate sync flag.
var SyncRef = KeyRef{Section: SyncSection, Key: SyncKey}

// IsRateKey reports whether ref is one of the two synchronized rate keys.
func IsRateKey(ref KeyRef) bool {
	return ref.Section == RateSection && (ref.Key == TurnRateKey || ref.Key == LookUpRateKey)
}

// Entry is a single schema key.
type Entry struct {
	Section     string
	Key         string
	Default     Value
	Description string
}

// Ref returns the entry's address.
func (e Entry) Ref() KeyRef {
	return KeyRef{Section: e.Section, Key: e.Key}
}

// Section is an ordered group of entries.
type Section struct {
	Name    string
	Entries []Entry
}

// Schema is the immutable catalog of configurable keys.
type Schema struct {
	sections []Section
	index    map[KeyRef][2]int
}

// ErrDuplicateSection is returned by New when a section name repeats.
var ErrDuplicateSection = errors.New("duplicate section")

// New builds a schema from sections in display order. Entries are copied; the
// Section and Key fields of each entry are filled from their position.
func New(sections []Section) (*Schema, error) {
	s := &Schema{index: make(map[KeyRef][2]int)}
	seen := make(map[string]struct{}, len(sections))
	for _, sec := range sections {
		if _, dup := seen[sec.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSection, sec.Name)
		}
		seen[sec.Name] = struct{}{}

		copied := Section{Name: sec.Name, Entries: make([]Entry, 0, len(sec.Entries))}
		for _, entry := range sec.Entries {
			entry.Section = sec.Name
			ref := entry.Ref()
			if pos, ok := s.index[ref]; ok {
				// Later definitions win, matching how the file parser resolves repeats.
				copied.Entries[pos[1]] = entry
				continue
			}
			s.index[ref] = [2]int{len(s.sections), len(copied.Entries)}
			copied.Entries = append(copied.Entries, entry)
		}
		s.sections = append(s.sections, copied)
	}
	return s, nil
}

// Sections returns the sections in source order.
func (s *Schema) Sections() []Section {
	out := make([]Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// Section returns the named section.
func (s *Schema) Section(name string) (Section, bool) {
	for _, sec := range s.sections {
		if sec.Name == name {
			return sec, true
		}
	}
	return Section{}, false
}

// Lookup returns the entry for ref.
func (s *Schema) Lookup(ref KeyRef) (Entry, bool) {
	pos, ok := s.index[ref]
	if !ok {
		return Entry{}, false
	}
	return s.sections[pos[0]].Entries[pos[1]], true
}

// Has reports whether ref is defined.
func (s *Schema) Has(ref KeyRef) bool {
	_, ok := s.index[ref]
	return ok
}

// Default returns the default value for ref.
func (s *Schema) Default(ref KeyRef) (Value, bool) {
	entry, ok := s.Lookup(ref)
	return entry.Default, ok
}

// Description returns the human description for ref, if any.
func (s *Schema) Description(ref KeyRef) string {
	entry, _ := s.Lookup(ref)
	return entry.Description
}

// Keys returns every key in display order.
func (s *Schema) Keys() []KeyRef {
	keys := make([]KeyRef, 0, len(s.index))
	for _, sec := range s.sections {
		for _, entry := range sec.Entries {
			keys = append(keys, entry.Ref())
		}
	}
	return keys
}

// Len returns the number of keys.
func (s *Schema) Len() int {
	return len(s.index)
}

// SyncDefault returns the schema default of the sync flag. Missing or
// non-boolean definitions count as false.
func (s *Schema) SyncDefault() bool {
	v, ok := s.Default(SyncRef)
	return ok && v.Kind() == KindBool && v.Bool()
}
