package session

import (
	"strings"

	"scam/internal/schema"
)

// Validity classifies an entry's current text.
type Validity int

const (
	Valid Validity = iota
	Invalid
)

func (v Validity) String() string {
	if v == Invalid {
		return "invalid"
	}
	return "valid"
}

// ValidateText classifies text for a key whose default has the given kind.
// Toggles are always valid and empty text never is. Everything else must parse
// as a float when the text contains a dot and as an integer otherwise.
func ValidateText(kind schema.Kind, text string) Validity {
	if kind == schema.KindBool {
		return Valid
	}
	if text == "" {
		return Invalid
	}
	var ok bool
	if strings.Contains(text, ".") {
		_, ok = schema.ParseFloat(text)
	} else {
		_, ok = schema.ParseInt(text)
	}
	if !ok {
		return Invalid
	}
	return Valid
}

// Validity classifies the current value of ref. Unknown keys are invalid. A
// key with a free-text default is also valid while it still holds that default.
func (s *Session) Validity(ref schema.KeyRef) Validity {
	current, ok := s.entries[ref]
	if !ok {
		return Invalid
	}
	if current.kind == schema.KindString {
		if def, ok := s.schema.Default(ref); ok && current.text == def.String() {
			return Valid
		}
	}
	return ValidateText(current.kind, current.text)
}

// Invalid returns the editable keys whose current text fails validation, in
// schema order.
func (s *Session) Invalid() []schema.KeyRef {
	var invalid []schema.KeyRef
	for _, ref := range s.schema.Keys() {
		if ref.Section == schema.SyncSection {
			continue
		}
		if s.Validity(ref) == Invalid {
			invalid = append(invalid, ref)
		}
	}
	return invalid
}

// AllValid reports whether every editable entry passes validation.
func (s *Session) AllValid() bool {
	return len(s.Invalid()) == 0
}
