package schema

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the type carried by a Value.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Value is a typed configuration value.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

func Int(v int64) Value     { return Value{kind: KindInt, i: v} }
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }
func Bool(v bool) Value     { return Value{kind: KindBool, b: v} }
func String(v string) Value { return Value{kind: KindString, s: v} }

// Infer classifies a literal. The order of checks is significant: "true" and
// "false" (any case) are Bool, text containing '.' is Float, anything else is
// Int, and a failed numeric parse yields a String holding the literal.
func Infer(literal string) Value {
	if b, ok := ParseBool(literal); ok {
		return Bool(b)
	}
	if strings.Contains(literal, ".") {
		if f, ok := ParseFloat(literal); ok {
			return Float(f)
		}
		return String(literal)
	}
	if i, ok := ParseInt(literal); ok {
		return Int(i)
	}
	return String(literal)
}

// Coerce converts edited text into a Value using the numeric half of the
// inference rule. Text that does not parse is kept as a String.
func Coerce(text string) Value {
	if strings.Contains(text, ".") {
		if f, ok := ParseFloat(text); ok {
			return Float(f)
		}
		return String(text)
	}
	if i, ok := ParseInt(text); ok {
		return Int(i)
	}
	return String(text)
}

// ParseBool accepts "true" or "false" in any letter case.
func ParseBool(text string) (bool, bool) {
	switch strings.ToLower(text) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// ParseInt parses a base-10 integer with optional sign and surrounding spaces.
func ParseInt(text string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseFloat parses decimal float text with optional exponent. Hexadecimal
// float syntax is rejected.
func ParseFloat(text string) (float64, bool) {
	trimmed := strings.TrimSpace(text)
	if strings.ContainsAny(trimmed, "xXpP_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (v Value) Kind() Kind { return v.kind }

// Int returns the integer payload; zero for other kinds.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload; zero for other kinds.
func (v Value) Float() float64 { return v.f }

// Bool returns the boolean payload; false for other kinds.
func (v Value) Bool() bool { return v.b }

// String renders the value in its natural form: True/False for booleans,
// decimal integers, floats that always carry a fractional part, and strings
// verbatim. Change detection compares these renderings, so "1.0" and "1"
// are different values.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	default:
		return v.s
	}
}

// Equal reports whether two values have the same kind and rendering.
func (v Value) Equal(other Value) bool {
	return v.kind == other.kind && v.String() == other.String()
}

// formatFloat produces the shortest round-trip text, switching to exponent
// form outside [1e-4, 1e16).
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	abs := math.Abs(f)
	if abs < 1e-4 || abs >= 1e16 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
