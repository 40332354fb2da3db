// Package inifile reads and writes the sectioned key/value text format used by
// schema and preset files.
//
// Values are returned raw: inline "; description" suffixes are kept so callers
// decide how to split them. Keys are case-sensitive and keep file order.
package inifile

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/ini.v1"
)

// Pair is a single key and its raw value text.
type Pair struct {
	Key   string
	Value string
}

// Section is a named, ordered list of pairs.
type Section struct {
	Name  string
	Pairs []Pair
}

// Values are taken literally: a trailing backslash does not continue the line
// and surrounding quotes are part of the value.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
	SkipUnrecognizableLines: false,
	AllowShadows:            false,
}

func init() {
	// "key = value" without column alignment.
	ini.PrettyFormat = false
	ini.PrettyEqual = true
}

// Read parses r and returns its sections in file order. Keys that appear
// before the first section header are dropped.
func Read(r io.Reader) ([]Section, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read ini: %w", err)
	}
	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("parse ini: %w", err)
	}

	var sections []Section
	for _, sec := range file.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		out := Section{Name: sec.Name()}
		for _, key := range sec.Keys() {
			out.Pairs = append(out.Pairs, Pair{Key: key.Name(), Value: key.Value()})
		}
		sections = append(sections, out)
	}
	return sections, nil
}

// Write serializes sections to w. Sections without pairs are skipped, sections
// are separated by one blank line and the output ends with a single newline.
func Write(w io.Writer, sections []Section) error {
	file := ini.Empty(loadOptions)
	for _, section := range sections {
		if len(section.Pairs) == 0 {
			continue
		}
		sec, err := file.NewSection(section.Name)
		if err != nil {
			return fmt.Errorf("section %q: %w", section.Name, err)
		}
		for _, pair := range section.Pairs {
			if _, err := sec.NewKey(pair.Key, pair.Value); err != nil {
				return fmt.Errorf("key %s.%s: %w", section.Name, pair.Key, err)
			}
		}
	}
	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return fmt.Errorf("write ini: %w", err)
	}
	out := bytes.TrimRight(buf.Bytes(), "\r\n")
	if len(out) > 0 {
		out = append(out, '\n')
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write ini: %w", err)
	}
	return nil
}
