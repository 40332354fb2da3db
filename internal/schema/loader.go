package schema

import (
	"fmt"
	"io"
	"os"
	"strings"

	"scam/internal/faults"
	"scam/internal/inifile"
)

// DescriptionDelimiter separates a value from its trailing description.
const DescriptionDelimiter = ";"

// SplitDescription splits raw value text at the first delimiter and trims
// both halves.
func SplitDescription(raw string) (literal, description string) {
	literal, description, _ = strings.Cut(raw, DescriptionDelimiter)
	return strings.TrimSpace(literal), strings.TrimSpace(description)
}

// Parse reads a default-values definition. Malformed values never fail the
// load; they become String entries.
func Parse(r io.Reader) (*Schema, error) {
	raw, err := inifile.Read(r)
	if err != nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "schema", "parse", "", err)
	}
	sections := make([]Section, 0, len(raw))
	for _, sec := range raw {
		out := Section{Name: sec.Name, Entries: make([]Entry, 0, len(sec.Pairs))}
		for _, pair := range sec.Pairs {
			literal, description := SplitDescription(pair.Value)
			out.Entries = append(out.Entries, Entry{
				Section:     sec.Name,
				Key:         pair.Key,
				Default:     Infer(literal),
				Description: description,
			})
		}
		sections = append(sections, out)
	}
	schema, err := New(sections)
	if err != nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "schema", "parse", "", err)
	}
	return schema, nil
}

// LoadFile opens and parses the schema at path.
func LoadFile(path string) (*Schema, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, faults.Wrap(faults.ErrNotFound, "schema", "load", fmt.Sprintf("schema file %s", path), err)
		}
		return nil, faults.Wrap(faults.ErrConfiguration, "schema", "load", path, err)
	}
	defer file.Close()
	return Parse(file)
}
