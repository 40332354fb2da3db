package preset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"scam/internal/faults"
	"scam/internal/inifile"
	"scam/internal/schema"
)

// Item is one override.
type Item struct {
	Ref   schema.KeyRef
	Value schema.Value
}

// Section groups the overrides of one schema section.
type Section struct {
	Name  string
	Items []Item
}

// Preset is a named, ordered, partial set of overrides.
type Preset struct {
	Name     string
	sections []Section
}

// New returns an empty preset.
func New(name string) *Preset {
	return &Preset{Name: name}
}

// Set stores v under ref. New sections and keys are appended; existing keys
// keep their position.
func (p *Preset) Set(ref schema.KeyRef, v schema.Value) {
	for i := range p.sections {
		if p.sections[i].Name != ref.Section {
			continue
		}
		for j := range p.sections[i].Items {
			if p.sections[i].Items[j].Ref.Key == ref.Key {
				p.sections[i].Items[j].Value = v
				return
			}
		}
		p.sections[i].Items = append(p.sections[i].Items, Item{Ref: ref, Value: v})
		return
	}
	p.sections = append(p.sections, Section{Name: ref.Section, Items: []Item{{Ref: ref, Value: v}}})
}

// Get returns the override for ref.
func (p *Preset) Get(ref schema.KeyRef) (schema.Value, bool) {
	for _, sec := range p.sections {
		if sec.Name != ref.Section {
			continue
		}
		for _, item := range sec.Items {
			if item.Ref.Key == ref.Key {
				return item.Value, true
			}
		}
	}
	return schema.Value{}, false
}

// Has reports whether ref is overridden.
func (p *Preset) Has(ref schema.KeyRef) bool {
	_, ok := p.Get(ref)
	return ok
}

// Sections returns the overrides grouped by section in insertion order.
func (p *Preset) Sections() []Section {
	out := make([]Section, 0, len(p.sections))
	for _, sec := range p.sections {
		items := make([]Item, len(sec.Items))
		copy(items, sec.Items)
		out = append(out, Section{Name: sec.Name, Items: items})
	}
	return out
}

// Items returns every override in order.
func (p *Preset) Items() []Item {
	var items []Item
	for _, sec := range p.sections {
		items = append(items, sec.Items...)
	}
	return items
}

// Len returns the number of overrides.
func (p *Preset) Len() int {
	n := 0
	for _, sec := range p.sections {
		n += len(sec.Items)
	}
	return n
}

// IsEmpty reports whether the preset overrides nothing.
func (p *Preset) IsEmpty() bool {
	return p.Len() == 0
}

// Parse reads a preset file. Descriptions are discarded and every literal is
// typed on its own, independent of any schema.
func Parse(name string, r io.Reader) (*Preset, error) {
	raw, err := inifile.Read(r)
	if err != nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "preset", "parse", fmt.Sprintf("preset %q", name), err)
	}
	p := New(name)
	for _, sec := range raw {
		for _, pair := range sec.Pairs {
			literal, _ := schema.SplitDescription(pair.Value)
			p.Set(schema.KeyRef{Section: sec.Name, Key: pair.Key}, schema.Infer(literal))
		}
	}
	return p, nil
}

// Load reads the preset at path, naming it after the file.
func Load(path string) (*Preset, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, faults.Wrap(faults.ErrNotFound, "preset", "load", fmt.Sprintf("preset file %s", path), err)
		}
		return nil, faults.Wrap(faults.ErrConfiguration, "preset", "load", path, err)
	}
	defer file.Close()
	return Parse(nameFromPath(path), file)
}

// Write serializes p. Values use their natural string form.
func (p *Preset) Write(w io.Writer) error {
	sections := make([]inifile.Section, 0, len(p.sections))
	for _, sec := range p.sections {
		out := inifile.Section{Name: sec.Name, Pairs: make([]inifile.Pair, 0, len(sec.Items))}
		for _, item := range sec.Items {
			out.Pairs = append(out.Pairs, inifile.Pair{Key: item.Ref.Key, Value: item.Value.String()})
		}
		sections = append(sections, out)
	}
	return inifile.Write(w, sections)
}

// Save writes p to path, creating the parent directory and replacing any
// existing file.
func Save(p *Preset, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preset directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preset file: %w", err)
	}
	if err := p.Write(file); err != nil {
		file.Close()
		return fmt.Errorf("write preset %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close preset %s: %w", path, err)
	}
	return nil
}
