package tui

import "scam/internal/schema"

// Row is one editable line of a tab.
type Row struct {
	Ref schema.KeyRef
}

// IsSync reports whether the row is the rate sync toggle.
func (r Row) IsSync() bool { return r.Ref == schema.SyncRef }

// Tab is one page of the editor.
type Tab struct {
	Name string
	Rows []Row
}

// BuildTabs lays out sch for display: every other section in schema order,
// then MovementParams without the rate keys, then Aiming with the sync toggle
// followed by the rate keys. Sections left without rows are omitted.
func BuildTabs(sch *schema.Schema) []Tab {
	var tabs []Tab
	var movement *Tab
	for _, sec := range sch.Sections() {
		switch sec.Name {
		case schema.SyncSection:
			continue
		case schema.RateSection:
			t := Tab{Name: sec.Name}
			for _, e := range sec.Entries {
				if !schema.IsRateKey(e.Ref()) {
					t.Rows = append(t.Rows, Row{Ref: e.Ref()})
				}
			}
			movement = &t
		default:
			t := Tab{Name: sec.Name}
			for _, e := range sec.Entries {
				t.Rows = append(t.Rows, Row{Ref: e.Ref()})
			}
			tabs = append(tabs, t)
		}
	}
	if movement != nil {
		tabs = append(tabs, *movement)
	}

	aiming := Tab{Name: schema.SyncSection, Rows: []Row{{Ref: schema.SyncRef}}}
	for _, key := range []string{schema.TurnRateKey, schema.LookUpRateKey} {
		ref := schema.KeyRef{Section: schema.RateSection, Key: key}
		if sch.Has(ref) {
			aiming.Rows = append(aiming.Rows, Row{Ref: ref})
		}
	}
	tabs = append(tabs, aiming)

	out := tabs[:0]
	for _, t := range tabs {
		if len(t.Rows) > 0 {
			out = append(out, t)
		}
	}
	return out
}
