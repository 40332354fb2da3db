package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"scam/internal/editor"
	"scam/internal/schema"
)

// sessionFlags describe how a command builds its session: a starting preset,
// an optional sync override and individual key assignments applied in order.
type sessionFlags struct {
	preset string
	sets   []string
	sync   bool
	noSync bool
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "Start from this preset instead of the defaults")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "Set a value as Section.Key=value (repeatable)")
	cmd.Flags().BoolVar(&f.sync, "sync", false, "Keep BaseTurnRate and BaseLookUpRate equal")
	cmd.Flags().BoolVar(&f.noSync, "no-sync", false, "Edit BaseTurnRate and BaseLookUpRate independently")
	cmd.MarkFlagsMutuallyExclusive("sync", "no-sync")
}

type assignment struct {
	ref  schema.KeyRef
	text string
}

func parseAssignment(raw string) (assignment, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok {
		return assignment{}, fmt.Errorf("invalid --set %q: expected Section.Key=value", raw)
	}
	ref, err := schema.ParseKeyRef(strings.TrimSpace(key))
	if err != nil {
		return assignment{}, fmt.Errorf("invalid --set %q: %w", raw, err)
	}
	return assignment{ref: ref, text: strings.TrimSpace(value)}, nil
}

// apply loads the starting preset, then the sync override, then every --set.
// Sync goes first so that rate assignments propagate the way the editor does.
func (f *sessionFlags) apply(ed *editor.Editor) error {
	assignments := make([]assignment, 0, len(f.sets))
	for _, raw := range f.sets {
		a, err := parseAssignment(raw)
		if err != nil {
			return err
		}
		assignments = append(assignments, a)
	}

	if name := strings.TrimSpace(f.preset); name != "" {
		if err := ed.LoadPreset(name); err != nil {
			return err
		}
	} else {
		ed.LoadDefault()
	}

	sess := ed.Session()
	switch {
	case f.sync:
		sess.SetSync(true)
	case f.noSync:
		sess.SetSync(false)
	}

	var errs []error
	for _, a := range assignments {
		if err := sess.Set(a.ref, a.text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
