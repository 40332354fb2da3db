package main

import (
	"strings"

	"github.com/spf13/cobra"

	"scam/internal/schema"
	"scam/internal/session"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var flags sessionFlags
	var changedOnly bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current values, marking changed and invalid ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, _, err := ctx.openEditor(cmd, false)
			if err != nil {
				return err
			}
			if err := flags.apply(ed); err != nil {
				return err
			}
			sess := ed.Session()
			color := shouldColorize(cmd.OutOrStdout())

			var rows [][]string
			for _, sec := range ed.Schema().Sections() {
				for _, e := range sec.Entries {
					ref := e.Ref()
					state := entryState(sess, ref)
					if changedOnly && state == "" {
						continue
					}
					value := sess.Display(ref)
					switch state {
					case "invalid":
						value = colorize(color, ansiRed, value)
					case "changed":
						value = colorize(color, ansiGreen, value)
					}
					rows = append(rows, []string{sec.Name, e.Key, value, colorize(color, ansiDim, e.Default.String()), state})
				}
			}

			printf(cmd, "Preset: %s\n", ed.Current())
			if len(rows) == 0 {
				printf(cmd, "No changes\n")
				return nil
			}
			printf(cmd, "%s", renderTable(
				[]string{"Section", "Key", "Value", "Default", "State"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			if skipped := ed.Skipped(); len(skipped) > 0 {
				names := make([]string, 0, len(skipped))
				for _, ref := range skipped {
					names = append(names, ref.String())
				}
				printf(cmd, "Skipped preset keys: %s\n", strings.Join(names, ", "))
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&changedOnly, "changed", false, "Only list changed or invalid keys")
	return cmd
}

func entryState(sess *session.Session, ref schema.KeyRef) string {
	if ref.Section != schema.SyncSection && sess.Validity(ref) == session.Invalid {
		return "invalid"
	}
	if sess.Changed(ref) {
		return "changed"
	}
	return ""
}

func newDiffCommand(ctx *commandContext) *cobra.Command {
	var flags sessionFlags
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Print the overrides that differ from the defaults as a preset",
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, _, err := ctx.openEditor(cmd, false)
			if err != nil {
				return err
			}
			if err := flags.apply(ed); err != nil {
				return err
			}
			diff := ed.Session().Diff()
			if diff.IsEmpty() {
				printf(cmd, "; no changes\n")
				return nil
			}
			return diff.Write(cmd.OutOrStdout())
		},
	}
	flags.register(cmd)
	return cmd
}
