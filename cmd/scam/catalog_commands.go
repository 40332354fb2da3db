package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"scam/internal/preset"
)

func newSchemaCommand(ctx *commandContext) *cobra.Command {
	var section string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "List every key with its type, default and description",
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, _, err := ctx.openEditor(cmd, false)
			if err != nil {
				return err
			}
			sch := ed.Schema()
			section = strings.TrimSpace(section)

			var rows [][]string
			for _, sec := range sch.Sections() {
				if section != "" && !strings.EqualFold(sec.Name, section) {
					continue
				}
				for _, e := range sec.Entries {
					rows = append(rows, []string{sec.Name, e.Key, e.Default.Kind().String(), e.Default.String(), e.Description})
				}
			}
			if len(rows) == 0 {
				if section != "" {
					return fmt.Errorf("section %q not found in the schema", section)
				}
				printf(cmd, "Schema has no keys\n")
				return nil
			}
			printf(cmd, "%s", renderTable(
				[]string{"Section", "Key", "Type", "Default", "Description"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
	cmd.Flags().StringVar(&section, "section", "", "Only list keys of this section")
	return cmd
}

func newPresetsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in and custom presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, _, err := ctx.openEditor(cmd, false)
			if err != nil {
				return err
			}
			entries, err := ed.Presets()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				printf(cmd, "No presets found\n")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			builtin := 0
			for _, entry := range entries {
				slot := ""
				// Built-ins 1-9 map to the editor's number keys.
				if entry.Source == preset.SourceBuiltin {
					builtin++
					if builtin <= 9 {
						slot = strconv.Itoa(builtin)
					}
				}
				rows = append(rows, []string{slot, entry.Name, entry.Label, entry.Source.String(), entry.Path})
			}
			printf(cmd, "%s", renderTable(
				[]string{"Key", "Name", "Label", "Source", "Path"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
