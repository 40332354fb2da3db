package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scam/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check data files, preset directories and the packer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cmd.Context(), cfg)
			color := shouldColorize(cmd.OutOrStdout())

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				status := colorize(color, ansiGreen, "ok")
				if !r.Passed {
					status = colorize(color, ansiRed, "fail")
				}
				rows = append(rows, []string{r.Name, status, r.Detail})
			}
			printf(cmd, "%s", renderTable([]string{"Check", "Status", "Detail"}, rows, nil))

			if failed := preflight.Failed(results); len(failed) > 0 {
				return fmt.Errorf("%d of %d checks failed", len(failed), len(results))
			}
			return nil
		},
	}
}
