package main

import (
	"github.com/spf13/cobra"

	"scam/internal/tui"
)

func newEditCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [PRESET]",
		Short: "Open the interactive editor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The screen belongs to the editor, so logs only go to the log file.
			ed, runCtx, err := ctx.openEditor(cmd, true)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if err := ed.LoadPreset(args[0]); err != nil {
					return err
				}
			}
			logger, _, err := ctx.logger(runCtx, true)
			if err != nil {
				return err
			}
			return tui.Run(runCtx, ed, logger)
		},
	}
}
