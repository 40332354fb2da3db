package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"scam/internal/modpack"
	"scam/internal/preset"
)

func newSaveCommand(ctx *commandContext) *cobra.Command {
	var flags sessionFlags
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save the current overrides as a custom preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, runCtx, err := ctx.openEditor(cmd, false)
			if err != nil {
				return err
			}
			if err := flags.apply(ed); err != nil {
				return err
			}
			name := args[0]

			path, err := ed.SavePreset(runCtx, name, overwrite)
			if errors.Is(err, preset.ErrPresetExists) {
				if !isInteractive(cmd) {
					return fmt.Errorf("preset %q already exists; pass --overwrite to replace it", name)
				}
				confirmed, promptErr := confirm(cmd, fmt.Sprintf("Preset %q already exists. Overwrite?", name))
				if promptErr != nil {
					return promptErr
				}
				if !confirmed {
					printf(cmd, "Save cancelled\n")
					return nil
				}
				path, err = ed.SavePreset(runCtx, name, true)
			}
			if err != nil {
				return operationError(err, "saving")
			}
			printf(cmd, "Saved preset %s to %s\n", name, path)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing custom preset without asking")
	return cmd
}

func confirm(cmd *cobra.Command, question string) (bool, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func newModCommand(ctx *commandContext) *cobra.Command {
	var flags sessionFlags
	var noPack, keep, dryRun bool
	cmd := &cobra.Command{
		Use:   "mod",
		Short: "Write the mod cfg and pack it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, runCtx, err := ctx.openEditor(cmd, false)
			if err != nil {
				return err
			}
			if err := flags.apply(ed); err != nil {
				return err
			}

			if dryRun {
				diff, err := ed.CheckExportable()
				if err != nil {
					return operationError(err, "creating a mod")
				}
				printf(cmd, "%s", modpack.Render(diff))
				return nil
			}

			emitter := ed.Emitter()
			if noPack {
				emitter.SetPack(false)
			}
			if keep {
				emitter.SetKeepWorkDir(true)
			}
			result, err := ed.CreateMod(runCtx)
			if err != nil {
				if result.Kept && result.WorkDir != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "Working tree kept at %s\n", result.WorkDir)
				}
				return operationError(err, "creating a mod")
			}

			switch {
			case result.Packed && result.Kept:
				printf(cmd, "Mod packed from %s in %s\n", result.WorkDir, result.Duration.Round(time.Millisecond))
			case result.Packed:
				printf(cmd, "Mod packed in %s\n", result.Duration.Round(time.Millisecond))
			default:
				printf(cmd, "Mod cfg written to %s\n", result.CfgFile)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&noPack, "no-pack", false, "Write the working tree without running the packer")
	cmd.Flags().BoolVar(&keep, "keep", false, "Keep the working tree after packing")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the rendered cfg without writing anything")
	return cmd
}
