package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"scam/internal/faults"
)

const (
	ansiReset = "\033[0m"
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
	ansiDim   = "\033[2m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func colorize(enabled bool, color, value string) string {
	if !enabled || value == "" {
		return value
	}
	return color + value + ansiReset
}

// userError carries the message shown to the user for a rejected operation
// while keeping the underlying error for errors.Is checks.
type userError struct {
	message string
	err     error
}

func (e *userError) Error() string { return e.message }
func (e *userError) Unwrap() error { return e.err }

func operationError(err error, action string) error {
	if err == nil {
		return nil
	}
	return &userError{message: faults.UserMessage(err, action), err: err}
}

func isInteractive(cmd *cobra.Command) bool {
	in := cmd.InOrStdin()
	file, ok := in.(*os.File)
	if !ok {
		return true
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
