package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrNoChanges     = errors.New("no changes")
	ErrExternalTool  = errors.New("external tool error")
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("not found")
)

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrConfiguration
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// UserMessage returns the user-facing text for an operation failure. Action
// names the aborted operation ("saving a preset", "creating a mod") and is only
// used for the no-changes warning.
func UserMessage(err error, action string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "Please verify all values are correct!"
	case errors.Is(err, ErrNoChanges):
		action = strings.TrimSpace(action)
		if action == "" {
			action = "saving"
		}
		return fmt.Sprintf("Make changes before %s!", action)
	case errors.Is(err, ErrExternalTool):
		return fmt.Sprintf("Failed to create mod: %v", err)
	default:
		return err.Error()
	}
}

// IsWarning reports whether err is a benign rejection rather than a failure.
func IsWarning(err error) bool {
	return errors.Is(err, ErrNoChanges)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "operation failed"
	}
	return strings.Join(parts, ": ")
}
