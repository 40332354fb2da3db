package tui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"scam/internal/editor"
	"scam/internal/logging"
)

// Run starts the full-screen editor and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, ed *editor.Editor, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewNop()
	}
	opts := []Option{WithLogger(logger)}

	watcher, err := watchPresets(ed.Store().CustomDir())
	if err != nil {
		logging.WarnWithContext(logger, "custom preset watcher unavailable", "preset_watch_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "new custom presets appear after restart"),
		)
	} else {
		defer watcher.Close()
		opts = append(opts, withWatcher(watcher))
	}

	model := NewModel(ctx, ed, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
