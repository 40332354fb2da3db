package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"scam/internal/preset"
)

type presetsChangedMsg struct{}

type watchErrMsg struct{ err error }

// watchPresets watches dir for preset files being added, removed or renamed.
// The directory is created first so a fresh install can be watched.
func watchPresets(dir string) (*fsnotify.Watcher, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("custom preset directory not configured")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create preset directory: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch preset directory: %w", err)
	}
	return watcher, nil
}

// waitForPresetChange blocks until the watcher reports a relevant event.
func waitForPresetChange(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return nil
				}
				if !strings.EqualFold(filepath.Ext(event.Name), preset.Extension) {
					continue
				}
				if event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					return presetsChangedMsg{}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}
