package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"scam/internal/editor"
	"scam/internal/faults"
	"scam/internal/logging"
	"scam/internal/modpack"
	"scam/internal/preset"
	"scam/internal/schema"
	"scam/internal/session"
)

const (
	keyCtrlC    = "ctrl+c"
	keyQ        = "q"
	keyEsc      = "esc"
	keyEnter    = "enter"
	keySpace    = " "
	keyUp       = "up"
	keyDown     = "down"
	keyLeft     = "left"
	keyRight    = "right"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyK        = "k"
	keyJ        = "j"
	keyH        = "h"
	keyL        = "l"
)

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeName
	modeConfirm
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusWarn
	statusError
)

type modDoneMsg struct {
	result modpack.Result
	err    error
}

// Model is the bubbletea model for the editor.
type Model struct {
	ctx     context.Context
	editor  *editor.Editor
	logger  *slog.Logger
	watcher *fsnotify.Watcher

	tabs   []Tab
	tab    int
	cursor int
	mode   mode
	input  textinput.Model

	builtin   []preset.Entry
	custom    []preset.Entry
	customIdx int
	pending   string

	status     string
	statusKind statusKind
	busy       bool
	quitting   bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the model logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logging.NewComponentLogger(logger, "tui")
		}
	}
}

func withWatcher(w *fsnotify.Watcher) Option {
	return func(m *Model) { m.watcher = w }
}

// NewModel builds the editor model over ed.
func NewModel(ctx context.Context, ed *editor.Editor, opts ...Option) *Model {
	input := textinput.New()
	input.Width = 24
	input.Prompt = ""

	m := &Model{
		ctx:       ctx,
		editor:    ed,
		logger:    logging.NewNop(),
		tabs:      BuildTabs(ed.Schema()),
		input:     input,
		customIdx: -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.refreshPresets()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return waitForPresetChange(m.watcher)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case presetsChangedMsg:
		m.refreshPresets()
		return m, m.Init()
	case watchErrMsg:
		logging.WarnWithContext(m.logger, "preset watcher error", "preset_watch_failed",
			logging.Error(msg.err),
			logging.String(logging.FieldImpact, "custom preset list may be stale"),
		)
		return m, m.Init()
	case modDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(msg.err, "creating a mod")
			return m, nil
		}
		m.setStatus(statusInfo, modSummary(msg.result))
		return m, nil
	}

	if m.mode == modeEdit || m.mode == modeName {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeEdit:
		return m.handleEditKeys(key, msg)
	case modeName:
		return m.handleNameKeys(key, msg)
	case modeConfirm:
		return m.handleConfirmKeys(key)
	}
	return m.handleBrowseKeys(key)
}

func (m *Model) handleBrowseKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keyQ:
		m.quitting = true
		return m, tea.Quit
	case keyRight, keyL, keyTab:
		m.switchTab(1)
	case keyLeft, keyH, keyShiftTab:
		m.switchTab(-1)
	case keyUp, keyK:
		if m.cursor > 0 {
			m.cursor--
		}
	case keyDown, keyJ:
		if rows := m.rows(); m.cursor < len(rows)-1 {
			m.cursor++
		}
	case keySpace:
		m.toggleCurrent()
	case keyEnter:
		return m.beginEdit()
	case "d":
		m.editor.LoadDefault()
		m.customIdx = -1
		m.setStatus(statusInfo, "Loaded default values")
	case "p":
		m.cycleCustom()
	case "s":
		return m.beginSave()
	case "m":
		return m.beginMod()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.loadBuiltin(int(key[0] - '1'))
		}
	}
	return m, nil
}

func (m *Model) handleEditKeys(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case keyEnter, keyEsc:
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	row, ok := m.currentRow()
	if ok {
		if err := m.editor.Session().SetRaw(row.Ref, m.input.Value()); err != nil {
			m.setError(err, "")
		}
	}
	return m, cmd
}

func (m *Model) handleNameKeys(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case keyEsc:
		m.mode = modeBrowse
		m.input.Blur()
		m.setStatus(statusInfo, "Save cancelled")
		return m, nil
	case keyEnter:
		name := strings.TrimSpace(m.input.Value())
		if err := preset.ValidateName(name); err != nil {
			m.setStatus(statusError, err.Error())
			return m, nil
		}
		m.input.Blur()
		if m.editor.Store().Exists(name) {
			m.pending = name
			m.mode = modeConfirm
			return m, nil
		}
		m.save(name, false)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(key string) (tea.Model, tea.Cmd) {
	name := m.pending
	m.pending = ""
	m.mode = modeBrowse
	if key == "y" || key == "Y" {
		m.save(name, true)
		return m, nil
	}
	m.setStatus(statusInfo, "Save cancelled")
	return m, nil
}

func (m *Model) beginEdit() (tea.Model, tea.Cmd) {
	row, ok := m.currentRow()
	if !ok {
		return m, nil
	}
	if m.isToggle(row) {
		m.toggleCurrent()
		return m, nil
	}
	text, _ := m.editor.Session().Text(row.Ref)
	m.input.Placeholder = ""
	m.input.SetValue(text)
	m.input.CursorEnd()
	m.mode = modeEdit
	return m, tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *Model) beginSave() (tea.Model, tea.Cmd) {
	if _, err := m.editor.CheckExportable(); err != nil {
		m.setError(err, "saving a preset")
		return m, nil
	}
	m.input.Placeholder = "preset name"
	m.input.SetValue("")
	m.mode = modeName
	return m, tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *Model) beginMod() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	diff, err := m.editor.CheckExportable()
	if err != nil {
		m.setError(err, "creating a mod")
		return m, nil
	}
	m.busy = true
	m.setStatus(statusInfo, "Creating mod...")
	ctx, emitter := m.ctx, m.editor.Emitter()
	return m, func() tea.Msg {
		result, err := emitter.Emit(ctx, diff)
		return modDoneMsg{result: result, err: err}
	}
}

func (m *Model) save(name string, overwrite bool) {
	path, err := m.editor.SavePreset(m.ctx, name, overwrite)
	if errors.Is(err, preset.ErrPresetExists) {
		m.pending = name
		m.mode = modeConfirm
		return
	}
	if err != nil {
		m.setError(err, "saving a preset")
		return
	}
	m.refreshPresets()
	m.setStatus(statusInfo, fmt.Sprintf("Saved preset %s to %s", name, path))
}

func (m *Model) toggleCurrent() {
	row, ok := m.currentRow()
	if !ok || !m.isToggle(row) {
		return
	}
	if _, err := m.editor.Session().Toggle(row.Ref); err != nil {
		m.setError(err, "")
	}
}

func (m *Model) loadBuiltin(idx int) {
	if idx < 0 || idx >= len(m.builtin) {
		return
	}
	m.customIdx = -1
	m.load(m.builtin[idx])
}

func (m *Model) cycleCustom() {
	if len(m.custom) == 0 {
		m.setStatus(statusWarn, "No custom presets saved yet")
		return
	}
	m.customIdx = (m.customIdx + 1) % len(m.custom)
	m.load(m.custom[m.customIdx])
}

func (m *Model) load(entry preset.Entry) {
	if err := m.editor.LoadPreset(entry.Name); err != nil {
		m.setError(err, "")
		return
	}
	if skipped := m.editor.Skipped(); len(skipped) > 0 {
		m.setStatus(statusWarn, fmt.Sprintf("Loaded %s (%d unknown keys ignored)", entry.Label, len(skipped)))
		return
	}
	m.setStatus(statusInfo, "Loaded "+entry.Label)
}

func (m *Model) refreshPresets() {
	builtin, err := m.editor.Store().Builtin()
	if err != nil {
		m.setError(err, "")
	}
	custom, err := m.editor.Store().Custom()
	if err != nil {
		m.setError(err, "")
	}
	m.builtin, m.custom = builtin, custom
	if m.customIdx >= len(m.custom) {
		m.customIdx = -1
	}
}

func (m *Model) switchTab(delta int) {
	if len(m.tabs) == 0 {
		return
	}
	m.tab = (m.tab + delta + len(m.tabs)) % len(m.tabs)
	m.cursor = 0
}

func (m *Model) rows() []Row {
	if m.tab < 0 || m.tab >= len(m.tabs) {
		return nil
	}
	return m.tabs[m.tab].Rows
}

func (m *Model) currentRow() (Row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return Row{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) isToggle(row Row) bool {
	return row.IsSync() || m.editor.Session().Kind(row.Ref) == schema.KindBool
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

func (m *Model) setError(err error, action string) {
	kind := statusError
	if faults.IsWarning(err) {
		kind = statusWarn
	}
	m.setStatus(kind, faults.UserMessage(err, action))
}

func modSummary(result modpack.Result) string {
	switch {
	case result.Packed && result.Kept:
		return "Mod created; working tree kept at " + result.WorkDir
	case result.Packed:
		return "Mod created"
	default:
		return "Mod files written to " + result.CfgFile
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("SCAM - Stalker 2 Movement & Aiming") + "  ")
	b.WriteString(helpStyle.Render("preset: "+m.editor.Current()) + "\n\n")
	m.viewTabs(&b)
	m.viewRows(&b)
	b.WriteString("\n")
	m.viewStatus(&b)
	b.WriteString("\n" + helpStyle.Render(m.help()))
	return docStyle.Render(b.String())
}

func (m *Model) viewTabs(b *strings.Builder) {
	rendered := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.tab {
			rendered = append(rendered, activeTabStyle.Render(t.Name))
		} else {
			rendered = append(rendered, tabStyle.Render(t.Name))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n\n")
}

func (m *Model) viewRows(b *strings.Builder) {
	sess := m.editor.Session()
	sch := m.editor.Schema()
	for i, row := range m.rows() {
		cursor := "  "
		if i == m.cursor {
			cursor = selectedStyle.Render("> ")
		}
		b.WriteString(cursor)

		if row.IsSync() {
			b.WriteString(keyStyle.Render("Sync turn/look-up rate"))
			b.WriteString(valueStyle.Render(checkbox(sess.Synced())))
			b.WriteString(defaultStyle.Render("Default: " + schema.Bool(sch.SyncDefault()).String()))
			b.WriteString(helpStyle.Render(sch.Description(row.Ref)) + "\n")
			continue
		}

		b.WriteString(keyStyle.Render(row.Ref.Key))
		style := valueStyle
		switch {
		case sess.Validity(row.Ref) == session.Invalid:
			style = invalidStyle
		case sess.Changed(row.Ref):
			style = changedStyle
		}
		value := sess.Display(row.Ref)
		if on, ok := sess.Bool(row.Ref); ok {
			value = checkbox(on)
		}
		if m.mode == modeEdit && i == m.cursor {
			b.WriteString(style.Render(m.input.View()))
		} else {
			b.WriteString(style.Render(value))
		}
		if def, ok := sch.Default(row.Ref); ok {
			b.WriteString(defaultStyle.Render("Default: " + def.String()))
		}
		b.WriteString(helpStyle.Render(sch.Description(row.Ref)) + "\n")
	}
}

func (m *Model) viewStatus(b *strings.Builder) {
	switch m.mode {
	case modeName:
		b.WriteString("Save preset as: " + m.input.View() + "\n")
		return
	case modeConfirm:
		b.WriteString(warnStyle.Render(fmt.Sprintf("Preset %q exists. Overwrite? (y/n)", m.pending)) + "\n")
		return
	}
	if m.status == "" {
		return
	}
	style := statusStyle
	switch m.statusKind {
	case statusWarn:
		style = warnStyle
	case statusError:
		style = errorStyle
	}
	b.WriteString(style.Render(m.status) + "\n")
}

func (m *Model) help() string {
	switch m.mode {
	case modeEdit:
		return "type to edit, 'enter'/'esc' to finish"
	case modeName:
		return "'enter' to save, 'esc' to cancel"
	case modeConfirm:
		return "'y' to overwrite, any other key to cancel"
	}
	var presets []string
	for i, e := range m.builtin {
		if i >= 9 {
			break
		}
		presets = append(presets, fmt.Sprintf("%d %s", i+1, e.Label))
	}
	line := "←/→ tabs, ↑/↓ move, 'enter' edit, 'space' toggle, 'd' defaults, 'p' custom preset, 's' save, 'm' create mod, 'q' quit"
	if len(presets) > 0 {
		line += "\n" + strings.Join(presets, " · ")
	}
	return line
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
