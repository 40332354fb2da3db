package tui

import "github.com/charmbracelet/lipgloss"

var (
	docStyle       = lipgloss.NewStyle().Margin(1, 2)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("170"))
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("241"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	keyStyle       = lipgloss.NewStyle().Width(28)
	valueStyle     = lipgloss.NewStyle().Width(14)
	changedStyle   = valueStyle.Foreground(lipgloss.Color("42"))
	invalidStyle   = valueStyle.Foreground(lipgloss.Color("196"))
	defaultStyle   = lipgloss.NewStyle().Width(20).Foreground(lipgloss.Color("245"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)
