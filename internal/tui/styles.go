package tui

import "github.com/charmbracelet/lipgloss"

const (
	accentColor = lipgloss.Color("#25D366")
	mutedColor  = lipgloss.Color("#8A8A8A")
	alertColor  = lipgloss.Color("#E5484D")
)

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(alertColor)
	linkStyle     = lipgloss.NewStyle().Underline(true).Foreground(accentColor)
	alertBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	buttonStyle         = lipgloss.NewStyle().Bold(true).Padding(0, 2).Background(accentColor).Foreground(lipgloss.Color("#FFFFFF"))
	disabledButtonStyle = lipgloss.NewStyle().Padding(0, 2).Background(mutedColor).Foreground(lipgloss.Color("#FFFFFF"))
)
