package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#E8A598")
	colorButton  = lipgloss.Color("#D4847A")
	colorText    = lipgloss.Color("#5A4A42")
	colorMuted   = lipgloss.Color("#8B7B73")
	colorError   = lipgloss.Color("#C5534B")
	colorSuccess = lipgloss.Color("#4A6B4E")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorButton).MarginBottom(1)

	taglineStyle = lipgloss.NewStyle().Foreground(colorMuted)

	labelStyle = lipgloss.NewStyle().Foreground(colorMuted)

	toneStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(colorText)

	toneSelectedStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).Background(colorAccent)

	errorStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
)
