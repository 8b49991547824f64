package cli

import "github.com/charmbracelet/lipgloss"

// Output styles shared by the commands.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFD7"))
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D787"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF005F"))
	hintStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#6C6C6C"))
)
