package main

import "github.com/charmbracelet/lipgloss"

// Theme colors used by the demo.
const (
	colorAccent    = "86"  // Cyan/green - for titles
	colorHighlight = "205" // Magenta - for the logo
	colorMuted     = "241" // Gray - for hints
	colorDanger    = "196" // Red - for input errors
)

var styles = struct {
	Logo  lipgloss.Style
	Title lipgloss.Style
	Hint  lipgloss.Style
	Error lipgloss.Style
}{
	Logo: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight)),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAccent)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorDanger)),
}
