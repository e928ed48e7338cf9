package theme

import "github.com/charmbracelet/lipgloss"

// Slate is the default theme
var Slate = Theme{
	Name: "slate",

	Foreground: lipgloss.Color("#D8DEE9"),
	Subtle:     lipgloss.Color("#6C7A96"),
	Highlight:  lipgloss.Color("#3B4358"),
	Border:     lipgloss.Color("#4C566A"),

	Primary: lipgloss.Color("#7AA2F7"),
	Success: lipgloss.Color("#9ECE6A"),
	Warning: lipgloss.Color("#E0AF68"),
	Error:   lipgloss.Color("#F7768E"),
}
