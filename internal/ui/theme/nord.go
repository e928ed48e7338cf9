package theme

import "github.com/charmbracelet/lipgloss"

// Nord theme based on the Nord color palette
var Nord = Theme{
	Name: "nord",

	Foreground: lipgloss.Color("#ECEFF4"),
	Subtle:     lipgloss.Color("#616E88"),
	Highlight:  lipgloss.Color("#434C5E"),
	Border:     lipgloss.Color("#4C566A"),

	Primary: lipgloss.Color("#88C0D0"),
	Success: lipgloss.Color("#A3BE8C"),
	Warning: lipgloss.Color("#EBCB8B"),
	Error:   lipgloss.Color("#BF616A"),
}
