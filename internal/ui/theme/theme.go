package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for the UI
type Theme struct {
	Name string

	// Base colors
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color

	// Semantic colors
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// Styles holds pre-computed lipgloss styles based on theme
type Styles struct {
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	ItemNormal   lipgloss.Style
	ItemSelected lipgloss.Style
	ItemDone     lipgloss.Style
	Meta         lipgloss.Style

	Input  lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Panel  lipgloss.Style
}

// NewStyles creates styles from a theme
func NewStyles(t Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Padding(0, 1),

		Tab: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Padding(0, 2),

		TabOn: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 2),

		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(t.Subtle),

		ItemNormal: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),

		ItemSelected: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Background(t.Highlight).
			Padding(0, 1),

		ItemDone: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Strikethrough(true).
			Padding(0, 1),

		Meta: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		Status: lipgloss.NewStyle().
			Foreground(t.Success).
			Padding(0, 1),

		Error: lipgloss.NewStyle().
			Foreground(t.Error).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
	}
}

var themes = []Theme{Slate, Nord}

var current = Slate

// Current returns the active theme
func Current() Theme {
	return current
}

// CurrentStyles returns styles for the active theme
func CurrentStyles() Styles {
	return NewStyles(current)
}

// Set switches the active theme by name, if it exists
func Set(name string) bool {
	for _, t := range themes {
		if t.Name == name {
			current = t
			return true
		}
	}
	return false
}

// Cycle advances to the next theme and returns its name
func Cycle() string {
	for i, t := range themes {
		if t.Name == current.Name {
			current = themes[(i+1)%len(themes)]
			return current.Name
		}
	}
	current = themes[0]
	return current.Name
}
