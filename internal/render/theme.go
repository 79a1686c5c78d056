// Package render turns query results into styled text for the CLI and TUI.
package render

import "github.com/charmbracelet/lipgloss"

// Theme holds the colors shared by every view.
type Theme struct {
	TitleFg     string
	TitleBg     string
	TitleBorder string
	Accent      string
	Muted       string
	Border      string
	ActiveBdr   string
	StatusBg    string
	StatusFg    string
}

// DefaultTheme is the slate/teal palette.
var DefaultTheme = Theme{
	TitleFg:     "#ffffff",
	TitleBg:     "#0f766e",
	TitleBorder: "#0ea5a4",
	Accent:      "#0ea5a4",
	Muted:       "#94a3b8",
	Border:      "#334155",
	ActiveBdr:   "#7dd3fc",
	StatusBg:    "#0b1226",
	StatusFg:    "#cbd5e1",
}

// HighContrastTheme trades color for legibility.
var HighContrastTheme = Theme{
	TitleFg:     "#000000",
	TitleBg:     "#ffff00",
	TitleBorder: "#ffff00",
	Accent:      "#ffff00",
	Muted:       "#ffffff",
	Border:      "#444444",
	ActiveBdr:   "#ffffff",
	StatusBg:    "#000000",
	StatusFg:    "#ffffff",
}

// ThemeFor picks the palette.
func ThemeFor(highContrast bool) Theme {
	if highContrast {
		return HighContrastTheme
	}
	return DefaultTheme
}

func (t Theme) header() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Accent)).Padding(0, 1)
}

func (t Theme) cell() lipgloss.Style {
	return lipgloss.NewStyle().Padding(0, 1)
}

func (t Theme) highlight() lipgloss.Style {
	return t.cell().Bold(true).Foreground(lipgloss.Color(t.Accent))
}

func (t Theme) label() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Muted))
}
