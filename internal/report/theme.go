package report

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Vivid Purple
	colorAccent  = lipgloss.Color("#14B8A6") // Teal
	colorWarn    = lipgloss.Color("#F97316") // Orange
	colorGood    = lipgloss.Color("#22C55E") // Green
	colorBad     = lipgloss.Color("#F43F5E") // Rose
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorDim     = lipgloss.Color("#94A3B8") // Slate
	colorBorder  = lipgloss.Color("#334155") // Slate
)

// Theme holds the styles used by the text renderer.
type Theme struct {
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Body     lipgloss.Style
	Dim      lipgloss.Style
	Level    lipgloss.Style
	Good     lipgloss.Style
	Bad      lipgloss.Style
	Warn     lipgloss.Style
	BarFull  lipgloss.Style
	BarEmpty lipgloss.Style
	Card     lipgloss.Style
}

// DefaultTheme returns the colored terminal theme.
func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent),
		Body: lipgloss.NewStyle().
			Foreground(colorText),
		Dim: lipgloss.NewStyle().
			Foreground(colorDim),
		Level: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		Good: lipgloss.NewStyle().
			Foreground(colorGood).
			Bold(true),
		Bad: lipgloss.NewStyle().
			Foreground(colorBad).
			Bold(true),
		Warn: lipgloss.NewStyle().
			Foreground(colorWarn),
		BarFull: lipgloss.NewStyle().
			Foreground(colorAccent),
		BarEmpty: lipgloss.NewStyle().
			Foreground(colorBorder),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
	}
}

// PlainTheme returns a theme that adds no escape codes, for pipes and files.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:    plain,
		Heading:  plain,
		Body:     plain,
		Dim:      plain,
		Level:    plain,
		Good:     plain,
		Bad:      plain,
		Warn:     plain,
		BarFull:  plain,
		BarEmpty: plain,
		Card:     plain,
	}
}
