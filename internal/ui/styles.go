// Package ui handles terminal UI rendering.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorAccent     = lipgloss.Color("#007AFF") // Blue
	ColorInactive   = lipgloss.Color("#8E8E93") // Gray
	ColorBackground = lipgloss.Color("#FFFFFF") // White
	ColorShadow     = lipgloss.Color("#3A3A3C") // Dark gray
	ColorMuted      = lipgloss.Color("245")     // Light gray
	ColorText       = lipgloss.Color("252")     // Light text
	ColorHighlight  = lipgloss.Color("6")       // Cyan
)

// Theme holds the palette the bar is drawn with.
type Theme struct {
	Accent     lipgloss.Color
	Inactive   lipgloss.Color
	Background lipgloss.Color
	Shadow     lipgloss.Color
}

// DefaultTheme returns the stock palette.
func DefaultTheme() Theme {
	return Theme{
		Accent:     ColorAccent,
		Inactive:   ColorInactive,
		Background: ColorBackground,
		Shadow:     ColorShadow,
	}
}

// Styles shared by the host application.
var (
	// Popup box
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	InputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)

	// Toast shown after the selection changes
	ToastStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorAccent).
			Padding(0, 1)

	MatchStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	DotActiveStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	DotInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorInactive)
)

// Symbols
const (
	SymbolCursor      = "›"
	SymbolDotActive   = "●"
	SymbolDotInactive = "○"
	SymbolShadow      = "▁"
)
