package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/henri123lemoine/rotabar/internal/tab"
)

// ItemStyle is the resting style of one bar item.
type ItemStyle struct {
	Rotation   int
	LabelColor lipgloss.Color
	IconColor  lipgloss.Color
}

// StyleFor returns the item style under the default theme.
func StyleFor(active bool) ItemStyle {
	return DefaultTheme().StyleFor(active)
}

// StyleFor returns the item style for an active or inactive tab.
// An item is never at rest upright: active icons turn -90°, inactive +90°.
func (t Theme) StyleFor(active bool) ItemStyle {
	if active {
		return ItemStyle{Rotation: ActiveRotation, LabelColor: t.Accent, IconColor: t.Accent}
	}
	return ItemStyle{Rotation: InactiveRotation, LabelColor: t.Inactive, IconColor: t.Accent}
}

// ItemParams contains everything needed to draw one item.
type ItemParams struct {
	Icon   tab.Icon
	Label  string
	Active bool
	// Angle is the displayed rotation. It differs from the resting rotation
	// only while an animation is running.
	Angle float64
	Width int
	Theme Theme
}

// RenderItem renders an icon line over a label line, Width cells wide.
func RenderItem(p ItemParams) string {
	if p.Width <= 0 {
		return ""
	}
	style := p.Theme.StyleFor(p.Active)

	cell := lipgloss.NewStyle().
		Background(p.Theme.Background).
		Width(p.Width).
		Align(lipgloss.Center)

	iconFrame := lipgloss.NewStyle().
		Width(min(IconColumns, p.Width)).
		Align(lipgloss.Center).
		Background(p.Theme.Background).
		Foreground(style.IconColor).
		Render(p.Icon.Rotated(p.Angle))

	label := p.Label
	if p.Width > 2 {
		label = ansi.Truncate(label, p.Width-2, "…")
	} else {
		label = ansi.Truncate(label, p.Width, "")
	}
	labelLine := lipgloss.NewStyle().
		Background(p.Theme.Background).
		Foreground(style.LabelColor).
		Render(label)

	return lipgloss.JoinVertical(lipgloss.Center,
		cell.Render(iconFrame),
		cell.Render(labelLine),
	)
}
