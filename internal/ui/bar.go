package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BarParams contains all parameters needed for rendering the floating bar.
type BarParams struct {
	Items   []ItemParams
	Width   int // full screen width
	MarginX int
	Theme   Theme
	// Mark wraps a rendered item, usually in a click zone. May be nil.
	Mark func(index int, rendered string) string
}

// ItemWidths splits total cells into n equal widths. Leftover cells go to
// the leftmost items, one each.
func ItemWidths(total, n int) []int {
	if n <= 0 {
		return nil
	}
	if total < 0 {
		total = 0
	}
	widths := make([]int, n)
	base, extra := total/n, total%n
	for i := range widths {
		widths[i] = base
		if i < extra {
			widths[i]++
		}
	}
	return widths
}

// BarWidth is the outer width of the bar for a screen width and margin.
func BarWidth(width, marginX int) int {
	w := width - 2*marginX
	if w < 2 {
		w = 2
	}
	return w
}

// RenderBar renders the shadow row and the rounded bar, BarRows+ShadowRows
// lines in total, each BarWidth wide.
func RenderBar(p BarParams) string {
	barWidth := BarWidth(p.Width, p.MarginX)
	inner := barWidth - 2 // rounded border on both sides
	widths := ItemWidths(inner, len(p.Items))

	cells := make([]string, 0, len(p.Items))
	for i, item := range p.Items {
		item.Width = widths[i]
		item.Theme = p.Theme
		rendered := RenderItem(item)
		if p.Mark != nil {
			rendered = p.Mark(i, rendered)
		}
		cells = append(cells, rendered)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	bar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Theme.Background).
		Background(p.Theme.Background).
		Width(inner).
		Height(BarRows - 2).
		Render(row)

	shadow := lipgloss.NewStyle().
		Foreground(p.Theme.Shadow).
		Render(strings.Repeat(SymbolShadow, barWidth))
	shadowLines := make([]string, ShadowRows)
	for i := range shadowLines {
		shadowLines[i] = shadow
	}

	return lipgloss.JoinVertical(lipgloss.Left, append(shadowLines, bar)...)
}

// Compose overlays the bar flush with the bottom edge of the content area,
// inset by marginX on both sides. The extra line, if any, sits directly
// above the bar.
func Compose(content, bar, extra string, width, height, marginX int) string {
	canvas := FitCanvas(content, width, height)
	barLines := strings.Split(bar, "\n")
	y := height - len(barLines)
	canvas = OverlayAt(canvas, bar, marginX, y, width, height)
	if extra != "" {
		extraWidth := lipgloss.Width(extra)
		x := (width - extraWidth) / 2
		if x < 0 {
			x = 0
		}
		canvas = OverlayAt(canvas, extra, x, y-1, width, height)
	}
	return canvas
}
