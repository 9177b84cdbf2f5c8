package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henri123lemoine/rotabar/internal/tab"
)

var triangle = tab.NewIcon("triangle", "▲", "▶", "▼", "◀")

func TestStyleFor(t *testing.T) {
	active := StyleFor(true)
	assert.Equal(t, -90, active.Rotation)
	assert.Equal(t, ColorAccent, active.LabelColor)
	assert.Equal(t, ColorAccent, active.IconColor)

	inactive := StyleFor(false)
	assert.Equal(t, 90, inactive.Rotation)
	assert.Equal(t, ColorInactive, inactive.LabelColor)
	assert.Equal(t, ColorAccent, inactive.IconColor)
}

func TestStyleForIsNeverUpright(t *testing.T) {
	for _, active := range []bool{true, false} {
		assert.NotZero(t, StyleFor(active).Rotation)
	}
}

func TestThemeStyleForCustomColors(t *testing.T) {
	theme := Theme{Accent: lipgloss.Color("1"), Inactive: lipgloss.Color("2")}
	assert.Equal(t, lipgloss.Color("1"), theme.StyleFor(true).LabelColor)
	assert.Equal(t, lipgloss.Color("2"), theme.StyleFor(false).LabelColor)
}

func TestMetrics(t *testing.T) {
	assert.Equal(t, 4, BarRows)
	assert.Equal(t, 1, ShadowRows)
	assert.Equal(t, 3, IconColumns)
	assert.Equal(t, CornerRadius*2, BarHeight, "corners are fully rounded")
}

func TestItemWidths(t *testing.T) {
	tests := []struct {
		total, n int
		want     []int
	}{
		{10, 2, []int{5, 5}},
		{10, 3, []int{4, 3, 3}},
		{11, 4, []int{3, 3, 3, 2}},
		{7, 1, []int{7}},
		{2, 3, []int{1, 1, 0}},
		{-1, 2, []int{0, 0}},
	}
	for _, tt := range tests {
		got := ItemWidths(tt.total, tt.n)
		assert.Equal(t, tt.want, got, "total=%d n=%d", tt.total, tt.n)
	}
	assert.Nil(t, ItemWidths(10, 0))
}

func TestRenderItem(t *testing.T) {
	active := ansi.Strip(RenderItem(ItemParams{
		Icon: triangle, Label: "Home", Active: true, Angle: -90, Width: 10, Theme: DefaultTheme(),
	}))
	lines := strings.Split(active, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "◀", strings.TrimSpace(lines[0]))
	assert.Equal(t, "Home", strings.TrimSpace(lines[1]))
	assert.Equal(t, 10, ansi.StringWidth(lines[0]))
	assert.Equal(t, 10, ansi.StringWidth(lines[1]))

	inactive := ansi.Strip(RenderItem(ItemParams{
		Icon: triangle, Label: "Profile", Angle: 90, Width: 10, Theme: DefaultTheme(),
	}))
	assert.Equal(t, "▶", strings.TrimSpace(strings.Split(inactive, "\n")[0]))
}

func TestRenderItemLabelColors(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	const (
		accentFg = "38;2;0;122;255"   // #007AFF
		grayFg   = "38;2;142;142;147" // #8E8E93
	)

	render := func(label string, active bool) []string {
		angle := float64(InactiveRotation)
		if active {
			angle = ActiveRotation
		}
		out := RenderItem(ItemParams{
			Icon: triangle, Label: label, Active: active, Angle: angle, Width: 12, Theme: DefaultTheme(),
		})
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 2)
		return lines
	}

	active := render("Home", true)
	assert.Contains(t, active[1], accentFg)
	assert.NotContains(t, active[1], grayFg)
	assert.Contains(t, active[0], accentFg)

	inactive := render("Profile", false)
	assert.Contains(t, inactive[1], grayFg)
	assert.NotContains(t, inactive[1], accentFg)
	// The icon keeps the accent tint either way.
	assert.Contains(t, inactive[0], accentFg)
}

func TestRenderItemTruncatesLabel(t *testing.T) {
	out := ansi.Strip(RenderItem(ItemParams{
		Icon: triangle, Label: "Notifications", Width: 6, Theme: DefaultTheme(),
	}))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Not…", strings.TrimSpace(lines[1]))
}

func TestRenderItemZeroWidth(t *testing.T) {
	assert.Equal(t, "", RenderItem(ItemParams{Icon: triangle, Label: "x"}))
}

func TestRenderBar(t *testing.T) {
	out := ansi.Strip(RenderBar(BarParams{
		Items: []ItemParams{
			{Icon: triangle, Label: "Home", Active: true, Angle: -90},
			{Icon: triangle, Label: "Profile", Angle: 90},
		},
		Width:   40,
		MarginX: 2,
		Theme:   DefaultTheme(),
	}))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, ShadowRows+BarRows)
	for _, line := range lines {
		assert.Equal(t, 36, ansi.StringWidth(line))
	}
	assert.True(t, strings.HasPrefix(lines[ShadowRows], "╭"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "╰"))
	assert.Contains(t, lines[ShadowRows+1], "◀")
	assert.Contains(t, lines[ShadowRows+1], "▶")
	assert.Contains(t, lines[ShadowRows+2], "Home")
	assert.Contains(t, lines[ShadowRows+2], "Profile")
	assert.Less(t, strings.Index(lines[ShadowRows+2], "Home"), strings.Index(lines[ShadowRows+2], "Profile"))
}

func TestRenderBarMarksEveryItem(t *testing.T) {
	var marked []int
	RenderBar(BarParams{
		Items: []ItemParams{{Icon: triangle, Label: "a"}, {Icon: triangle, Label: "b"}, {Icon: triangle, Label: "c"}},
		Width: 30,
		Theme: DefaultTheme(),
		Mark: func(i int, s string) string {
			marked = append(marked, i)
			return s
		},
	})
	assert.Equal(t, []int{0, 1, 2}, marked)
}

func TestOverlayAt(t *testing.T) {
	base := "aaaaa\nbbbbb\nccccc"
	out := OverlayAt(base, "XY", 1, 1, 5, 3)
	assert.Equal(t, "aaaaa\nbXYbb\nccccc", out)

	// Rows outside the grid are dropped.
	out = OverlayAt(base, "1\n2", 0, 2, 5, 3)
	assert.Equal(t, "aaaaa\nbbbbb\n1cccc", out)
}

func TestFitCanvas(t *testing.T) {
	out := FitCanvas("ab\ncdef\ngh", 3, 2)
	assert.Equal(t, "ab \ncde", out)
}

func TestCompose(t *testing.T) {
	content := strings.Repeat(strings.Repeat(".", 10)+"\n", 5)
	out := Compose(content, "==\n==", "*", 10, 5, 1)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "....*.....", lines[2])
	assert.Equal(t, ".==.......", lines[3])
	assert.Equal(t, ".==.......", lines[4])
}

func TestPopup(t *testing.T) {
	out := ansi.Strip(Popup("", "hello", 30, 9))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "╭")
	assert.Equal(t, "", Popup("x", "y", 0, 0))
}
