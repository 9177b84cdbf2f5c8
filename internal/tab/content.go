package tab

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Content is the body shown in the paged area while its tab is selected.
type Content interface {
	Render(width, height int) string
}

// Interactive is implemented by content that reacts to input while its tab
// is selected.
type Interactive interface {
	Content
	Update(msg tea.Msg) tea.Cmd
}

// Text is static text centered in the content area.
type Text string

// Render implements Content.
func (t Text) Render(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, string(t))
}

// Func adapts a plain render function to Content.
type Func func(width, height int) string

// Render implements Content.
func (f Func) Render(width, height int) string {
	return f(width, height)
}

// Scroll is scrollable text backed by a viewport.
type Scroll struct {
	body     string
	viewport viewport.Model
}

// NewScroll creates scrollable content.
func NewScroll(body string) *Scroll {
	vp := viewport.New(0, 0)
	vp.SetContent(body)
	return &Scroll{body: body, viewport: vp}
}

// Render implements Content.
func (s *Scroll) Render(width, height int) string {
	if s.viewport.Width != width || s.viewport.Height != height {
		s.viewport.Width = width
		s.viewport.Height = height
		s.viewport.SetContent(s.body)
	}
	return s.viewport.View()
}

// Update implements Interactive.
func (s *Scroll) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// YOffset returns the current scroll position.
func (s *Scroll) YOffset() int {
	return s.viewport.YOffset
}
