package tabbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
)

// KeyMap defines the bar's keybindings.
type KeyMap struct {
	// Bar
	Next key.Binding
	Prev key.Binding
	Jump key.Binding // digits 1-9

	// Paged container
	PageNext key.Binding
	PagePrev key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "go to tab"),
		),
		PageNext: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("→/l", "swipe left"),
		),
		PagePrev: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←/h", "swipe right"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Jump, k.PageNext}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Jump},
		{k.PageNext, k.PagePrev},
	}
}

// Rebind replaces the keys of a binding, keeping it unchanged when keys is
// empty. keys is a comma-separated list.
func Rebind(b key.Binding, keys, desc string) key.Binding {
	parsed := ParseKeys(keys)
	if len(parsed) == 0 {
		return b
	}
	return key.NewBinding(
		key.WithKeys(parsed...),
		key.WithHelp(strings.Join(parsed, "/"), desc),
	)
}

// ParseKeys parses a comma-separated list of keys.
func ParseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

func (k KeyMap) paginatorKeys() paginator.KeyMap {
	return paginator.KeyMap{
		PrevPage: k.PagePrev,
		NextPage: k.PageNext,
	}
}
