package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/henri123lemoine/rotabar/internal/config"
	"github.com/henri123lemoine/rotabar/internal/tabbar"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Tab bar and paged container
	Bar tabbar.KeyMap

	// Actions
	Jump key.Binding

	// General
	Confirm key.Binding
	Cancel  key.Binding
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Bar: tabbar.DefaultKeyMap(),
		Jump: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "jump to tab"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous match"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next match"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	km.Bar.Next = tabbar.Rebind(km.Bar.Next, cfg.Next, "next tab")
	km.Bar.Prev = tabbar.Rebind(km.Bar.Prev, cfg.Prev, "previous tab")
	km.Bar.PageNext = tabbar.Rebind(km.Bar.PageNext, cfg.PageNext, "swipe left")
	km.Bar.PagePrev = tabbar.Rebind(km.Bar.PagePrev, cfg.PagePrev, "swipe right")
	km.Jump = tabbar.Rebind(km.Jump, cfg.Jump, "jump to tab")
	km.Help = tabbar.Rebind(km.Help, cfg.Help, "help")
	km.Quit = tabbar.Rebind(km.Quit, cfg.Quit, "quit")

	return km
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Bar.Next, k.Bar.Jump, k.Jump, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return append(k.Bar.FullHelp(), []key.Binding{k.Jump, k.Help, k.Quit})
}
