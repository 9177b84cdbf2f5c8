// Package config handles rotabar configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"github.com/henri123lemoine/rotabar/internal/tab"
	"github.com/henri123lemoine/rotabar/internal/ui"
)

// Config represents rotabar configuration.
type Config struct {
	UI   UIConfig    `toml:"ui"`
	Keys KeysConfig  `toml:"keys"`
	Tabs []TabConfig `toml:"tabs"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Label and icon color of the selected tab
	AccentColor string `toml:"accent_color"`

	// Label color of the other tabs
	InactiveColor string `toml:"inactive_color"`

	// Fill of the floating bar
	BackgroundColor string `toml:"background_color"`

	// Color of the shadow row above the bar
	ShadowColor string `toml:"shadow_color"`

	// Cells between the bar and the screen edges
	MarginX int `toml:"margin_x"`

	// Animate the icon rotation
	Animate bool `toml:"animate"`

	// Show page dots above the bar
	ShowPageDots bool `toml:"show_page_dots"`

	// Tab selected at startup (0-based)
	InitialSelection int `toml:"initial_selection"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Next     string `toml:"next"`
	Prev     string `toml:"prev"`
	PageNext string `toml:"page_next"`
	PagePrev string `toml:"page_prev"`
	Jump     string `toml:"jump"`
	Help     string `toml:"help"`
	Quit     string `toml:"quit"`
}

// TabConfig defines one tab.
type TabConfig struct {
	// Unique, stable id
	ID int `toml:"id"`

	// Built-in icon name (see `rotabar icons`)
	Icon string `toml:"icon"`

	// Text under the icon
	Label string `toml:"label"`

	// Body shown while the tab is selected
	Content string `toml:"content"`

	// Make the body scrollable instead of centered
	Scroll bool `toml:"scroll"`
}

// DefaultConfig returns the default configuration. Tabs is left empty so a
// config file's [[tabs]] replace the defaults; see EffectiveTabs.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			AccentColor:      string(ui.ColorAccent),
			InactiveColor:    string(ui.ColorInactive),
			BackgroundColor:  string(ui.ColorBackground),
			ShadowColor:      string(ui.ColorShadow),
			MarginX:          ui.DefaultMarginX,
			Animate:          true,
			ShowPageDots:     true,
			InitialSelection: 0,
		},
		Keys: KeysConfig{
			Next:     "tab",
			Prev:     "shift+tab",
			PageNext: "right,l,pgdown",
			PagePrev: "left,h,pgup",
			Jump:     "/",
			Help:     "?",
			Quit:     "q,ctrl+c",
		},
	}
}

// DefaultTabs returns the tabs used when the config defines none.
func DefaultTabs() []TabConfig {
	return []TabConfig{
		{ID: 0, Icon: "house", Label: "Home", Content: "First Tab"},
		{ID: 1, Icon: "person", Label: "Profile", Content: "Second Tab"},
	}
}

// EffectiveTabs returns the configured tabs, or DefaultTabs if there are none.
func (c *Config) EffectiveTabs() []TabConfig {
	if len(c.Tabs) == 0 {
		return DefaultTabs()
	}
	return c.Tabs
}

// Theme returns the configured palette.
func (c *Config) Theme() ui.Theme {
	return ui.Theme{
		Accent:     lipgloss.Color(c.UI.AccentColor),
		Inactive:   lipgloss.Color(c.UI.InactiveColor),
		Background: lipgloss.Color(c.UI.BackgroundColor),
		Shadow:     lipgloss.Color(c.UI.ShadowColor),
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/rotabar/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "rotabar", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "rotabar", "config.toml")
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "rotabar", "config.toml")
	}
	return filepath.Join(configDir, "rotabar", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path. A missing file
// yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	// writeLocked holds the exclusive lock while writing.
	fileLock := flock.New(path + ".lock")
	if err := fileLock.RLock(); err != nil {
		return nil, fmt.Errorf("lock config: %w", err)
	}
	defer fileLock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the file.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// CreateDefaultConfigFile creates a default config file with comments.
func CreateDefaultConfigFile(path string) error {
	return writeLocked(path, []byte(generateDefaultConfigContent()))
}

func writeLocked(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("lock config: %w", err)
	}
	defer fileLock.Unlock()

	// Write to temp file then rename for atomicity
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# rotabar configuration\n\n")

	b.WriteString("[ui]\n")
	b.WriteString("# Colors: \"#rrggbb\" or an ANSI color number (0-255)\n")
	fmt.Fprintf(&b, "accent_color = %q\n", cfg.UI.AccentColor)
	fmt.Fprintf(&b, "inactive_color = %q\n", cfg.UI.InactiveColor)
	fmt.Fprintf(&b, "background_color = %q\n", cfg.UI.BackgroundColor)
	fmt.Fprintf(&b, "shadow_color = %q\n", cfg.UI.ShadowColor)
	b.WriteString("# Cells between the bar and the screen edges\n")
	fmt.Fprintf(&b, "margin_x = %d\n", cfg.UI.MarginX)
	b.WriteString("# Animate the icon rotation\n")
	fmt.Fprintf(&b, "animate = %v\n", cfg.UI.Animate)
	b.WriteString("# Show page dots above the bar\n")
	fmt.Fprintf(&b, "show_page_dots = %v\n", cfg.UI.ShowPageDots)
	b.WriteString("# Tab selected at startup (0-based)\n")
	fmt.Fprintf(&b, "initial_selection = %d\n\n", cfg.UI.InitialSelection)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# next = %q\n", cfg.Keys.Next)
	fmt.Fprintf(&b, "# prev = %q\n", cfg.Keys.Prev)
	fmt.Fprintf(&b, "# page_next = %q\n", cfg.Keys.PageNext)
	fmt.Fprintf(&b, "# page_prev = %q\n", cfg.Keys.PagePrev)
	fmt.Fprintf(&b, "# jump = %q\n", cfg.Keys.Jump)
	fmt.Fprintf(&b, "# help = %q\n", cfg.Keys.Help)
	fmt.Fprintf(&b, "# quit = %q\n\n", cfg.Keys.Quit)

	b.WriteString("# Tabs, in bar order. Icons: " + strings.Join(tab.IconNames(), ", ") + "\n")
	for _, t := range DefaultTabs() {
		b.WriteString("[[tabs]]\n")
		fmt.Fprintf(&b, "id = %d\n", t.ID)
		fmt.Fprintf(&b, "icon = %q\n", t.Icon)
		fmt.Fprintf(&b, "label = %q\n", t.Label)
		fmt.Fprintf(&b, "content = %q\n\n", t.Content)
	}

	return b.String()
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validColor accepts "#rrggbb" or an ANSI color number.
func validColor(s string) bool {
	if hexColor.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	colors := []struct {
		key, value string
	}{
		{"ui.accent_color", c.UI.AccentColor},
		{"ui.inactive_color", c.UI.InactiveColor},
		{"ui.background_color", c.UI.BackgroundColor},
		{"ui.shadow_color", c.UI.ShadowColor},
	}
	for _, col := range colors {
		if !validColor(col.value) {
			warnings = append(warnings, fmt.Sprintf("Invalid value for %s: %q (expected #rrggbb or 0-255)", col.key, col.value))
		}
	}

	if c.UI.MarginX < 0 {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.margin_x: %d (must not be negative)", c.UI.MarginX))
	}

	tabs := c.EffectiveTabs()
	if c.UI.InitialSelection < 0 || c.UI.InitialSelection >= len(tabs) {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.initial_selection: %d (expected 0-%d)", c.UI.InitialSelection, len(tabs)-1))
	}

	ids := make(map[int]bool)
	for i, t := range tabs {
		if ids[t.ID] {
			warnings = append(warnings, fmt.Sprintf("Duplicate tab id: %d", t.ID))
		}
		ids[t.ID] = true

		if strings.TrimSpace(t.Label) == "" {
			warnings = append(warnings, fmt.Sprintf("Tab %d has empty label", i))
		}
		if _, ok := tab.LookupIcon(t.Icon); !ok {
			warnings = append(warnings, fmt.Sprintf("Tab %d: unknown icon %q (expected one of %s)", i, t.Icon, strings.Join(tab.IconNames(), ", ")))
		}
	}

	return warnings
}
