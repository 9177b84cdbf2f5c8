package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UI.AccentColor != "#007AFF" {
		t.Errorf("Expected accent '#007AFF', got %q", cfg.UI.AccentColor)
	}

	if cfg.UI.InactiveColor != "#8E8E93" {
		t.Errorf("Expected inactive '#8E8E93', got %q", cfg.UI.InactiveColor)
	}

	if !cfg.UI.Animate {
		t.Error("Expected Animate to be true")
	}

	if len(cfg.Tabs) != 0 {
		t.Errorf("Expected no explicit tabs, got %d", len(cfg.Tabs))
	}

	tabs := cfg.EffectiveTabs()
	if len(tabs) != 2 || tabs[0].Label != "Home" || tabs[1].Label != "Profile" {
		t.Errorf("Expected Home and Profile default tabs, got %+v", tabs)
	}
}

func TestTheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UI.AccentColor = "#112233"
	theme := cfg.Theme()
	if theme.Accent != lipgloss.Color("#112233") {
		t.Errorf("Expected accent #112233, got %v", theme.Accent)
	}
	if theme.Background != lipgloss.Color("#FFFFFF") {
		t.Errorf("Expected white background, got %v", theme.Background)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		wantWarning bool
	}{
		{
			name:        "default config is valid",
			modify:      func(*Config) {},
			wantWarning: false,
		},
		{
			name:        "invalid accent color",
			modify:      func(c *Config) { c.UI.AccentColor = "blue" },
			wantWarning: true,
		},
		{
			name:        "ansi color number is valid",
			modify:      func(c *Config) { c.UI.ShadowColor = "240" },
			wantWarning: false,
		},
		{
			name:        "ansi color out of range",
			modify:      func(c *Config) { c.UI.ShadowColor = "300" },
			wantWarning: true,
		},
		{
			name:        "negative margin",
			modify:      func(c *Config) { c.UI.MarginX = -1 },
			wantWarning: true,
		},
		{
			name:        "initial selection past last tab",
			modify:      func(c *Config) { c.UI.InitialSelection = 2 },
			wantWarning: true,
		},
		{
			name: "duplicate tab ids",
			modify: func(c *Config) {
				c.Tabs = []TabConfig{
					{ID: 1, Icon: "arrow", Label: "a"},
					{ID: 1, Icon: "arrow", Label: "b"},
				}
			},
			wantWarning: true,
		},
		{
			name: "unknown icon",
			modify: func(c *Config) {
				c.Tabs = []TabConfig{{ID: 0, Icon: "rocket", Label: "a"}}
			},
			wantWarning: true,
		},
		{
			name: "empty label",
			modify: func(c *Config) {
				c.Tabs = []TabConfig{{ID: 0, Icon: "arrow", Label: "  "}}
			},
			wantWarning: true,
		},
		{
			name: "single tab",
			modify: func(c *Config) {
				c.Tabs = []TabConfig{{ID: 0, Icon: "arrow", Label: "Only"}}
			},
			wantWarning: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			warnings := cfg.Validate()
			hasWarnings := len(warnings) > 0
			if hasWarnings != tt.wantWarning {
				t.Errorf("Validate() hasWarnings = %v, want %v. Warnings: %v", hasWarnings, tt.wantWarning, warnings)
			}
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope", "config.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.UI.AccentColor != DefaultConfig().UI.AccentColor {
		t.Errorf("Expected default accent, got %q", cfg.UI.AccentColor)
	}
}

func TestLoadPreservesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `[ui]
accent_color = "#FF0000"
animate = false

[[tabs]]
id = 5
icon = "arrow"
label = "Only"
content = "Just one"
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.UI.AccentColor != "#FF0000" {
		t.Errorf("Expected accent '#FF0000', got %q", cfg.UI.AccentColor)
	}
	if cfg.UI.Animate {
		t.Error("Expected Animate to be false")
	}

	// Unspecified values keep their defaults
	if cfg.UI.InactiveColor != "#8E8E93" {
		t.Errorf("Expected default inactive color, got %q", cfg.UI.InactiveColor)
	}
	if !cfg.UI.ShowPageDots {
		t.Error("Expected ShowPageDots to keep default true")
	}
	if cfg.Keys.Next != "tab" {
		t.Errorf("Expected default next key 'tab', got %q", cfg.Keys.Next)
	}

	tabs := cfg.EffectiveTabs()
	if len(tabs) != 1 || tabs[0].ID != 5 || tabs[0].Label != "Only" {
		t.Errorf("Expected configured tabs to replace defaults, got %+v", tabs)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[ui\naccent_color ="), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	if _, err := LoadFromPath(configPath); err == nil {
		t.Error("Expected parse error")
	}
}

func TestLoadReadsConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "rotabar", "config.toml")
	content := `[ui]
margin_x = 4

[[tabs]]
id = 0
icon = "arrow"
label = "A"
content = "alpha"

[[tabs]]
id = 1
icon = "tee"
label = "B"
content = "beta"
scroll = true
`
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UI.MarginX != 4 {
		t.Errorf("Expected margin 4, got %d", cfg.UI.MarginX)
	}
	if len(cfg.Tabs) != 2 || !cfg.Tabs[1].Scroll || cfg.Tabs[1].Icon != "tee" {
		t.Errorf("Unexpected tabs: %+v", cfg.Tabs)
	}
}

func TestCreateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotabar", "config.toml")
	if err := CreateDefaultConfigFile(path); err != nil {
		t.Fatalf("CreateDefaultConfigFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}
	if !strings.Contains(string(data), "[[tabs]]") {
		t.Error("Expected example tabs in generated config")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("Expected temp file to be renamed away")
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("Generated config does not parse: %v", err)
	}
	if warnings := cfg.Validate(); len(warnings) > 0 {
		t.Errorf("Generated config has warnings: %v", warnings)
	}
	if len(cfg.Tabs) != 2 {
		t.Errorf("Expected 2 tabs, got %d", len(cfg.Tabs))
	}
}

func TestConfigPathRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := ConfigPath(); got != "/tmp/xdg/rotabar/config.toml" {
		t.Errorf("Expected XDG path, got %q", got)
	}
}
