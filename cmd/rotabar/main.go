package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/rotabar/internal/app"
	"github.com/henri123lemoine/rotabar/internal/config"
	"github.com/henri123lemoine/rotabar/internal/debug"
	"github.com/henri123lemoine/rotabar/internal/tab"
)

var (
	configPath string
	debugPath  string
	selectTab  int
	noAnimate  bool
)

var rootCmd = &cobra.Command{
	Use:   "rotabar",
	Short: "Paged tabs with a floating, rotating icon bar",
	Long: `rotabar shows a set of tabs as pages with a floating bar at the bottom.

Selecting a tab turns its icon a quarter turn counter-clockwise and tints its
label; the other icons turn clockwise. Tabs are defined in the config file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config [path]",
	Short: "Write a commented default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ConfigPath()
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := config.CreateDefaultConfigFile(path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "List the built-in icons and their four orientations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range tab.IconNames() {
			icon, _ := tab.LookupIcon(name)
			fmt.Printf("%-10s %s %s %s %s\n", name,
				icon.Rotated(0), icon.Rotated(90), icon.Rotated(180), icon.Rotated(270))
		}
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default "+config.ConfigPath()+")")
	rootCmd.Flags().StringVar(&debugPath, "debug", "", "write debug log to file")
	rootCmd.Flags().IntVarP(&selectTab, "select", "s", 0, "tab selected at startup (0-based)")
	rootCmd.Flags().BoolVar(&noAnimate, "no-animate", false, "turn icons without animation")

	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(iconsCmd)
}

func run(cmd *cobra.Command, args []string) error {
	if debugPath != "" {
		if err := debug.Enable(debugPath); err != nil {
			return fmt.Errorf("failed to enable debug log: %w", err)
		}
		defer debug.Close()
	}

	// Load configuration
	path := configPath
	var cfg *config.Config
	var err error
	if path == "" {
		path = config.ConfigPath()
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFromPath(path)
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	for _, w := range cfg.Validate() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	if cmd.Flags().Changed("select") {
		cfg.UI.InitialSelection = selectTab
	}
	if noAnimate {
		cfg.UI.Animate = false
	}

	// Create and run the application
	model, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer model.Close()
	debug.Event("starting", "config", path, "tabs", len(cfg.EffectiveTabs()))
	defer debug.Timed("run")()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
