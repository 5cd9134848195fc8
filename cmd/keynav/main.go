// Command keynav browses a directory tree with keyboard and mouse navigation
// and animated scrolling.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/daptify14/keynav/internal/config"
	"github.com/daptify14/keynav/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "keynav [dir]",
		Short: "Keyboard-driven file browser with animated scrolling",
		Long:  "keynav lists the files under a directory as a sectioned list or a zoomable grid. Move the selection with arrow keys, page with PgUp/PgDn and open files in a highlighted document view.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(configPath, tui.ListScreen, rootArg(args), "")
		},
	}
	rootCmd.Version = version + " (commit " + commit + ", built " + date + ")"
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")

	screenCommands := []struct {
		use    string
		short  string
		screen tui.Screen
	}{
		{"list [dir]", "Open directly to the List screen", tui.ListScreen},
		{"grid [dir]", "Open directly to the Grid screen", tui.GridScreen},
	}

	for _, sc := range screenCommands {
		screen := sc.screen
		rootCmd.AddCommand(&cobra.Command{
			Use:   sc.use,
			Short: sc.short,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTUI(configPath, screen, rootArg(args), "")
			},
		})
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "doc <file>",
		Short: "Open a file on the Doc screen; esc returns to its directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(config.ExpandPath(args[0]))
			if err != nil {
				return fmt.Errorf("doc path: %w", err)
			}
			return runTUI(configPath, tui.ListScreen, filepath.Dir(path), path)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func rootArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return config.ExpandPath(args[0])
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func runTUI(configPath string, screen tui.Screen, root, docPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	iconMode, err := tui.ParseIconMode(cfg.Icons)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("root: %w", err)
	}
	if info, err := os.Stat(absRoot); err != nil {
		return fmt.Errorf("root: %w", err)
	} else if !info.IsDir() {
		return fmt.Errorf("root: %s is not a directory", absRoot)
	}

	var debugLog *slog.Logger
	if debugPath := os.Getenv("KEYNAV_DEBUG"); debugPath != "" {
		cleanPath := filepath.Clean(debugPath)
		f, err := os.OpenFile(cleanPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600) //#nosec G304 -- developer-controlled debug log path
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer func() { _ = f.Close() }()
		debugLog = slog.New(slog.NewJSONHandler(f, nil))
	}

	opts := tui.Options{
		Root:          absRoot,
		DocPath:       docPath,
		InitialScreen: screen,
		Config:        cfg,
		IconMode:      iconMode,
		DebugLog:      debugLog,
	}

	model := tui.NewModel(opts)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error: %w", err)
	}
	return nil
}
