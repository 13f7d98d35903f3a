package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wilbur182/runa/internal/config"
	"github.com/wilbur182/runa/internal/tui"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	initFlag     bool
	initFullFlag bool
	debugFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "runa [path]",
	Short: "An interactive terminal file browser",
	Long: `runa is a three-pane terminal file browser: navigate a directory
tree, preview files and subdirectories, and run file operations
(create, rename, delete, copy/move) without blocking the UI on disk I/O.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowser,
}

func init() {
	rootCmd.Version = version
	rootCmd.Flags().BoolVar(&initFlag, "init", false, "write a default config file and exit")
	rootCmd.Flags().BoolVar(&initFullFlag, "init-full", false, "write a fully-populated config file and exit")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "enable debug logging to stderr")
	rootCmd.AddCommand(configHelpCmd)
}

var configHelpCmd = &cobra.Command{
	Use:   "config-help",
	Short: "Print the location and precedence of runa's config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("config path: %s\n", config.ConfigPath())
		fmt.Println("override the path with the RUNA_CONFIG environment variable.")
		return nil
	},
}

func runBrowser(cmd *cobra.Command, args []string) error {
	if initFlag || initFullFlag {
		if err := config.WriteInit(initFullFlag); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Printf("wrote config to %s\n", config.ConfigPath())
		return nil
	}

	logLevel := slog.LevelWarn
	if debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}

	model := tui.New(root, cfg, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running runa: %w", err)
	}
	return nil
}
