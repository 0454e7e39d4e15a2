// Package main is the entry point for the taskbeam terminal application.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskbeam/taskbeam/internal/app"
	"github.com/taskbeam/taskbeam/internal/config"
	"github.com/taskbeam/taskbeam/internal/store"
	"github.com/taskbeam/taskbeam/internal/task"
	"github.com/taskbeam/taskbeam/internal/tui"
	"github.com/taskbeam/taskbeam/internal/voice"
)

const version = "0.1.0"

const helpText = `taskbeam - Terminal to-do list with voice capture and share links

USAGE:
    taskbeam [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file
    --sort MODE     Start sorted by "dueDate" or "project"

CONFIGURATION:
    Config file: ~/.config/taskbeam/config.yaml
    Task data:   ~/.config/taskbeam/tasks.json

KEYBINDINGS:
    j/k or arrows   Move down/up
    a               Add task
    e               Edit task
    x / space       Complete/uncomplete
    d               Delete task (with confirmation)
    s               Switch sort mode
    y               Copy share link for task
    Ctrl+V          Voice capture (inside the add form)
    ?               Help
    q               Quit
`

const configTemplate = `# taskbeam configuration
# Location: ~/.config/taskbeam/config.yaml

data:
  # Path of the task snapshot file. Defaults to tasks.json next to this file.
  # file: /path/to/tasks.json

ui:
  # Enable Vim-style keybindings (default: true)
  vim_mode: true
  # Startup sort mode: dueDate or project
  sort_mode: dueDate

voice:
  # File an external transcriber writes capture results to. When set,
  # taskbeam watches it while listening. When unset, captures are simulated.
  # spool_file: /path/to/voice-result.json
  # Delay before a simulated capture result arrives.
  simulate_delay_ms: 2000

share:
  # Base URL share links are built on.
  base_url: https://taskbeam.dev/share
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		sortMode    string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&sortMode, "sort", "", "Start sorted by dueDate or project")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("taskbeam version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp(sortMode)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(sortFlag string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dataFile, err := cfg.DataFile()
	if err != nil {
		return err
	}
	st := store.New(dataFile)

	state, err := st.Load()
	if err != nil {
		// A corrupt snapshot must never block startup or be overwritten
		// silently. Keep it aside and start fresh.
		backup := dataFile + ".bak"
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		if renameErr := os.Rename(dataFile, backup); renameErr == nil {
			fmt.Fprintf(os.Stderr, "The unreadable snapshot was moved to %s\n", backup)
		}
		state = task.NewState()
	}

	if sortFlag != "" {
		state.SortMode = task.ParseSortMode(sortFlag)
	} else if cfg.UI.SortMode != "" {
		state.SortMode = task.ParseSortMode(cfg.UI.SortMode)
	}

	repo := app.New(state, st)

	// The transcriber spool channel is optional; without it voice capture
	// runs against the simulated channel.
	var channel voice.Channel
	if cfg.Voice.SpoolFile != "" {
		fc, err := voice.NewFileChannel(cfg.Voice.SpoolFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: voice channel unavailable: %v\n", err)
		} else {
			channel = fc
			defer fc.Close()
		}
	}

	ui := tui.NewApp(repo, cfg, channel)
	p := tea.NewProgram(ui, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
