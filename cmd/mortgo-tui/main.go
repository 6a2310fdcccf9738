package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/mortgo/internal/config"
	"github.com/rgehrsitz/mortgo/internal/tui"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Printf("Error reading environment: %v\n", err)
		os.Exit(1)
	}

	// An empty path starts the form with the default loan
	configPath := settings.ConfigFile
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			fmt.Printf("Error: Config file not found: %s\n", configPath)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(
		tui.NewModel(configPath),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
