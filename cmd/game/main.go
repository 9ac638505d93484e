package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/tatianab/evolve-adventure/internal/config"
	"github.com/tatianab/evolve-adventure/internal/console"
	"github.com/tatianab/evolve-adventure/internal/engine"
	"github.com/tatianab/evolve-adventure/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	interactive := !cfg.Plain && isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())

	logger := log.New(os.Stderr, "evolve: ", log.LstdFlags)
	switch {
	case cfg.LogFile != "":
		f, err := tea.LogToFile(cfg.LogFile, "evolve")
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.Default()
	case interactive:
		logger.SetOutput(io.Discard)
	}

	eng := engine.New(
		engine.WithDice(engine.NewDice(cfg.Seed)),
		engine.WithSuggestions(cfg.Suggest),
		engine.WithLogger(logger),
	)

	if interactive {
		if err := tui.Run(eng); err != nil {
			fmt.Printf("Error running TUI: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx := context.Background()
	if _, err := eng.Run(ctx, console.NewReader(os.Stdin), console.NewWriter(os.Stdout)); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
