package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amalg/go-minesweeper/internal/game"
	"github.com/amalg/go-minesweeper/internal/ui"
)

func main() {
	preset := flag.String("preset", "beginner", "Difficulty preset: beginner, intermediate, expert")
	width := flag.Int("width", 0, "Board width (overrides preset)")
	height := flag.Int("height", 0, "Board height (overrides preset)")
	mines := flag.Int("mines", 0, "Mine count (overrides preset)")
	duel := flag.Bool("duel", false, "Alternate reveals with a random opponent")
	seed := flag.Int64("seed", 0, "Board RNG seed (0 = random)")
	flag.Parse()

	config, ok := game.Preset(*preset)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown preset %q (want beginner, intermediate, or expert)\n", *preset)
		os.Exit(1)
	}
	if *width > 0 {
		config.Width = *width
	}
	if *height > 0 {
		config.Height = *height
	}
	if *mines > 0 {
		config.Mines = *mines
	}
	config.Duel = *duel
	config.Seed = *seed

	model, err := ui.NewModel(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid board: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
