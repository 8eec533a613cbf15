package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/podratz/leonardo/internal/config"
	"github.com/podratz/leonardo/internal/storage"
	"github.com/podratz/leonardo/internal/tui"
	"github.com/podratz/leonardo/metals"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [metal]",
	Short: "Interactive spiral explorer",
	Long: `Open the interactive explorer: a rotating phyllotaxis spiral you can
retune live. Arrow keys switch metals, +/- grow and shrink the magnitude
along the metallic sequence, tab flips between the spiral and the nested
rectangles, space pauses the rotation.

Examples:
  leonardo explore
  leonardo explore silver`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExplore,
}

func runExplore(cmd *cobra.Command, args []string) {
	variant := metals.Golden
	if len(args) > 0 {
		variant = resolveVariant(args[0])
	}

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The explorer records the session on quit; run without history when
	// the database cannot be opened.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	width, height := terminalSize()
	model := tui.NewExplorer(tui.ExplorerOptions{
		Width:   width,
		Height:  height,
		Render:  cfg,
		Variant: variant,
		Store:   store,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
