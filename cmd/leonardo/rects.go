package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/podratz/leonardo/internal/canvas"
	"github.com/podratz/leonardo/internal/config"
	"github.com/podratz/leonardo/internal/phyllotaxis"
	"github.com/podratz/leonardo/internal/storage"
	"github.com/podratz/leonardo/internal/tui"
	"github.com/podratz/leonardo/metals"
)

var (
	flagRectsDepth     int
	flagRectsMagnitude float64
)

var rectsCmd = &cobra.Command{
	Use:   "rects <metal>",
	Short: "Render nested metallic rectangles",
	Long: `Render the metal's rectangle sequence: a fixed height equal to the
magnitude, and widths following the metallic sequence, so each outline is
one ratio step wider than the last. The first rectangle's aspect ratio is
the metallic ratio itself.

Examples:
  leonardo rects golden
  leonardo rects silver --depth 4
  leonardo rects golden --magnitude 2`,
	Args: cobra.ExactArgs(1),
	Run:  runRects,
}

func init() {
	rectsCmd.Flags().IntVar(&flagRectsDepth, "depth", 0, "Rectangle count (overrides config)")
	rectsCmd.Flags().Float64Var(&flagRectsMagnitude, "magnitude", 1, "Magnitude of the metallic number")
}

func runRects(cmd *cobra.Command, args []string) {
	variant := resolveVariant(args[0])
	metal := metals.New(variant, flagRectsMagnitude)

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagRectsDepth > 0 {
		cfg.Rects.Depth = flagRectsDepth
	}

	width, height := terminalSize()
	c := canvas.New(width, height-1)

	phyllotaxis.DrawRectangles(c, metal, cfg.Rects.Depth)

	fmt.Println(tui.RenderCanvas(c))
	rect := metal.Rectangle()
	fmt.Printf("%s rectangles  depth %d  first %s  aspect %.10f\n",
		variant, cfg.Rects.Depth, rect, rect.AspectRatio())

	recordRender(storage.RenderEntry{
		Variant:   variant.Name(),
		Magnitude: metal.Magnitude,
		Kind:      "rects",
		Detail:    cfg.Rects.Depth,
	})
}
