package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/podratz/leonardo/geometry"
	"github.com/podratz/leonardo/internal/canvas"
	"github.com/podratz/leonardo/internal/config"
	"github.com/podratz/leonardo/internal/phyllotaxis"
	"github.com/podratz/leonardo/internal/storage"
	"github.com/podratz/leonardo/internal/tui"
	"github.com/podratz/leonardo/metals"
)

var (
	flagSpiralSeeds     int
	flagSpiralMagnitude float64
)

var spiralCmd = &cobra.Command{
	Use:   "spiral <metal>",
	Short: "Render a phyllotaxis spiral",
	Long: `Render the Vogel spiral of the given metal to the terminal.

Seed k is placed at radius spacing*sqrt(k) and at the k-th multiple of
the metallic angle. For golden this reproduces the sunflower-head
pattern of the 137.5 degree growth angle.

Examples:
  leonardo spiral golden
  leonardo spiral silver --seeds 500
  leonardo spiral golden --magnitude 2 --config ./my-render.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runSpiral,
}

func init() {
	spiralCmd.Flags().IntVar(&flagSpiralSeeds, "seeds", 0, "Seed count (overrides config)")
	spiralCmd.Flags().Float64Var(&flagSpiralMagnitude, "magnitude", 1, "Magnitude of the metallic number")
}

func runSpiral(cmd *cobra.Command, args []string) {
	variant := resolveVariant(args[0])
	metal := metals.New(variant, flagSpiralMagnitude)

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSpiralSeeds > 0 {
		cfg.Spiral.Seeds = flagSpiralSeeds
	}

	width, height := terminalSize()
	c := canvas.New(width, height-1)

	layout := phyllotaxis.Place(metal, cfg.Spiral.Seeds, cfg.Spiral.Spacing, geometry.Zero())
	phyllotaxis.Draw(c, layout, []rune(cfg.Spiral.Glyphs))

	fmt.Println(tui.RenderCanvas(c))
	fmt.Printf("%s spiral  seeds %d  angle %s  magnitude %s\n",
		variant, cfg.Spiral.Seeds, variant.Angle(), metal)

	recordRender(storage.RenderEntry{
		Variant:   variant.Name(),
		Magnitude: metal.Magnitude,
		Kind:      "spiral",
		Detail:    cfg.Spiral.Seeds,
	})
}

// terminalSize returns the terminal dimensions, with defaults when the
// output is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// recordRender appends to the render history, silently skipping when the
// database is unavailable.
func recordRender(e storage.RenderEntry) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return
	}
	defer store.Close()
	//nolint:errcheck // Best-effort bookkeeping
	store.SaveRender(e)
}
