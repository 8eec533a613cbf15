// leonardo is a CLI for exploring metallic ratios and the geometry they
// generate: golden-angle spirals, metallic rectangles, and the sequences
// behind them.
//
// Usage:
//
//	leonardo seq <metal>       - Print terms of a metallic sequence
//	leonardo angles <metal>    - Print multiples of the metallic angle
//	leonardo spiral <metal>    - Render a phyllotaxis spiral
//	leonardo rects <metal>     - Render nested metallic rectangles
//	leonardo explore [metal]   - Interactive spiral explorer
//	leonardo serve             - Serve the explorer over SSH
//	leonardo history           - Show recent renders
//
// Global flags:
//
//	--db <path>      - Render history database (default: ~/.leonardo/history.db)
//	--config <path>  - Custom render config YAML
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/podratz/leonardo/metals"
)

var (
	// Global flags
	flagDBPath     string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "leonardo",
	Short: "Explore metallic ratios and their geometry",
	Long: `leonardo models the metallic ratios - the golden ratio and its
generalizations - and renders the geometry they generate.

Available metals:
  golden silver bronze copper nickel platinum

Examples:
  leonardo seq golden --count 10
  leonardo angles silver
  leonardo spiral golden --seeds 500
  leonardo rects golden --depth 6
  leonardo explore
  leonardo serve --ssh :23235
  leonardo history --limit 20`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.leonardo/history.db", "Path to render history database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom render config YAML")

	rootCmd.AddCommand(seqCmd)
	rootCmd.AddCommand(anglesCmd)
	rootCmd.AddCommand(spiralCmd)
	rootCmd.AddCommand(rectsCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// resolveVariant parses a metal name argument, exiting with a hint on
// failure.
func resolveVariant(name string) metals.Variant {
	v, err := metals.ParseVariant(name)
	if err != nil {
		names := make([]string, 0, len(metals.Variants()))
		for _, variant := range metals.Variants() {
			names = append(names, variant.Name())
		}
		fmt.Fprintf(os.Stderr, "Error: unknown metal %q\n", name)
		fmt.Fprintf(os.Stderr, "Available metals: %s\n", strings.Join(names, ", "))
		os.Exit(1)
	}
	return v
}
