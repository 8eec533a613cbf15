package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/podratz/leonardo/metals"
)

var (
	flagAnglesCount     int
	flagAnglesMagnitude float64
)

var anglesCmd = &cobra.Command{
	Use:   "angles <metal>",
	Short: "Print multiples of the metallic angle",
	Long: `Print successive multiples of the metal's canonical angle, the
rotation 1/(1+ratio) of a full turn used in phyllotaxis models.

With --magnitude the sequence is phase-shifted by the magnitude-adjusted
angle of that metallic number.

Examples:
  leonardo angles golden
  leonardo angles silver --count 20
  leonardo angles golden --magnitude 2.5`,
	Args: cobra.ExactArgs(1),
	Run:  runAngles,
}

func init() {
	anglesCmd.Flags().IntVar(&flagAnglesCount, "count", 12, "Number of angles to print")
	anglesCmd.Flags().Float64Var(&flagAnglesMagnitude, "magnitude", 1, "Magnitude of the metallic number")
}

func runAngles(cmd *cobra.Command, args []string) {
	variant := resolveVariant(args[0])
	metal := metals.New(variant, flagAnglesMagnitude)

	fmt.Printf("%s angle: %s (%.10f turns)\n", variant, variant.Angle(), variant.Angle().Turns)
	if !metal.IsZero() {
		fmt.Printf("adjusted phase for magnitude %s: %s\n", metal, metal.AngleAdjusted())
	}
	fmt.Println()

	fmt.Printf("  %-5s  %-12s  %-12s  %s\n", "n", "canonical", "total", "unit circle")
	fmt.Printf("  %-5s  %-12s  %-12s  %s\n", "-", "---------", "-----", "-----------")

	angles := metal.Angles()
	n := 0
	for a := range angles.Values() {
		point := a.Complex()
		fmt.Printf("  %-5d  %-12s  %-12.2f  (%+.4f, %+.4f)\n",
			n, fmt.Sprintf("%.2f°", a.DegreesCanonical()), a.Degrees(), real(point), imag(point))
		n++
		if n >= flagAnglesCount {
			break
		}
	}
}
