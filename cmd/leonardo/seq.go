package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/podratz/leonardo/sequences"
)

var (
	flagSeqScale float64
	flagSeqCount int
	flagSeqFrom  int
	flagSeqTo    int
	flagSeqStep  int
)

var seqCmd = &cobra.Command{
	Use:   "seq <metal>",
	Short: "Print terms of a metallic sequence",
	Long: `Print terms of the geometric sequence for the given metal.

Without range flags the first --count terms are printed. With range
flags, the half-open index range [--from, --to) is printed, optionally
striding by --step. Negative indices address predecessor terms.

Examples:
  leonardo seq golden
  leonardo seq silver --count 15 --scale 2
  leonardo seq golden --from -3 --to 4
  leonardo seq golden --from 0 --to 10 --step 2`,
	Args: cobra.ExactArgs(1),
	Run:  runSeq,
}

func init() {
	seqCmd.Flags().Float64Var(&flagSeqScale, "scale", 1, "Scale factor of the sequence")
	seqCmd.Flags().IntVar(&flagSeqCount, "count", 10, "Number of terms without range flags")
	seqCmd.Flags().IntVar(&flagSeqFrom, "from", 0, "Range start index (inclusive)")
	seqCmd.Flags().IntVar(&flagSeqTo, "to", 0, "Range stop index (exclusive)")
	seqCmd.Flags().IntVar(&flagSeqStep, "step", 0, "Range stride")
}

func runSeq(cmd *cobra.Command, args []string) {
	variant := resolveVariant(args[0])
	seq := variant.Sequence(flagSeqScale)

	fmt.Printf("%s sequence (ratio %.10f, scale %g)\n\n", variant, variant.Ratio(), flagSeqScale)

	hasFrom := cmd.Flags().Changed("from")
	hasTo := cmd.Flags().Changed("to")
	hasStep := cmd.Flags().Changed("step")

	if !hasFrom && !hasTo && !hasStep {
		n := 0
		for term := range seq.Values() {
			fmt.Printf("  a(%d)\t%.10g\n", n, term)
			n++
			if n >= flagSeqCount {
				break
			}
		}
		return
	}

	// Build the span from exactly the flags the user set, so the typed
	// slice errors (missing start, missing stop, zero step) surface as-is.
	span := sequences.Span{}
	if hasFrom {
		span = sequences.From(flagSeqFrom)
	}
	if hasTo {
		span = span.To(flagSeqTo)
	}
	if hasStep {
		span = span.By(flagSeqStep)
	}

	terms, err := seq.Slice(span)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	step := 1
	if hasStep {
		step = flagSeqStep
	}
	for i, term := range terms {
		fmt.Printf("  a(%d)\t%.10g\n", flagSeqFrom+i*step, term)
	}
}
