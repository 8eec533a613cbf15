package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/podratz/leonardo/internal/storage"
)

var (
	flagHistoryLimit   int
	flagHistoryVariant string
	flagHistoryStats   bool
	flagHistoryClear   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent renders",
	Long: `Show the render history recorded by the spiral, rects, explore,
and serve commands.

Examples:
  leonardo history
  leonardo history --limit 20
  leonardo history --variant silver
  leonardo history --stats
  leonardo history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of entries to show")
	historyCmd.Flags().StringVar(&flagHistoryVariant, "variant", "", "Only show renders of this metal")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show per-metal totals instead of entries")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the entire history")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagHistoryClear:
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")

	case flagHistoryStats:
		stats, err := store.Stats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(stats) == 0 {
			fmt.Println("No renders recorded yet.")
			return
		}
		fmt.Printf("  %-10s  %-8s  %s\n", "metal", "renders", "last")
		fmt.Printf("  %-10s  %-8s  %s\n", "-----", "-------", "----")
		for _, st := range stats {
			fmt.Printf("  %-10s  %-8d  %s\n",
				st.Variant, st.Renders, st.LastRendered.Format("2006-01-02 15:04"))
		}

	default:
		var entries []storage.RenderEntry
		if flagHistoryVariant != "" {
			v := resolveVariant(flagHistoryVariant)
			entries, err = store.ByVariant(v.Name(), flagHistoryLimit)
		} else {
			entries, err = store.Recent(flagHistoryLimit)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(entries) == 0 {
			fmt.Println("No renders recorded yet.")
			return
		}
		fmt.Printf("  %-4s  %-10s  %-10s  %-8s  %-7s  %s\n",
			"id", "metal", "magnitude", "kind", "detail", "when")
		fmt.Printf("  %-4s  %-10s  %-10s  %-8s  %-7s  %s\n",
			"--", "-----", "---------", "----", "------", "----")
		for _, e := range entries {
			fmt.Printf("  %-4d  %-10s  %-10g  %-8s  %-7d  %s\n",
				e.ID, e.Variant, e.Magnitude, e.Kind, e.Detail,
				e.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
}
