package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"latbench/core/results"
)

var statsCmd = &cobra.Command{
	Use:   "stats <latency-file> [latency-file...]",
	Short: "Analyse raw latency dumps",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		entries, err := results.ReadLatencyFile(path)

		if err != nil {
			return err
		}

		name := filepath.Base(path)
		summary := results.Summarize(entries)

		if summary == nil {
			fmt.Printf("--- Analysis for: %s ---\n", name)
			fmt.Println("No valid data points found for analysis.")
			continue
		}

		fmt.Println(summary.Render(name))
	}

	return nil
}
