// Package main is the beaver driver: it exhaustively enumerates every
// binary-alphabet Turing machine with 1 to 4 states, classifies each
// as halting or non-halting within its Busy Beaver step budget, and
// streams one CSV row per machine.
//
// There are no CLI arguments and no environment variables; the run
// writes machine_results.csv plus a per-size summary
// (machine_summary.csv, machine_summary.parquet) in the working
// directory and prints the final counts to stdout.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/akhildatla/beaver/pkg/enum"
	"github.com/akhildatla/beaver/pkg/results"
	"github.com/akhildatla/beaver/pkg/turing"
)

// Output paths, relative to the working directory.
const (
	resultsPath        = "machine_results.csv"
	summaryCSVPath     = "machine_summary.csv"
	summaryParquetPath = "machine_summary.parquet"
)

// sizes are enumerated in order, smallest space first. The (4,2) space
// has 25.6 billion machines; it is included for completeness, as a run
// of that size is expected to be killed rather than finish.
var sizes = []turing.Params{
	{States: 1, Symbols: 2},
	{States: 2, Symbols: 2},
	{States: 3, Symbols: 2},
	{States: 4, Symbols: 2},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	csvw, err := results.NewCSVWriter(resultsPath)
	if err != nil {
		return fmt.Errorf("opening results file: %w", err)
	}

	summary := results.NewSummary(csvw)
	var counts enum.Counts

	for _, p := range sizes {
		if err := enum.Enumerate(ctx, p, summary, &counts); err != nil {
			csvw.Close()
			return fmt.Errorf("enumerating (%d,%d): %w", p.States, p.Symbols, err)
		}
	}

	if err := csvw.Close(); err != nil {
		return fmt.Errorf("closing results file: %w", err)
	}

	fmt.Printf("Number of halting and non-halting machines: %d, %d\n", counts.Halting, counts.NonHalting)
	fmt.Printf("Halting probability: %.6g\n", counts.Probability())

	if err := summary.ExportCSV(ctx, summaryCSVPath); err != nil {
		return fmt.Errorf("writing summary CSV: %w", err)
	}
	if err := summary.ExportParquet(summaryParquetPath); err != nil {
		return fmt.Errorf("writing summary parquet: %w", err)
	}
	return nil
}
