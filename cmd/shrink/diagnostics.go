package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shrink/internal/diag"
	"shrink/internal/diagfmt"
	"shrink/internal/driver"
	"shrink/internal/source"
)

// printBag renders bag on stderr in source order, in the format chosen
// by --diagnostics.
func printBag(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	w := cmd.ErrOrStderr()
	format, _ := cmd.Root().PersistentFlags().GetString("diagnostics")
	switch format {
	case "short":
		fmt.Fprintln(w, diag.FormatShortDiagnostics(bag.Items(), fs, true))
	case "json":
		err := diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
		if err != nil {
			fmt.Fprintf(w, "diagnostics: %v\n", err)
		}
		return
	default:
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   2,
			ShowNotes: true,
		})
	}
	if dropped := bag.Dropped(); dropped > 0 {
		fmt.Fprintf(w, "... and %d more\n", dropped)
	}
}

// printResultDiagnostics reports every failed result. MinifyDir results
// share one FileSet, so their bags are merged and printed together.
func printResultDiagnostics(cmd *cobra.Command, results []*driver.Result) {
	merged := diag.NewBag(0)
	var fs *source.FileSet
	for _, res := range results {
		if res == nil || res.Err == nil {
			continue
		}
		if res.Bag == nil || res.Bag.Len() == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", res.Err)
			continue
		}
		merged.Merge(res.Bag)
		fs = res.FileSet
	}
	merged.Dedup()
	printBag(cmd, merged, fs)
}

func maxDiagnosticsFlag(cmd *cobra.Command) (int, error) {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return n, nil
}
