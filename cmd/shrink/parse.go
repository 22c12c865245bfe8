package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shrink/internal/compress"
	"shrink/internal/diagfmt"
	"shrink/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.js",
	Short: "Dump the syntax tree of a JavaScript file",
	Long: `Parse prints the syntax tree of a file. With --compress the tree is
shown after the compressor has rewritten it.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
	parseCmd.Flags().Bool("compress", false, "run the compressor with default rules before printing")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	compressed, err := cmd.Flags().GetBool("compress")
	if err != nil {
		return fmt.Errorf("failed to get compress flag: %w", err)
	}
	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	printBag(cmd, result.Bag, result.FileSet)
	if result.Bag.HasErrors() {
		return fmt.Errorf("%s: %w", args[0], driver.ErrHasErrors)
	}

	if compressed {
		compress.New(result.Builder, compress.DefaultOptions()).Build(result.Program)
	}

	switch format {
	case "tree", "pretty":
		return diagfmt.FormatProgramTree(cmd.OutOrStdout(), result.Builder, result.Program, result.FileSet)
	case "json":
		return diagfmt.FormatProgramJSON(cmd.OutOrStdout(), result.Builder, result.Program)
	}
	return fmt.Errorf("unknown format: %s", format)
}
