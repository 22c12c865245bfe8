package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"shrink/internal/driver"
	"shrink/internal/jsdoc"
	"shrink/internal/source"
)

var docCmd = &cobra.Command{
	Use:   "doc [flags] file.js",
	Short: "List JSDoc tags per declaration",
	Long: `Doc pairs each function and variable declaration with the /** ... */
comment directly above it and prints its @param and @deprecated tags.`,
	Args: cobra.ExactArgs(1),
	RunE: runDoc,
}

func init() {
	docCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	docCmd.Flags().Bool("deprecated", false, "only list deprecated declarations")
}

type docTagJSON struct {
	Tag         string `json:"tag"`
	Name        string `json:"name,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

type docEntryJSON struct {
	Kind       string       `json:"kind"`
	Names      []string     `json:"names"`
	Line       uint32       `json:"line"`
	Col        uint32       `json:"col"`
	Deprecated bool         `json:"deprecated"`
	Tags       []docTagJSON `json:"tags"`
}

func runDoc(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	onlyDeprecated, err := cmd.Flags().GetBool("deprecated")
	if err != nil {
		return fmt.Errorf("failed to get deprecated flag: %w", err)
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

	entries := jsdoc.Collect(result.Builder, result.Program, result.File)
	if onlyDeprecated {
		kept := entries[:0]
		for _, e := range entries {
			if e.Deprecated() {
				kept = append(kept, e)
			}
		}
		entries = kept
	}

	switch format {
	case "pretty":
		writeDocPretty(cmd.OutOrStdout(), entries, result.FileSet)
		return nil
	case "json":
		return writeDocJSON(cmd.OutOrStdout(), entries, result.FileSet)
	}
	return fmt.Errorf("unknown format: %s", format)
}

func writeDocPretty(w io.Writer, entries []jsdoc.Entry, fs *source.FileSet) {
	for _, e := range entries {
		pos, _ := fs.Resolve(e.Span)
		fmt.Fprintf(w, "%d:%d %s %s\n", pos.Line, pos.Col, e.Kind, strings.Join(e.Names, ", "))
		for _, t := range e.Tags {
			var sb strings.Builder
			sb.WriteString("  @" + t.Kind.String())
			if t.HasType {
				sb.WriteString(" {" + t.Type + "}")
			}
			if t.Name != "" {
				sb.WriteString(" " + t.Name)
			}
			if t.Description != "" {
				sb.WriteString(" " + t.Description)
			}
			fmt.Fprintln(w, sb.String())
		}
	}
}

func writeDocJSON(w io.Writer, entries []jsdoc.Entry, fs *source.FileSet) error {
	out := make([]docEntryJSON, 0, len(entries))
	for _, e := range entries {
		pos, _ := fs.Resolve(e.Span)
		item := docEntryJSON{
			Kind:       e.Kind.String(),
			Names:      e.Names,
			Line:       pos.Line,
			Col:        pos.Col,
			Deprecated: e.Deprecated(),
			Tags:       make([]docTagJSON, 0, len(e.Tags)),
		}
		for _, t := range e.Tags {
			item.Tags = append(item.Tags, docTagJSON{
				Tag:         t.Kind.String(),
				Name:        t.Name,
				Type:        t.Type,
				Description: t.Description,
			})
		}
		out = append(out, item)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
