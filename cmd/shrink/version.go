package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"shrink/internal/compress"
	"shrink/internal/version"
)

type versionOptions struct {
	format      string
	showHash    bool
	showMessage bool
	showDate    bool
	color       bool
}

type versionPayload struct {
	Tool       string `json:"tool"`
	Version    string `json:"version"`
	Rules      string `json:"rules"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show shrink build metadata",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("hash", false, "include git commit hash")
	versionCmd.Flags().Bool("message", false, "include git commit message")
	versionCmd.Flags().Bool("date", false, "include build timestamp")
	versionCmd.Flags().Bool("full", false, "show all build metadata")
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	format, _ := flags.GetString("format")
	full, _ := flags.GetBool("full")
	hash, _ := flags.GetBool("hash")
	message, _ := flags.GetBool("message")
	date, _ := flags.GetBool("date")

	opts := versionOptions{
		format:      strings.ToLower(format),
		showHash:    hash || full,
		showMessage: message || full,
		showDate:    date || full,
		color:       useColor(cmd, os.Stdout),
	}
	switch opts.format {
	case "pretty":
		renderVersionPretty(cmd.OutOrStdout(), collectVersion(opts), opts)
		return nil
	case "json":
		return renderVersionJSON(cmd.OutOrStdout(), collectVersion(opts))
	}
	return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
}

func collectVersion(opts versionOptions) versionPayload {
	v := strings.TrimSpace(version.Version)
	if v == "" {
		v = "dev"
	}
	p := versionPayload{
		Tool:    "shrink",
		Version: v,
		Rules:   compress.DefaultOptions().Fingerprint(),
	}
	if opts.showHash {
		p.GitCommit = valueOrUnknown(version.GitCommit)
	}
	if opts.showMessage {
		p.GitMessage = valueOrUnknown(version.GitMessage)
	}
	if opts.showDate {
		p.BuildDate = valueOrUnknown(version.BuildDate)
	}
	return p
}

func renderVersionPretty(out io.Writer, p versionPayload, opts versionOptions) {
	fmt.Fprintf(out, "%s %s (rules %s)\n", p.Tool, version.Colored(p.Version, opts.color), p.Rules)
	if p.GitCommit != "" {
		fmt.Fprintf(out, "commit:  %s\n", p.GitCommit)
	}
	if p.GitMessage != "" {
		fmt.Fprintf(out, "message: %s\n", p.GitMessage)
	}
	if p.BuildDate != "" {
		fmt.Fprintf(out, "built:   %s\n", p.BuildDate)
	}
}

func renderVersionJSON(out io.Writer, p versionPayload) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func valueOrUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}
