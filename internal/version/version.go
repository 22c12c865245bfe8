// Package version holds build metadata for the shrink CLI. The variables
// can be overridden at build time via -ldflags.
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored renders v with major, minor and patch in distinct colors.
// Anything after the patch number (pre-release, build) stays plain.
func Colored(v string, enabled bool) string {
	major, rest, ok := strings.Cut(v, ".")
	if !ok {
		return v
	}
	minor, rest, ok := strings.Cut(rest, ".")
	if !ok {
		return v
	}
	end := strings.IndexAny(rest, "-+")
	if end < 0 {
		end = len(rest)
	}
	patch, tail := rest[:end], rest[end:]

	parts := []struct {
		c    *color.Color
		text string
	}{
		{color.New(color.FgYellow, color.Bold), major},
		{color.New(color.FgGreen, color.Bold), minor},
		{color.New(color.FgBlue, color.Bold), patch},
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if enabled {
			p.c.EnableColor()
		} else {
			p.c.DisableColor()
		}
		out = append(out, p.c.Sprint(p.text))
	}
	return strings.Join(out, ".") + tail
}
