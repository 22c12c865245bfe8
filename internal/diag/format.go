package diag

import (
	"fmt"
	"sort"
	"strings"

	"shrink/internal/source"
)

type shortDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShortDiagnostics renders one line per diagnostic:
// "<sev> <code> <path>:<line>:<col> <message>", sorted by position.
// Notes follow their diagnostic as "note" lines when includeNotes is set.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	rendered := make([]shortDiagnostic, 0, len(diags))
	for _, d := range diags {
		rendered = append(rendered, resolveShort(fs, d.Primary, severityLabel(d.Severity), d.Code.ID(), d.Message))
		if includeNotes {
			for _, n := range d.Notes {
				rendered = append(rendered, resolveShort(fs, n.Span, "note", d.Code.ID(), n.Msg))
			}
		}
	}
	if !includeNotes {
		sort.SliceStable(rendered, func(i, j int) bool {
			di, dj := rendered[i], rendered[j]
			if di.Path != dj.Path {
				return di.Path < dj.Path
			}
			if di.Line != dj.Line {
				return di.Line < dj.Line
			}
			if di.Column != dj.Column {
				return di.Column < dj.Column
			}
			return di.Code < dj.Code
		})
	}
	lines := make([]string, len(rendered))
	for i, d := range rendered {
		lines[i] = fmt.Sprintf("%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
	}
	return strings.Join(lines, "\n")
}

func resolveShort(fs *source.FileSet, sp source.Span, sev, code, msg string) shortDiagnostic {
	out := shortDiagnostic{Severity: sev, Code: code, Message: msg}
	if int(sp.File) >= fs.Len() {
		return out
	}
	start, _ := fs.Resolve(sp)
	out.Path = fs.Get(sp.File).Path
	out.Line = start.Line
	out.Column = start.Col
	return out
}

func severityLabel(s Severity) string {
	return strings.ToLower(s.String())
}
