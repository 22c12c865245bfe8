package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"shrink/internal/diag"
	"shrink/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	code, path      *color.Color
	gutter, caret   *color.Color
	note            *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch {
	case s >= diag.SevError:
		return p.err
	case s == diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty renders diagnostics for a terminal. The bag is expected to be sorted.
//
// Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with the primary span underlined and,
// when enabled, its notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	baseDir := ""
	if fs != nil {
		baseDir = fs.BaseDir()
	}
	for _, d := range bag.Items() {
		sev := p.severity(d.Severity).Sprint(d.Severity.String())
		code := p.code.Sprint(d.Code.ID())

		if !known(fs, d.Primary) {
			fmt.Fprintf(w, "%s %s: %s\n", sev, code, d.Message)
			continue
		}

		f := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)
		loc := fmt.Sprintf("%s:%d:%d", formatPath(f, opts.PathMode, baseDir), start.Line, start.Col)
		fmt.Fprintf(w, "%s: %s %s: %s\n", p.path.Sprint(loc), sev, code, d.Message)

		writeSnippet(w, p, f, start, end, int(opts.Context))

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			if !known(fs, n.Span) {
				fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), n.Msg)
				continue
			}
			nf := fs.Get(n.Span.File)
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
				formatPath(nf, opts.PathMode, baseDir), ns.Line, ns.Col, n.Msg)
		}
	}
}

// known reports whether sp can be resolved to a line. Synthetic spans
// have no location.
func known(fs *source.FileSet, sp source.Span) bool {
	return fs != nil && !sp.Synthetic() && int(sp.File) < fs.Len()
}

func writeSnippet(w io.Writer, p palette, f *source.File, start, end source.LineCol, context int) {
	first := int(start.Line) - context
	if first < 1 {
		first = 1
	}
	width := len(fmt.Sprint(start.Line))
	for ln := first; ln <= int(start.Line); ln++ {
		// #nosec G115 -- ln is bounded by start.Line
		text := f.GetLine(uint32(ln))
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", width+1, ln), text)
	}

	line := f.GetLine(start.Line)
	from := clampCol(line, start.Col)
	to := len(line)
	if end.Line == start.Line {
		to = clampCol(line, end.Col)
	}
	if to < from {
		to = from
	}
	marker := runewidth.StringWidth(line[from:to])
	if marker < 1 {
		marker = 1
	}
	fmt.Fprintf(w, "%s %s%s\n",
		p.gutter.Sprintf("%*s |", width+1, ""),
		padding(line[:from]),
		p.caret.Sprint("^"+strings.Repeat("~", marker-1)))
}

func clampCol(line string, col uint32) int {
	i := int(col) - 1
	if i < 0 {
		return 0
	}
	if i > len(line) {
		return len(line)
	}
	return i
}

// padding returns blank space as wide as prefix on screen; tabs are kept.
func padding(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}
