package driver

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"shrink/internal/compress"
)

// Totals aggregates the results of one run.
type Totals struct {
	Files      int
	Cached     int
	Failed     int
	InputSize  int
	OutputSize int
	Stats      compress.Stats
}

func Summarize(results []*Result) Totals {
	var t Totals
	for _, res := range results {
		if res == nil {
			continue
		}
		t.Files++
		if res.Err != nil {
			t.Failed++
			continue
		}
		if res.Cached {
			t.Cached++
		}
		t.InputSize += res.InputSize
		t.OutputSize += res.OutputSize
		t.Stats.Add(res.Stats)
	}
	return t
}

// Reduction is the share of input bytes removed, in percent.
func (t Totals) Reduction() float64 {
	if t.InputSize == 0 {
		return 0
	}
	return 100 * float64(t.InputSize-t.OutputSize) / float64(t.InputSize)
}

// Format renders a one-line summary with locale-aware digit grouping.
func (t Totals) Format(tag language.Tag) string {
	p := message.NewPrinter(tag)
	s := p.Sprintf("%d files, %d → %d bytes (-%.1f%%)", t.Files, t.InputSize, t.OutputSize, t.Reduction())
	if t.Cached > 0 {
		s += p.Sprintf(", %d cached", t.Cached)
	}
	if t.Failed > 0 {
		s += p.Sprintf(", %d failed", t.Failed)
	}
	return s
}

// FormatStats lists the rule counters that fired.
func (t Totals) FormatStats(tag language.Tag) string {
	p := message.NewPrinter(tag)
	s := t.Stats
	return p.Sprintf("empty %d, debugger %d, joined %d, loops %d, undefined %d, booleans %d, typeofs %d",
		s.DroppedEmpty, s.DroppedDebugger, s.JoinedDecls, s.LoopsRewritten,
		s.UndefinedRewritten, s.BooleansRewritten, s.TypeofsRewritten)
}
