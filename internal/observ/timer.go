// Package observ aggregates phase durations across the files of one run.
package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase accumulates every measurement taken under one name.
type Phase struct {
	Name  string
	Count int
	Dur   time.Duration
}

// Timer is safe for concurrent use; phases keep first-seen order.
type Timer struct {
	mu     sync.Mutex
	order  []string
	phases map[string]*Phase
}

func NewTimer() *Timer {
	return &Timer{phases: make(map[string]*Phase, 8)}
}

// Start begins a measurement and returns the function that records it.
func (t *Timer) Start(name string) func() {
	if t == nil {
		return func() {}
	}
	begin := time.Now()
	return func() { t.Add(name, time.Since(begin)) }
}

// Add records one measurement of d under name.
func (t *Timer) Add(name string, d time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.phases[name]
	if !ok {
		p = &Phase{Name: name}
		t.phases[name] = p
		t.order = append(t.order, name)
	}
	p.Count++
	p.Dur += d
}

type PhaseReport struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	DurationMS float64 `json:"duration_ms"`
}

type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	var report Report
	var total time.Duration
	for _, name := range t.order {
		p := t.phases[name]
		total += p.Dur
		report.Phases = append(report.Phases, PhaseReport{
			Name:       p.Name,
			Count:      p.Count,
			DurationMS: millis(p.Dur),
		})
	}
	report.TotalMS = millis(total)
	return report
}

// Summary renders the report as an aligned table.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&sb, "  %-12s %9.2f ms  x%d\n", p.Name, p.DurationMS, p.Count)
	}
	fmt.Fprintf(&sb, "  %-12s %9.2f ms\n", "total", report.TotalMS)
	return sb.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
