package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerAggregatesByName(t *testing.T) {
	tm := NewTimer()
	tm.Add("parse", 2*time.Millisecond)
	tm.Add("print", time.Millisecond)
	tm.Add("parse", 3*time.Millisecond)

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "parse" || r.Phases[1].Name != "print" {
		t.Fatalf("unexpected phases %+v", r.Phases)
	}
	if r.Phases[0].Count != 2 || r.Phases[0].DurationMS != 5 {
		t.Fatalf("parse phase = %+v", r.Phases[0])
	}
	if r.TotalMS != 6 {
		t.Fatalf("total = %v", r.TotalMS)
	}
	if s := tm.Summary(); !strings.Contains(s, "parse") || !strings.Contains(s, "total") {
		t.Fatalf("summary: %q", s)
	}
}

func TestTimerConcurrentStart(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Start("compress")()
		}()
	}
	wg.Wait()
	if r := tm.Report(); len(r.Phases) != 1 || r.Phases[0].Count != 8 {
		t.Fatalf("unexpected report %+v", r)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Start("x")()
	if len(tm.Report().Phases) != 0 {
		t.Fatal("nil timer must report nothing")
	}
}
