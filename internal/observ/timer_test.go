package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()

	stop := tm.Begin("builtin lookup")
	time.Sleep(time.Millisecond)
	stop("hit")

	stop = tm.Begin("document load")
	stop("")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("len(Phases) = %d, want 2", len(report.Phases))
	}
	if report.Phases[0].Name != "builtin lookup" {
		t.Errorf("Phases[0].Name = %q, want %q", report.Phases[0].Name, "builtin lookup")
	}
	if report.Phases[0].Note != "hit" {
		t.Errorf("Phases[0].Note = %q, want %q", report.Phases[0].Note, "hit")
	}
	if report.Phases[0].DurationMS <= 0 {
		t.Errorf("Phases[0].DurationMS = %v, want > 0", report.Phases[0].DurationMS)
	}
	if report.TotalMS < report.Phases[0].DurationMS {
		t.Errorf("TotalMS = %v, want >= first phase %v", report.TotalMS, report.Phases[0].DurationMS)
	}
}

func TestTimerStopIdempotent(t *testing.T) {
	tm := NewTimer()

	stop := tm.Begin("search path")
	stop("first")
	first := tm.Report().Phases[0]

	time.Sleep(time.Millisecond)
	stop("second")
	second := tm.Report().Phases[0]

	if second.Note != first.Note {
		t.Errorf("Note = %q after second stop, want %q", second.Note, first.Note)
	}
	if second.DurationMS != first.DurationMS {
		t.Errorf("DurationMS = %v after second stop, want %v", second.DurationMS, first.DurationMS)
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	stop := tm.Begin("builtin lookup")
	stop("miss")

	summary := tm.Summary()
	for _, want := range []string{"timings:", "builtin lookup", "// miss", "total", "ms"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary() missing %q:\n%s", want, summary)
		}
	}
}

func TestTimerEmptyReport(t *testing.T) {
	tm := NewTimer()
	report := tm.Report()
	if len(report.Phases) != 0 {
		t.Errorf("len(Phases) = %d, want 0", len(report.Phases))
	}
	if report.TotalMS != 0 {
		t.Errorf("TotalMS = %v, want 0", report.TotalMS)
	}
}
