package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestDurationUS(t *testing.T) {
	if got := DurationUS(1500 * time.Nanosecond); got != 1.5 {
		t.Errorf("DurationUS(1500ns) = %v, want 1.5", got)
	}
}

func TestPrintTimingStatsRespectsVerbose(t *testing.T) {
	var buf bytes.Buffer
	oldVerbose, oldOutput := Verbose, Output
	defer func() { Verbose, Output = oldVerbose, oldOutput }()
	Output = &buf

	stats := &TimingStats{TotalTime: time.Second, StepTime: 600 * time.Millisecond}

	Verbose = false
	PrintTimingStats(stats, 10)
	if buf.Len() != 0 {
		t.Fatalf("expected no output with Verbose=false, got %q", buf.String())
	}

	Verbose = true
	PrintTimingStats(stats, 10)
	if !strings.Contains(buf.String(), "TIMING STATISTICS") {
		t.Errorf("missing stats header in %q", buf.String())
	}
}
