package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Verbose controls whether timing statistics are printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where timing statistics are printed.
// Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// TimingStats holds timing information for the trainer's phases.
type TimingStats struct {
	TotalTime     time.Duration
	DataGenTime   time.Duration
	ModelInitTime time.Duration
	StepTime      time.Duration
	UpdateTime    time.Duration
	LossTime      time.Duration
}

// PrintTimingStats prints detailed timing statistics.
// Respects the Verbose flag - does nothing if Verbose is false.
func PrintTimingStats(stats *TimingStats, steps int) {
	if !Verbose {
		return
	}
	fmt.Fprintln(Output, "\n=== TIMING STATISTICS ===")
	fmt.Fprintf(Output, "Total training time: %v\n", stats.TotalTime)
	fmt.Fprintf(Output, "Average time per step: %v\n", stats.TotalTime/time.Duration(steps))
	fmt.Fprintf(Output, "Steps completed: %d\n", steps)
	fmt.Fprintln(Output, "\nBreakdown by operation:")
	fmt.Fprintf(Output, "  Data generation: %v (%.1f%%)\n", stats.DataGenTime, float64(stats.DataGenTime)/float64(stats.TotalTime)*100)
	fmt.Fprintf(Output, "  Model initialization: %v (%.1f%%)\n", stats.ModelInitTime, float64(stats.ModelInitTime)/float64(stats.TotalTime)*100)
	fmt.Fprintf(Output, "  Forward/backward steps: %v (%.1f%%)\n", stats.StepTime, float64(stats.StepTime)/float64(stats.TotalTime)*100)
	fmt.Fprintf(Output, "  Weight updates: %v (%.1f%%)\n", stats.UpdateTime, float64(stats.UpdateTime)/float64(stats.TotalTime)*100)
	fmt.Fprintf(Output, "  Loss computation: %v (%.1f%%)\n", stats.LossTime, float64(stats.LossTime)/float64(stats.TotalTime)*100)
	fmt.Fprintln(Output, "\nPerformance metrics:")
	fmt.Fprintf(Output, "  Average step time: %v\n", stats.StepTime/time.Duration(steps))
}

// DurationUS converts any time.Duration to micro-seconds as float64
func DurationUS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000.0
}
