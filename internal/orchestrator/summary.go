package orchestrator

import (
	"fmt"
	"time"
)

// RunSummary contains statistics from one pass over a directory.
type RunSummary struct {
	Renamed   int
	Preserved int
	Skipped   int // Collisions
	Errors    int
	Ignored   int // Entries outside the naming convention
	Duration  time.Duration
}

// GenerateSummary creates a summary from a run result.
func GenerateSummary(result *RunResult, duration time.Duration) *RunSummary {
	if result == nil {
		return &RunSummary{Duration: duration}
	}
	return &RunSummary{
		Renamed:   result.Count(OutcomeRenamed),
		Preserved: result.Count(OutcomePreserved),
		Skipped:   result.Count(OutcomeSkipped),
		Errors:    result.Count(OutcomeFailed),
		Ignored:   result.Ignored,
		Duration:  duration,
	}
}

// Total returns the number of SVG files the pass acted on or reported.
func (s *RunSummary) Total() int {
	return s.Renamed + s.Preserved + s.Skipped + s.Errors
}

// HasErrors reports whether any rename failed.
func (s *RunSummary) HasErrors() bool {
	return s.Errors > 0
}

func (s *RunSummary) String() string {
	return fmt.Sprintf("Processed %d SVG files: %d renamed, %d preserved, %d skipped, %d errors",
		s.Total(), s.Renamed, s.Preserved, s.Skipped, s.Errors)
}
