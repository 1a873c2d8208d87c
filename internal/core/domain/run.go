package domain

import "time"

// RunRecord captures the outcome of one learn invocation for the run
// history. Records are append-only; a failed run is recorded with its
// failure summary rather than discarded.
type RunRecord struct {
	// ID uniquely identifies the run.
	ID string

	// StartedAt is when the solver subprocess was launched.
	StartedAt time.Time

	// FinishedAt is when the subprocess terminated.
	FinishedAt time.Time

	// DataPath is the canonical data file the solver consumed.
	DataPath string

	// Variables is the number of variables in the data set.
	Variables int

	// ExitCode is the solver process exit status.
	ExitCode int

	// Succeeded reports whether a network was recovered.
	Succeeded bool

	// Score is the learned network's total score. Zero when the run failed.
	Score float64

	// Arcs is the learned edge count. Zero when the run failed.
	Arcs int

	// Failure is a short failure summary, empty on success.
	Failure string
}

// Duration returns the solver wall-clock time for this run.
func (r RunRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
