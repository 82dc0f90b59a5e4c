package stackdigest

import (
	"context"
	"time"
)

// RunRecord is the append-only record of one pipeline execution. Exactly
// one record is written per completed invocation, last, regardless of
// upstream success or failure.
type RunRecord struct {
	ID             int64     `json:"id"`
	RunDate        time.Time `json:"runDate"`
	Scraped        int       `json:"scraped"`
	Summarized     int       `json:"summarized"`
	Notified       bool      `json:"notified"`
	ElapsedSeconds float64   `json:"elapsedSeconds"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// RunService records pipeline executions for operational monitoring.
// It is a pure recorder; it makes no decisions.
type RunService interface {
	// RecordRun appends a run record. Callers treat failures here as
	// best-effort: a logging failure must not mask the run's outcome.
	RecordRun(ctx context.Context, rec *RunRecord) error

	// RecentRuns returns the most recent run records, newest first.
	RecentRuns(ctx context.Context, limit int) ([]*RunRecord, error)
}
