package recalc

import (
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	StatusCompleted RunStatus = "completed"
	StatusFailed    RunStatus = "failed"
)

// UserDelta records one user's before/after points for the run report.
type UserDelta struct {
	UserID uuid.UUID `json:"user_id"`
	Before int       `json:"before"`
	After  int       `json:"after"`
}

// UserError records a failure loading one user's facts. The user's stored
// score is left untouched and the run continues.
type UserError struct {
	UserID uuid.UUID `json:"user_id"`
	Err    string    `json:"error"`
}

// BatchError records a failed batch commit. Prior batches stay committed;
// the run continues with the next batch.
type BatchError struct {
	Batch int    `json:"batch"` // 1-based batch index
	Users int    `json:"users"`
	Err   string `json:"error"`
}

// Report is what operators consume after a run. There is no interactive
// failure surface mid-run.
type Report struct {
	Status       RunStatus    `json:"status"`
	Processed    int          `json:"processed"` // users committed successfully
	Deltas       []UserDelta  `json:"deltas"`
	UserErrors   []UserError  `json:"user_errors"`
	BatchErrors  []BatchError `json:"batch_errors"`
	RunError     string       `json:"run_error,omitempty"` // fatal initialization or cancellation
	StartedAt    time.Time    `json:"started_at"`
	FinishedAt   time.Time    `json:"finished_at"`
}
