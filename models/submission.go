package models

import "time"

// Submission statuses journaled after a run.
const (
	StatusSubmitted = "submitted"
	StatusFailed    = "failed"
	StatusAborted   = "aborted"
)

// SubmissionRecord is the journaled outcome of one record's submission
// attempt. Only outcomes are persisted; option lists are live UI state and
// are never stored.
type SubmissionRecord struct {
	ID          string    `json:"id"`
	TargetURL   string    `json:"target_url"`
	Section     string    `json:"section"`
	Status      string    `json:"status"`
	ErrorDetail string    `json:"error_detail,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
