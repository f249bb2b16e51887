package session

import "time"

// Outcome is the coarse classification of one attempt.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomePartial  Outcome = "partial"
	OutcomeStruggle Outcome = "struggle"
	OutcomeSkipped  Outcome = "skipped"
)

// ActivityAttempt records one trial of an activity. Attempts are created once,
// appended to history, and never mutated afterward.
type ActivityAttempt struct {
	ID         string         `json:"id,omitempty"`
	ActivityID string         `json:"activity_id"`
	Timestamp  time.Time      `json:"timestamp"`
	Outcome    Outcome        `json:"outcome"`
	Details    map[string]any `json:"details,omitempty"`
}

// SessionLog holds one child's attempts in insertion order. A child has at
// most one log in the in-memory history at a time.
type SessionLog struct {
	ChildID  string            `json:"child_id"`
	Attempts []ActivityAttempt `json:"attempts"`
}
