// Package model contains domain records passed between layers.
package model

import "time"

// CandidateEvent is a candidate record as the store hands it to the
// aggregation engine. Status holds only the current value, not a history,
// so the engine infers "resolved on day X" from UpdatedAt at the moment the
// status matches an outcome.
type CandidateEvent struct {
	ID          string    // store-assigned identifier
	Name        string    // display name, used in the hired list
	Status      string    // current pipeline status, e.g. "hired"
	CreatedAt   time.Time // when the candidate was added
	UpdatedAt   time.Time // last status transition
	RecruiterID string    // recruiter who added the candidate; empty when unassigned
}

// ScheduleEvent records an interview being scheduled, not its outcome.
type ScheduleEvent struct {
	ID          string
	CandidateID string
	CreatedAt   time.Time
}

// Recruiter identifies an HR user who adds candidates.
type Recruiter struct {
	ID    string
	Name  string
	Email string
}
