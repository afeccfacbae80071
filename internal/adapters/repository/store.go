// Package repository defines the read contract the aggregation engine
// requires from the relational store, and a SQLite implementation of it.
package repository

import (
	"context"
	"time"

	"github.com/hirelens/hirelens/internal/domain/model"
)

// Recruiter filter sentinels. An empty RecruiterFilter matches every
// candidate; Unassigned matches only candidates with no recruiter.
const (
	AllRecruiters = ""
	Unassigned    = "not_assigned"
)

// TimeRange is a half-open [From, To) instant predicate.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// CandidateFilter narrows candidate queries. All set fields are
// AND-combined.
type CandidateFilter struct {
	CreatedWithin *TimeRange
	UpdatedWithin *TimeRange
	StatusIn      []string
	IDIn          []string
	// Recruiter is AllRecruiters, Unassigned, or a concrete recruiter id.
	Recruiter string
}

// ScheduleFilter narrows schedule queries.
type ScheduleFilter struct {
	CreatedWithin *TimeRange
	CandidateIn   []string
}

// CandidateSource exposes read access to candidate records.
type CandidateSource interface {
	CountCandidates(ctx context.Context, f CandidateFilter) (int, error)
	FindCandidates(ctx context.Context, f CandidateFilter) ([]model.CandidateEvent, error)
}

// ScheduleSource exposes read access to interview-schedule records. The
// schedules table is an evolving part of the schema and may be absent; in
// that case a no-op implementation substitutes and the report degrades to
// zero schedule counts.
type ScheduleSource interface {
	CountSchedules(ctx context.Context, f ScheduleFilter) (int, error)
	FindSchedules(ctx context.Context, f ScheduleFilter) ([]model.ScheduleEvent, error)
}

// RecruiterSource lists the recruiters known to the store.
type RecruiterSource interface {
	ListRecruiters(ctx context.Context) ([]model.Recruiter, error)
}

// Store bundles every read capability the engine consumes.
type Store interface {
	CandidateSource
	ScheduleSource
	RecruiterSource
}
