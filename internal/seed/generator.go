// Package seed generates synthetic recruitment data and submits it to a
// running service, for demos and load checks of the analytics endpoints.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Config controls generation volume and shape.
type Config struct {
	Recruiters int
	Candidates int
	// Days spreads creation timestamps over the trailing N days.
	Days int
	// ScheduleRate is the fraction of candidates that get an interview
	// schedule.
	ScheduleRate float64
	// Seed fixes the RNG for reproducible datasets.
	Seed int64
}

// Recruiter is the wire shape for POST /api/recruiters.
type Recruiter struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Candidate is the wire shape for POST /api/candidates.
type Candidate struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	RecruiterID string `json:"recruiter_id,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// Schedule is the wire shape for POST /api/schedules.
type Schedule struct {
	CandidateID string `json:"candidate_id"`
	CreatedAt   string `json:"created_at"`
}

// Statuses weighted toward the unresolved middle of the funnel, with every
// terminal outcome represented.
var statuses = []string{
	"new", "new", "new",
	"interview-scheduled", "interview-scheduled",
	"hired", "hired",
	"backed-out",
	"backed-out-not-attended-interview",
	"joined-and-left",
	"appointed-not-joined",
	"attended-interview-not-selected",
}

// Generator produces synthetic records.
type Generator struct {
	cfg Config
	rng *rand.Rand
	now time.Time
}

// NewGenerator creates a generator pinned to now.
func NewGenerator(cfg Config, now time.Time) *Generator {
	if cfg.Days <= 0 {
		cfg.Days = 30
	}
	if cfg.ScheduleRate <= 0 {
		cfg.ScheduleRate = 0.4
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)), //nolint:gosec // reproducible datasets
		now: now.UTC(),
	}
}

// Recruiters generates the recruiter roster.
func (g *Generator) Recruiters() []Recruiter {
	out := make([]Recruiter, 0, g.cfg.Recruiters)
	for i := 0; i < g.cfg.Recruiters; i++ {
		name := fmt.Sprintf("recruiter-%02d", i+1)
		out = append(out, Recruiter{
			Name:  name,
			Email: name + "@example.com",
		})
	}
	return out
}

// Candidates generates candidates attributed to the given recruiter ids.
// Roughly one in ten stays unassigned to exercise the not_assigned row.
func (g *Generator) Candidates(recruiterIDs []string) []Candidate {
	out := make([]Candidate, 0, g.cfg.Candidates)
	for i := 0; i < g.cfg.Candidates; i++ {
		c := Candidate{
			Name:      "candidate-" + uuid.NewString()[:8],
			Status:    statuses[g.rng.Intn(len(statuses))],
			CreatedAt: g.timestamp().Format(time.RFC3339),
		}
		if len(recruiterIDs) > 0 && g.rng.Intn(10) != 0 {
			c.RecruiterID = recruiterIDs[g.rng.Intn(len(recruiterIDs))]
		}
		out = append(out, c)
	}
	return out
}

// Schedules generates interview schedules for a sample of candidate ids.
func (g *Generator) Schedules(candidateIDs []string) []Schedule {
	var out []Schedule
	for _, id := range candidateIDs {
		if g.rng.Float64() >= g.cfg.ScheduleRate {
			continue
		}
		out = append(out, Schedule{
			CandidateID: id,
			CreatedAt:   g.timestamp().Format(time.RFC3339),
		})
	}
	return out
}

func (g *Generator) timestamp() time.Time {
	back := time.Duration(g.rng.Intn(g.cfg.Days*24)) * time.Hour
	return g.now.Add(-back)
}
