// Package report implements the recruitment analytics engine: it resolves a
// reporting window, fetches candidate and schedule records from the store,
// classifies them into funnel outcomes and folds them into time buckets and
// per-recruiter accumulators.
package report

import "time"

// Request carries the caller's report parameters, decoupled from the HTTP
// binding.
type Request struct {
	// Period is one of today|day|week|month|year. Defaults to today.
	Period string
	// From and To are optional YYYY-MM-DD dates overriding Period's bounds.
	From string
	To   string
	// Bucket optionally overrides the period's default granularity:
	// day|week|month|quarter.
	Bucket string
	// HRFilter is "all" (or empty), "not_assigned", or a recruiter id.
	HRFilter string
	// Now pins the clock for window resolution. Zero means wall clock.
	Now time.Time
}

// Bucket is one labeled time sub-interval of the report window. Counters
// fold on counter-specific timestamps, so a candidate added in one bucket
// and hired in another contributes to both.
type Bucket struct {
	Label               string `json:"label"`
	CandidatesAdded     int    `json:"candidatesAdded"`
	Hired               int    `json:"hired"`
	InterviewsScheduled int    `json:"interviewsScheduled"`
	BackedOut           int    `json:"backedOut"`
	NotSelected         int    `json:"notSelected"`
}

// RecruiterStat is one row of the per-recruiter breakdown. HR is the
// recruiter's name, the "not_assigned" sentinel, or the synthetic "All"
// aggregate.
type RecruiterStat struct {
	HR                  string  `json:"hr"`
	CandidatesAdded     int     `json:"candidatesAdded"`
	Hired               int     `json:"hired"`
	InterviewsScheduled int     `json:"interviewsScheduled"`
	BackedOut           int     `json:"backedOut"`
	NotSelected         int     `json:"notSelected"`
	HiredPct            float64 `json:"hiredPct"`
	BackedOutPct        float64 `json:"backedOutPct"`
	NotSelectedPct      float64 `json:"notSelectedPct"`
}

// Comparison relates interviews to hires. Its denominator is "candidates
// interviewed", deliberately distinct from the outcome percentages whose
// denominator is "candidates resolved".
type Comparison struct {
	InterviewsScheduled       int `json:"interviewsScheduled"`
	HiredFromScheduled        int `json:"hiredFromScheduled"`
	UniqueCandidatesScheduled int `json:"uniqueCandidatesScheduled"`
	ConversionPct             int `json:"conversionPct"`
}

// HiredCandidate is one row of the recent-hires list.
type HiredCandidate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DayHiring is one point of the per-day hiring series.
type DayHiring struct {
	Date       string `json:"date"`
	HiredCount int    `json:"hiredCount"`
}

// HRCount pairs a recruiter label with a count.
type HRCount struct {
	HR    string `json:"hr"`
	Count int    `json:"count"`
}

// Report is the full analytics response. Instants serialize as ISO-8601.
type Report struct {
	Period string    `json:"period"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`

	CandidatesAdded     int `json:"candidatesAdded"`
	HiredCount          int `json:"hiredCount"`
	InterviewsScheduled int `json:"interviewsScheduled"`
	BackedOutCount      int `json:"backedOutCount"`
	NotSelectedCount    int `json:"notSelectedCount"`
	TotalOutcomes       int `json:"totalOutcomes"`

	HiredPct       float64 `json:"hiredPct"`
	BackedOutPct   float64 `json:"backedOutPct"`
	NotSelectedPct float64 `json:"notSelectedPct"`

	Comparison        Comparison       `json:"comparison"`
	BarChartBuckets   []Bucket         `json:"barChartBuckets"`
	PerDayHiring      []DayHiring      `json:"perDayHiring"`
	HiredCandidates   []HiredCandidate `json:"hiredCandidates"`
	TopHRByCandidates []HRCount        `json:"topHrByCandidates"`
	HiredByHR         []HRCount        `json:"hiredByHr"`
	HRWise            []RecruiterStat  `json:"hrWise"`
}

// Snapshot is the cheap same-day counts path, without buckets or recruiter
// breakdowns.
type Snapshot struct {
	CandidatesAddedToday     int `json:"candidatesAddedToday"`
	InterviewsScheduledToday int `json:"interviewsScheduledToday"`
	HiredToday               int `json:"hiredToday"`
}
