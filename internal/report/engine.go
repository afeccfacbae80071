package report

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hirelens/hirelens/internal/adapters/repository"
	"github.com/hirelens/hirelens/internal/domain/model"
	"github.com/hirelens/hirelens/internal/domain/status"
	"github.com/hirelens/hirelens/internal/domain/window"
	"github.com/hirelens/hirelens/pkg/logger"
	"github.com/hirelens/hirelens/pkg/metrics"
)

// Default list caps for the report payload.
const (
	defaultHiredListLimit    = 50
	defaultTopRecruiterLimit = 20
)

// Label for the synthetic aggregate row in the recruiter breakdown.
const allRecruitersLabel = "All"

// Engine computes analytics reports. It holds no per-request state; every
// Build is a pure function of the request and the store's current contents.
type Engine struct {
	candidates repository.CandidateSource
	schedules  repository.ScheduleSource
	recruiters repository.RecruiterSource
	log        logger.Logger

	hiredListLimit    int
	topRecruiterLimit int
	degradedSchedules bool
}

// New constructs an Engine over the given store capabilities.
func New(c repository.CandidateSource, s repository.ScheduleSource, r repository.RecruiterSource, opts ...Option) *Engine {
	e := &Engine{
		candidates:        c,
		schedules:         s,
		recruiters:        r,
		log:               logger.Get(),
		hiredListLimit:    defaultHiredListLimit,
		topRecruiterLimit: defaultTopRecruiterLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Build computes the full report for the request. Independent fetches run
// concurrently; the first store error cancels the rest and aborts the whole
// report with ErrReportUnavailable.
func (e *Engine) Build(ctx context.Context, req Request) (*Report, error) {
	start := time.Now()

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}
	if req.Period != "" && !window.ValidPeriod(req.Period) && req.From == "" {
		// Permissive by design: unknown periods get the day window.
		e.log.Warn(ctx, "unknown period, defaulting to day", logger.String("period", req.Period))
	}
	win := window.Resolve(now, req.Period, req.From, req.To)
	gran := window.ParseGranularity(req.Bucket, window.DefaultGranularity(req.Period))
	rf := recruiterFilter(req.HRFilter)
	within := repository.TimeRange{From: win.Start, To: win.End}

	var (
		added      []model.CandidateEvent
		resolved   []model.CandidateEvent
		schedules  []model.ScheduleEvent
		recruiters []model.Recruiter
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		added, err = e.candidates.FindCandidates(gctx, repository.CandidateFilter{
			CreatedWithin: &within,
			Recruiter:     rf,
		})
		return err
	})
	g.Go(func() error {
		var err error
		resolved, err = e.candidates.FindCandidates(gctx, repository.CandidateFilter{
			UpdatedWithin: &within,
			StatusIn:      status.TerminalStatuses(),
			Recruiter:     rf,
		})
		return err
	})
	g.Go(func() error {
		var err error
		schedules, err = e.schedules.FindSchedules(gctx, repository.ScheduleFilter{
			CreatedWithin: &within,
		})
		return err
	})
	g.Go(func() error {
		var err error
		recruiters, err = e.recruiters.ListRecruiters(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		metrics.RecordReportError()
		return nil, fmt.Errorf("%w: %w", ErrReportUnavailable, err)
	}

	// Schedules carry no recruiter id of their own; attribution goes
	// schedule -> candidate -> recruiter via a lookup keyed by candidate id.
	byID := make(map[string]model.CandidateEvent, len(added)+len(resolved))
	for _, c := range added {
		byID[c.ID] = c
	}
	for _, c := range resolved {
		byID[c.ID] = c
	}
	if missing := unresolvedCandidates(schedules, byID); len(missing) > 0 {
		extra, err := e.candidates.FindCandidates(ctx, repository.CandidateFilter{IDIn: missing})
		if err != nil {
			metrics.RecordReportError()
			return nil, fmt.Errorf("%w: %w", ErrReportUnavailable, err)
		}
		for _, c := range extra {
			byID[c.ID] = c
		}
	}
	schedules = filterSchedules(schedules, byID, rf)

	rep := e.fold(win, gran, req.Period, added, resolved, schedules, recruiters, byID)

	if e.degradedSchedules {
		metrics.RecordDegradedScheduleRead()
	}
	metrics.RecordReportBuilt()
	metrics.RecordReportBuildDuration(float64(time.Since(start).Milliseconds()))
	return rep, nil
}

// Today computes the cheap same-day snapshot: three raw counts, no buckets,
// no recruiter breakdown.
func (e *Engine) Today(ctx context.Context, now time.Time) (*Snapshot, error) {
	if now.IsZero() {
		now = time.Now()
	}
	win := window.Resolve(now, "day", "", "")
	within := repository.TimeRange{From: win.Start, To: win.End}

	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.CandidatesAddedToday, err = e.candidates.CountCandidates(gctx, repository.CandidateFilter{
			CreatedWithin: &within,
		})
		return err
	})
	g.Go(func() error {
		var err error
		snap.InterviewsScheduledToday, err = e.schedules.CountSchedules(gctx, repository.ScheduleFilter{
			CreatedWithin: &within,
		})
		return err
	})
	g.Go(func() error {
		var err error
		snap.HiredToday, err = e.candidates.CountCandidates(gctx, repository.CandidateFilter{
			UpdatedWithin: &within,
			StatusIn:      []string{status.Hired},
		})
		return err
	})
	if err := g.Wait(); err != nil {
		metrics.RecordReportError()
		return nil, fmt.Errorf("%w: %w", ErrReportUnavailable, err)
	}
	return &snap, nil
}

// fold runs the single-threaded classify-and-accumulate pass. All
// accumulators are local; nothing leaks across requests.
func (e *Engine) fold(
	win window.Window,
	gran window.Granularity,
	period string,
	added, resolved []model.CandidateEvent,
	schedules []model.ScheduleEvent,
	recruiters []model.Recruiter,
	byID map[string]model.CandidateEvent,
) *Report {
	rep := &Report{
		Period: period,
		From:   win.Start,
		To:     win.End,
	}

	buckets := map[string]*Bucket{}
	bucket := func(t time.Time) *Bucket {
		label := window.BucketLabel(t, gran)
		b, ok := buckets[label]
		if !ok {
			b = &Bucket{Label: label}
			buckets[label] = b
		}
		return b
	}

	stats := map[string]*RecruiterStat{}
	stat := func(recruiterID string) *RecruiterStat {
		key := recruiterKey(recruiterID)
		s, ok := stats[key]
		if !ok {
			s = &RecruiterStat{HR: key}
			stats[key] = s
		}
		return s
	}

	// candidatesAdded folds on createdAt.
	rep.CandidatesAdded = len(added)
	for _, c := range added {
		bucket(c.CreatedAt).CandidatesAdded++
		stat(c.RecruiterID).CandidatesAdded++
	}

	// Outcomes fold on updatedAt. The fetch already restricted status and
	// update time, so each record lands in exactly one outcome.
	perDay := map[string]int{}
	var hired []model.CandidateEvent
	for _, c := range resolved {
		switch status.Classify(c.Status) {
		case status.OutcomeHired:
			rep.HiredCount++
			bucket(c.UpdatedAt).Hired++
			stat(c.RecruiterID).Hired++
			perDay[window.BucketLabel(c.UpdatedAt, window.Day)]++
			hired = append(hired, c)
		case status.BackedOut:
			rep.BackedOutCount++
			bucket(c.UpdatedAt).BackedOut++
			stat(c.RecruiterID).BackedOut++
		case status.NotSelected:
			rep.NotSelectedCount++
			bucket(c.UpdatedAt).NotSelected++
			stat(c.RecruiterID).NotSelected++
		}
	}
	rep.TotalOutcomes = rep.HiredCount + rep.BackedOutCount + rep.NotSelectedCount
	rep.HiredPct = pct(rep.HiredCount, rep.TotalOutcomes)
	rep.BackedOutPct = pct(rep.BackedOutCount, rep.TotalOutcomes)
	rep.NotSelectedPct = pct(rep.NotSelectedCount, rep.TotalOutcomes)

	// interviewsScheduled folds on the schedule's createdAt; attribution
	// falls back to not_assigned when the candidate cannot be resolved.
	rep.InterviewsScheduled = len(schedules)
	scheduled := map[string]struct{}{}
	for _, sc := range schedules {
		bucket(sc.CreatedAt).InterviewsScheduled++
		stat(byID[sc.CandidateID].RecruiterID).InterviewsScheduled++
		scheduled[sc.CandidateID] = struct{}{}
	}

	// Conversion: distinct scheduled candidates vs. those hired in-window.
	hiredFromScheduled := 0
	for id := range scheduled {
		c, ok := byID[id]
		if ok && c.Status == status.Hired && win.Contains(c.UpdatedAt) {
			hiredFromScheduled++
		}
	}
	rep.Comparison = Comparison{
		InterviewsScheduled:       rep.InterviewsScheduled,
		HiredFromScheduled:        hiredFromScheduled,
		UniqueCandidatesScheduled: len(scheduled),
		ConversionPct:             roundPct(hiredFromScheduled, len(scheduled)),
	}

	// Bucket labels sort lexicographically, which matches chronological
	// order for every label format.
	rep.BarChartBuckets = make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		rep.BarChartBuckets = append(rep.BarChartBuckets, *b)
	}
	sort.Slice(rep.BarChartBuckets, func(i, j int) bool {
		return rep.BarChartBuckets[i].Label < rep.BarChartBuckets[j].Label
	})

	rep.PerDayHiring = make([]DayHiring, 0, len(perDay))
	for date, n := range perDay {
		rep.PerDayHiring = append(rep.PerDayHiring, DayHiring{Date: date, HiredCount: n})
	}
	sort.Slice(rep.PerDayHiring, func(i, j int) bool {
		return rep.PerDayHiring[i].Date < rep.PerDayHiring[j].Date
	})

	sort.Slice(hired, func(i, j int) bool {
		if !hired[i].UpdatedAt.Equal(hired[j].UpdatedAt) {
			return hired[i].UpdatedAt.After(hired[j].UpdatedAt)
		}
		return hired[i].ID < hired[j].ID
	})
	if len(hired) > e.hiredListLimit {
		hired = hired[:e.hiredListLimit]
	}
	rep.HiredCandidates = make([]HiredCandidate, 0, len(hired))
	for _, c := range hired {
		rep.HiredCandidates = append(rep.HiredCandidates, HiredCandidate{
			ID:        c.ID,
			Name:      c.Name,
			UpdatedAt: c.UpdatedAt,
		})
	}

	rep.TopHRByCandidates, rep.HiredByHR, rep.HRWise = e.recruiterBreakdown(stats, recruiters)
	return rep
}

// recruiterBreakdown derives the per-recruiter rows and the two ranked
// lists from the folded stats. Recruiter ids resolve to display names where
// the store knows them.
func (e *Engine) recruiterBreakdown(stats map[string]*RecruiterStat, recruiters []model.Recruiter) (top, hiredBy []HRCount, rows []RecruiterStat) {
	names := make(map[string]string, len(recruiters))
	for _, r := range recruiters {
		names[r.ID] = r.Name
	}

	all := RecruiterStat{HR: allRecruitersLabel}
	rows = make([]RecruiterStat, 0, len(stats)+1)
	for key, s := range stats {
		if name, ok := names[key]; ok {
			s.HR = name
		}
		s.HiredPct, s.BackedOutPct, s.NotSelectedPct = outcomePcts(s.Hired, s.BackedOut, s.NotSelected)

		all.CandidatesAdded += s.CandidatesAdded
		all.Hired += s.Hired
		all.InterviewsScheduled += s.InterviewsScheduled
		all.BackedOut += s.BackedOut
		all.NotSelected += s.NotSelected
		rows = append(rows, *s)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CandidatesAdded != rows[j].CandidatesAdded {
			return rows[i].CandidatesAdded > rows[j].CandidatesAdded
		}
		return rows[i].HR < rows[j].HR
	})

	for _, s := range rows {
		top = append(top, HRCount{HR: s.HR, Count: s.CandidatesAdded})
		if s.Hired > 0 {
			hiredBy = append(hiredBy, HRCount{HR: s.HR, Count: s.Hired})
		}
	}
	if len(top) > e.topRecruiterLimit {
		top = top[:e.topRecruiterLimit]
	}
	sort.Slice(hiredBy, func(i, j int) bool {
		if hiredBy[i].Count != hiredBy[j].Count {
			return hiredBy[i].Count > hiredBy[j].Count
		}
		return hiredBy[i].HR < hiredBy[j].HR
	})

	all.HiredPct, all.BackedOutPct, all.NotSelectedPct = outcomePcts(all.Hired, all.BackedOut, all.NotSelected)
	rows = append([]RecruiterStat{all}, rows...)
	return top, hiredBy, rows
}

// unresolvedCandidates lists distinct schedule candidate ids missing from
// the lookup, in a stable order.
func unresolvedCandidates(schedules []model.ScheduleEvent, byID map[string]model.CandidateEvent) []string {
	seen := map[string]struct{}{}
	var missing []string
	for _, sc := range schedules {
		if _, ok := byID[sc.CandidateID]; ok {
			continue
		}
		if _, ok := seen[sc.CandidateID]; ok {
			continue
		}
		seen[sc.CandidateID] = struct{}{}
		missing = append(missing, sc.CandidateID)
	}
	sort.Strings(missing)
	return missing
}

// filterSchedules applies the recruiter filter through the
// schedule -> candidate join. Schedules whose candidate cannot be resolved
// attribute to not_assigned.
func filterSchedules(schedules []model.ScheduleEvent, byID map[string]model.CandidateEvent, rf string) []model.ScheduleEvent {
	if rf == repository.AllRecruiters {
		return schedules
	}
	out := schedules[:0]
	for _, sc := range schedules {
		key := recruiterKey(byID[sc.CandidateID].RecruiterID)
		if rf == repository.Unassigned {
			if key == repository.Unassigned {
				out = append(out, sc)
			}
			continue
		}
		if byID[sc.CandidateID].RecruiterID == rf {
			out = append(out, sc)
		}
	}
	return out
}

// recruiterFilter maps the request's hrFilter token onto the store sentinel.
func recruiterFilter(hr string) string {
	switch hr {
	case "", "all":
		return repository.AllRecruiters
	default:
		return hr
	}
}

// recruiterKey maps an empty recruiter id onto the not_assigned sentinel.
func recruiterKey(id string) string {
	if id == "" {
		return repository.Unassigned
	}
	return id
}

// outcomePcts derives the three outcome percentages against the resolved
// total for one accumulator.
func outcomePcts(hired, backedOut, notSelected int) (h, b, n float64) {
	total := hired + backedOut + notSelected
	return pct(hired, total), pct(backedOut, total), pct(notSelected, total)
}

// pct is the shared safe-ratio helper: n/d as a percentage rounded to two
// decimals, 0 when the denominator is 0. Never NaN, never Inf.
func pct(n, d int) float64 {
	if d <= 0 {
		return 0
	}
	return math.Round(float64(n)/float64(d)*10000) / 100
}

// roundPct is pct rounded to the nearest whole percent.
func roundPct(n, d int) int {
	if d <= 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(d) * 100))
}
