// Package service owns the store and the report engine, exposing the
// operations the HTTP API depends on.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/hirelens/hirelens/internal/adapters/repository"
	"github.com/hirelens/hirelens/internal/domain/model"
	"github.com/hirelens/hirelens/internal/report"
	"github.com/hirelens/hirelens/pkg/logger"
)

// Service implements the API dependencies for the analytics system.
type Service struct {
	mu sync.Mutex

	store  *repository.SQLiteStore
	engine *report.Engine

	// Configuration
	storePath         string
	hiredListLimit    int
	topRecruiterLimit int

	// State
	started bool

	// Logging
	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStorePath points the service at a SQLite database path.
func WithStorePath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.storePath = path
		}
	}
}

// WithHiredListLimit caps the hiredCandidates list in full reports.
func WithHiredListLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.hiredListLimit = n
		}
	}
}

// WithTopRecruiterLimit caps the topHrByCandidates list in full reports.
func WithTopRecruiterLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topRecruiterLimit = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		storePath:         ":memory:",
		hiredListLimit:    50,
		topRecruiterLimit: 20,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens the store, probes its schedule capability and builds the
// report engine.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.log == nil {
		s.log = logger.Get()
	}

	store, err := repository.Open(s.storePath)
	if err != nil {
		return err
	}
	s.store = store

	// The schedules table is an evolving schema dependency. When it is
	// absent the engine gets the null object and reports degrade to zero
	// schedule counts instead of failing.
	engineOpts := []report.Option{
		report.WithLogger(s.log),
		report.WithHiredListLimit(s.hiredListLimit),
		report.WithTopRecruiterLimit(s.topRecruiterLimit),
	}
	var schedules repository.ScheduleSource = store
	if !store.HasSchedules() {
		s.log.Warn(ctx, "schedules table absent; schedule counts degrade to zero")
		schedules = repository.NoopScheduleSource{}
		engineOpts = append(engineOpts, report.WithDegradedSchedules())
	}
	s.engine = report.New(store, schedules, store, engineOpts...)

	s.started = true
	s.log.Info(ctx, "analytics service started",
		logger.String("store", s.storePath),
		logger.Any("schedules", store.HasSchedules()),
	)
	return nil
}

// Stop closes the store.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if err := s.store.Close(); err != nil {
		s.log.Error(context.Background(), "store close failed", logger.Error(err))
	}
	s.started = false
	s.log.Info(context.Background(), "analytics service stopped")
}

// BuildReport computes the full analytics report.
func (s *Service) BuildReport(ctx context.Context, req report.Request) (*report.Report, error) {
	return s.engine.Build(ctx, req)
}

// TodaySnapshot computes the cheap same-day counts.
func (s *Service) TodaySnapshot(ctx context.Context) (*report.Snapshot, error) {
	return s.engine.Today(ctx, time.Now())
}

// ListRecruiters exposes the recruiter directory.
func (s *Service) ListRecruiters(ctx context.Context) ([]model.Recruiter, error) {
	return s.store.ListRecruiters(ctx)
}

// AddRecruiter stores a recruiter record.
func (s *Service) AddRecruiter(ctx context.Context, r model.Recruiter) (model.Recruiter, error) {
	return s.store.InsertRecruiter(ctx, r)
}

// AddCandidate stores a candidate record.
func (s *Service) AddCandidate(ctx context.Context, c model.CandidateEvent) (model.CandidateEvent, error) {
	return s.store.InsertCandidate(ctx, c)
}

// UpdateCandidateStatus records a candidate status transition.
func (s *Service) UpdateCandidateStatus(ctx context.Context, id, newStatus string) error {
	return s.store.UpdateCandidateStatus(ctx, id, newStatus, time.Now())
}

// AddSchedule stores an interview schedule.
func (s *Service) AddSchedule(ctx context.Context, sc model.ScheduleEvent) (model.ScheduleEvent, error) {
	return s.store.InsertSchedule(ctx, sc)
}
