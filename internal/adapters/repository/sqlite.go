package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/hirelens/hirelens/internal/domain/model"
	"github.com/hirelens/hirelens/pkg/metrics"
)

const defaultMaxOpenConns = 4

const schema = `
CREATE TABLE IF NOT EXISTS recruiters (
	id    TEXT PRIMARY KEY,
	name  TEXT NOT NULL,
	email TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS candidates (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	status       TEXT NOT NULL,
	created_at   INTEGER NOT NULL,
	updated_at   INTEGER NOT NULL,
	recruiter_id TEXT REFERENCES recruiters(id)
);
CREATE INDEX IF NOT EXISTS idx_candidates_created ON candidates(created_at);
CREATE INDEX IF NOT EXISTS idx_candidates_updated ON candidates(updated_at);
CREATE TABLE IF NOT EXISTS schedules (
	id           TEXT PRIMARY KEY,
	candidate_id TEXT NOT NULL REFERENCES candidates(id),
	created_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_schedules_created ON schedules(created_at);
`

// SQLiteStore implements Store over a SQLite database. Timestamps are
// persisted as UTC unix milliseconds so range predicates stay plain integer
// comparisons.
type SQLiteStore struct {
	db           *sql.DB
	bootstrap    bool
	maxOpenConns int
	hasSchedules bool
}

// Open opens (and by default bootstraps) the SQLite database at path.
// Use ":memory:" for an ephemeral store.
func Open(path string, opts ...Option) (*SQLiteStore, error) {
	s := &SQLiteStore{
		bootstrap:    true,
		maxOpenConns: defaultMaxOpenConns,
	}
	for _, opt := range opts {
		opt(s)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenStore, err)
	}
	// An in-memory database exists per connection; the pool must not fan out.
	if path == ":memory:" || strings.Contains(path, "mode=memory") {
		s.maxOpenConns = 1
	}
	db.SetMaxOpenConns(s.maxOpenConns)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpenStore, err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpenStore, err)
	}

	s.db = db
	if s.bootstrap {
		if _, err := db.Exec(schema); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: %w", ErrOpenStore, err)
		}
	}
	s.hasSchedules, err = s.probeSchedules()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpenStore, err)
	}
	return s, nil
}

// Close releases the underlying connection pool.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// HasSchedules reports whether the schedules table exists. When false the
// service substitutes a no-op ScheduleSource and reports degrade to zero
// schedule counts.
func (s *SQLiteStore) HasSchedules() bool {
	return s.hasSchedules
}

func (s *SQLiteStore) probeSchedules() (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'schedules'`,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// InsertRecruiter stores a recruiter, minting an id when absent.
func (s *SQLiteStore) InsertRecruiter(ctx context.Context, r model.Recruiter) (model.Recruiter, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO recruiters (id, name, email) VALUES (?, ?, ?)`,
		r.ID, r.Name, r.Email,
	)
	if err != nil {
		return model.Recruiter{}, fmt.Errorf("%w: %w", ErrBadInsert, err)
	}
	return r, nil
}

// InsertCandidate stores a candidate, minting an id when absent.
func (s *SQLiteStore) InsertCandidate(ctx context.Context, c model.CandidateEvent) (model.CandidateEvent, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO candidates (id, name, status, created_at, updated_at, recruiter_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Status, c.CreatedAt.UTC().UnixMilli(), c.UpdatedAt.UTC().UnixMilli(), nullable(c.RecruiterID),
	)
	if err != nil {
		return model.CandidateEvent{}, fmt.Errorf("%w: %w", ErrBadInsert, err)
	}
	return c, nil
}

// UpdateCandidateStatus records a status transition, bumping updated_at.
func (s *SQLiteStore) UpdateCandidateStatus(ctx context.Context, id, newStatus string, at time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE candidates SET status = ?, updated_at = ? WHERE id = ?`,
		newStatus, at.UTC().UnixMilli(), id,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrQueryStore, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertSchedule stores an interview schedule, minting an id when absent.
func (s *SQLiteStore) InsertSchedule(ctx context.Context, sc model.ScheduleEvent) (model.ScheduleEvent, error) {
	if !s.hasSchedules {
		return model.ScheduleEvent{}, fmt.Errorf("%w: schedules table absent", ErrBadInsert)
	}
	if sc.ID == "" {
		sc.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO schedules (id, candidate_id, created_at) VALUES (?, ?, ?)`,
		sc.ID, sc.CandidateID, sc.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return model.ScheduleEvent{}, fmt.Errorf("%w: %w", ErrBadInsert, err)
	}
	return sc, nil
}

// CountCandidates implements CandidateSource.
func (s *SQLiteStore) CountCandidates(ctx context.Context, f CandidateFilter) (int, error) {
	where, args := candidateWhere(f)
	defer observe("count_candidates", time.Now())
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates`+where, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrQueryStore, err)
	}
	return n, nil
}

// FindCandidates implements CandidateSource.
func (s *SQLiteStore) FindCandidates(ctx context.Context, f CandidateFilter) ([]model.CandidateEvent, error) {
	where, args := candidateWhere(f)
	defer observe("find_candidates", time.Now())
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, status, created_at, updated_at, COALESCE(recruiter_id, '')
		 FROM candidates`+where+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryStore, err)
	}
	defer rows.Close()

	var out []model.CandidateEvent
	for rows.Next() {
		var c model.CandidateEvent
		var created, updated int64
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &created, &updated, &c.RecruiterID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrQueryStore, err)
		}
		c.CreatedAt = time.UnixMilli(created).UTC()
		c.UpdatedAt = time.UnixMilli(updated).UTC()
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryStore, err)
	}
	return out, nil
}

// CountSchedules implements ScheduleSource.
func (s *SQLiteStore) CountSchedules(ctx context.Context, f ScheduleFilter) (int, error) {
	if !s.hasSchedules {
		return 0, nil
	}
	where, args := scheduleWhere(f)
	defer observe("count_schedules", time.Now())
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schedules`+where, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrQueryStore, err)
	}
	return n, nil
}

// FindSchedules implements ScheduleSource.
func (s *SQLiteStore) FindSchedules(ctx context.Context, f ScheduleFilter) ([]model.ScheduleEvent, error) {
	if !s.hasSchedules {
		return nil, nil
	}
	where, args := scheduleWhere(f)
	defer observe("find_schedules", time.Now())
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, candidate_id, created_at FROM schedules`+where+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryStore, err)
	}
	defer rows.Close()

	var out []model.ScheduleEvent
	for rows.Next() {
		var sc model.ScheduleEvent
		var created int64
		if err := rows.Scan(&sc.ID, &sc.CandidateID, &created); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrQueryStore, err)
		}
		sc.CreatedAt = time.UnixMilli(created).UTC()
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryStore, err)
	}
	return out, nil
}

// ListRecruiters implements RecruiterSource.
func (s *SQLiteStore) ListRecruiters(ctx context.Context) ([]model.Recruiter, error) {
	defer observe("list_recruiters", time.Now())
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, email FROM recruiters ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryStore, err)
	}
	defer rows.Close()

	var out []model.Recruiter
	for rows.Next() {
		var r model.Recruiter
		if err := rows.Scan(&r.ID, &r.Name, &r.Email); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrQueryStore, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryStore, err)
	}
	return out, nil
}

// candidateWhere translates a CandidateFilter into a WHERE clause. All set
// predicates are AND-combined.
func candidateWhere(f CandidateFilter) (string, []any) {
	var conds []string
	var args []any

	if f.CreatedWithin != nil {
		conds = append(conds, `created_at >= ? AND created_at < ?`)
		args = append(args, f.CreatedWithin.From.UTC().UnixMilli(), f.CreatedWithin.To.UTC().UnixMilli())
	}
	if f.UpdatedWithin != nil {
		conds = append(conds, `updated_at >= ? AND updated_at < ?`)
		args = append(args, f.UpdatedWithin.From.UTC().UnixMilli(), f.UpdatedWithin.To.UTC().UnixMilli())
	}
	if len(f.StatusIn) > 0 {
		conds = append(conds, `status IN `+placeholders(len(f.StatusIn)))
		for _, v := range f.StatusIn {
			args = append(args, v)
		}
	}
	if len(f.IDIn) > 0 {
		conds = append(conds, `id IN `+placeholders(len(f.IDIn)))
		for _, v := range f.IDIn {
			args = append(args, v)
		}
	}
	switch f.Recruiter {
	case AllRecruiters:
	case Unassigned:
		conds = append(conds, `recruiter_id IS NULL`)
	default:
		conds = append(conds, `recruiter_id = ?`)
		args = append(args, f.Recruiter)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scheduleWhere(f ScheduleFilter) (string, []any) {
	var conds []string
	var args []any

	if f.CreatedWithin != nil {
		conds = append(conds, `created_at >= ? AND created_at < ?`)
		args = append(args, f.CreatedWithin.From.UTC().UnixMilli(), f.CreatedWithin.To.UTC().UnixMilli())
	}
	if len(f.CandidateIn) > 0 {
		conds = append(conds, `candidate_id IN `+placeholders(len(f.CandidateIn)))
		for _, v := range f.CandidateIn {
			args = append(args, v)
		}
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func placeholders(n int) string {
	return "(?" + strings.Repeat(", ?", n-1) + ")"
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func observe(op string, start time.Time) {
	metrics.RecordStoreQueryLatency(op, float64(time.Since(start).Milliseconds()))
}
