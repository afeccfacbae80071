// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hirelens/hirelens/internal/domain/model"
	"github.com/hirelens/hirelens/internal/report"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ReportDependencies
	RecruiterDependencies
	IngestDependencies
}

// ReportDependencies covers the analytics read path.
type ReportDependencies interface {
	BuildReport(ctx context.Context, req report.Request) (*report.Report, error)
	TodaySnapshot(ctx context.Context) (*report.Snapshot, error)
}

// RecruiterDependencies covers the recruiter directory.
type RecruiterDependencies interface {
	ListRecruiters(ctx context.Context) ([]model.Recruiter, error)
	AddRecruiter(ctx context.Context, r model.Recruiter) (model.Recruiter, error)
}

// IngestDependencies covers the thin write path that populates the store.
type IngestDependencies interface {
	AddCandidate(ctx context.Context, c model.CandidateEvent) (model.CandidateEvent, error)
	UpdateCandidateStatus(ctx context.Context, id, newStatus string) error
	AddSchedule(ctx context.Context, sc model.ScheduleEvent) (model.ScheduleEvent, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	analyticsHandler  *AnalyticsHandler
	recruitersHandler *RecruitersHandler
	candidatesHandler *CandidatesHandler
	schedulesHandler  *SchedulesHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		analyticsHandler:  NewAnalyticsHandler(deps),
		recruitersHandler: NewRecruitersHandler(deps),
		candidatesHandler: NewCandidatesHandler(deps),
		schedulesHandler:  NewSchedulesHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/api/analytics", MetricsMiddleware(s.analyticsHandler.HandleGetAnalytics, "analytics"))
	mux.HandleFunc("/api/analytics/today", MetricsMiddleware(s.analyticsHandler.HandleGetToday, "analytics_today"))
	mux.HandleFunc("/api/recruiters", MetricsMiddleware(s.recruitersHandler.HandleRecruiters, "recruiters"))
	mux.HandleFunc("/api/candidates", MetricsMiddleware(s.candidatesHandler.HandlePostCandidate, "candidates"))
	mux.HandleFunc("/api/candidates/", MetricsMiddleware(s.candidatesHandler.HandleCandidateStatus, "candidate_status"))
	mux.HandleFunc("/api/schedules", MetricsMiddleware(s.schedulesHandler.HandlePostSchedule, "schedules"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
