// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	"github.com/hirelens/hirelens/internal/report"
)

// AnalyticsHandler handles analytics report requests.
type AnalyticsHandler struct {
	deps ReportDependencies
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(deps ReportDependencies) *AnalyticsHandler {
	return &AnalyticsHandler{deps: deps}
}

// HandleGetAnalytics handles GET /api/analytics requests.
// Query parameters: period (today|day|week|month|year, default today),
// from/to (YYYY-MM-DD overrides), bucket (day|week|month|quarter) and
// hr (recruiter id, "all" or "not_assigned").
func (h *AnalyticsHandler) HandleGetAnalytics(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_analytics"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	req := report.Request{
		Period:   q.Get("period"),
		From:     q.Get("from"),
		To:       q.Get("to"),
		Bucket:   q.Get("bucket"),
		HRFilter: q.Get("hr"),
	}
	if req.Period == "" {
		req.Period = "today"
	}

	rep, err := h.deps.BuildReport(r.Context(), req)
	if err != nil {
		if errors.Is(err, report.ErrReportUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "report_unavailable", WrapKind(op, ErrUnavailable, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// HandleGetToday handles GET /api/analytics/today requests: the cheap
// same-day snapshot without buckets or recruiter breakdowns.
func (h *AnalyticsHandler) HandleGetToday(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_analytics_today"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	snap, err := h.deps.TodaySnapshot(r.Context())
	if err != nil {
		if errors.Is(err, report.ErrReportUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "report_unavailable", WrapKind(op, ErrUnavailable, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
