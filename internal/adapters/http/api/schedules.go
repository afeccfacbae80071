// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/hirelens/hirelens/internal/domain/model"
)

// SchedulesHandler handles the thin interview-schedule write path.
type SchedulesHandler struct {
	deps IngestDependencies
}

// NewSchedulesHandler creates a new schedules handler.
func NewSchedulesHandler(deps IngestDependencies) *SchedulesHandler {
	return &SchedulesHandler{deps: deps}
}

type scheduleRequest struct {
	CandidateID string `json:"candidate_id"`
	CreatedAt   string `json:"created_at"` // RFC3339; defaults to now
}

func (s scheduleRequest) validate() error {
	if strings.TrimSpace(s.CandidateID) == "" {
		return errors.New("missing candidate_id")
	}
	if s.CreatedAt != "" {
		if _, err := time.Parse(time.RFC3339, s.CreatedAt); err != nil {
			return errors.New("invalid created_at; must be RFC3339")
		}
	}
	return nil
}

type scheduleResponse struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// HandlePostSchedule handles POST /api/schedules requests.
func (h *SchedulesHandler) HandlePostSchedule(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_schedule"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	createdAt := time.Now().UTC()
	if req.CreatedAt != "" {
		createdAt, _ = time.Parse(time.RFC3339, req.CreatedAt)
	}
	sc, err := h.deps.AddSchedule(r.Context(), model.ScheduleEvent{
		CandidateID: req.CandidateID,
		CreatedAt:   createdAt,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, scheduleResponse{
		ID:          sc.ID,
		CandidateID: sc.CandidateID,
		CreatedAt:   sc.CreatedAt,
	})
}
