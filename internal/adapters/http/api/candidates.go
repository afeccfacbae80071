// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/hirelens/hirelens/internal/adapters/repository"
	"github.com/hirelens/hirelens/internal/domain/model"
)

// CandidatesHandler handles the thin candidate write path.
type CandidatesHandler struct {
	deps IngestDependencies
}

// NewCandidatesHandler creates a new candidates handler.
func NewCandidatesHandler(deps IngestDependencies) *CandidatesHandler {
	return &CandidatesHandler{deps: deps}
}

type candidateRequest struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	RecruiterID string `json:"recruiter_id"`
	CreatedAt   string `json:"created_at"` // RFC3339; defaults to now
}

func (c candidateRequest) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("missing name")
	}
	if c.CreatedAt != "" {
		if _, err := time.Parse(time.RFC3339, c.CreatedAt); err != nil {
			return errors.New("invalid created_at; must be RFC3339")
		}
	}
	return nil
}

type candidateResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	RecruiterID string    `json:"recruiter_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// HandlePostCandidate handles POST /api/candidates requests.
func (h *CandidatesHandler) HandlePostCandidate(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_candidate"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req candidateRequest
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
	st := req.Status
	if st == "" {
		st = "new"
	}
	c, err := h.deps.AddCandidate(r.Context(), model.CandidateEvent{
		Name:        req.Name,
		Status:      st,
		CreatedAt:   createdAt,
		RecruiterID: req.RecruiterID,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, candidateResponse{
		ID:          c.ID,
		Name:        c.Name,
		Status:      c.Status,
		RecruiterID: c.RecruiterID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	})
}

// HandleCandidateStatus handles PUT /api/candidates/{id}/status requests.
func (h *CandidatesHandler) HandleCandidateStatus(w http.ResponseWriter, r *http.Request) {
	const op = "api.put_candidate_status"
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/api/candidates/")
	id, ok := strings.CutSuffix(path, "/status")
	if !ok || id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	if err := h.deps.UpdateCandidateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}
