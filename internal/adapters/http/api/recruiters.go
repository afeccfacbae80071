// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/hirelens/hirelens/internal/domain/model"
)

// RecruitersHandler handles recruiter directory requests.
type RecruitersHandler struct {
	deps RecruiterDependencies
}

// NewRecruitersHandler creates a new recruiters handler.
func NewRecruitersHandler(deps RecruiterDependencies) *RecruitersHandler {
	return &RecruitersHandler{deps: deps}
}

type recruiterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r recruiterRequest) validate() error {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return errors.New("missing name")
	case strings.TrimSpace(r.Email) == "":
		return errors.New("missing email")
	}
	return nil
}

type recruiterResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// HandleRecruiters handles GET and POST /api/recruiters requests.
func (h *RecruitersHandler) HandleRecruiters(w http.ResponseWriter, r *http.Request) {
	const op = "api.recruiters"
	switch r.Method {
	case http.MethodGet:
		recs, err := h.deps.ListRecruiters(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
			return
		}
		out := make([]recruiterResponse, 0, len(recs))
		for _, rec := range recs {
			out = append(out, recruiterResponse{ID: rec.ID, Name: rec.Name, Email: rec.Email})
		}
		writeJSON(w, http.StatusOK, out)
	case http.MethodPost:
		var req recruiterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		rec, err := h.deps.AddRecruiter(r.Context(), model.Recruiter{Name: req.Name, Email: req.Email})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusCreated, recruiterResponse{ID: rec.ID, Name: rec.Name, Email: rec.Email})
	default:
		http.NotFound(w, r)
	}
}
