package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const requestTimeout = 10 * time.Second

// Runner submits generated records to a running service over HTTP.
type Runner struct {
	baseURL string
	client  *http.Client
}

// NewRunner creates a runner targeting baseURL.
func NewRunner(baseURL string) *Runner {
	return &Runner{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// Run generates and submits a full dataset, returning the counts inserted.
func (r *Runner) Run(ctx context.Context, cfg Config) (recruiters, candidates, schedules int, err error) {
	gen := NewGenerator(cfg, time.Now())

	var recruiterIDs []string
	for _, rec := range gen.Recruiters() {
		var created struct {
			ID string `json:"id"`
		}
		if err := r.post(ctx, "/api/recruiters", rec, &created); err != nil {
			return recruiters, candidates, schedules, err
		}
		recruiterIDs = append(recruiterIDs, created.ID)
		recruiters++
	}

	var candidateIDs []string
	for _, c := range gen.Candidates(recruiterIDs) {
		var created struct {
			ID string `json:"id"`
		}
		if err := r.post(ctx, "/api/candidates", c, &created); err != nil {
			return recruiters, candidates, schedules, err
		}
		candidateIDs = append(candidateIDs, created.ID)
		candidates++
	}

	for _, sc := range gen.Schedules(candidateIDs) {
		if err := r.post(ctx, "/api/schedules", sc, nil); err != nil {
			return recruiters, candidates, schedules, err
		}
		schedules++
	}
	return recruiters, candidates, schedules, nil
}

func (r *Runner) post(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("POST %s: unexpected status %d", path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
