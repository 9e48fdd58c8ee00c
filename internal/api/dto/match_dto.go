package dto

import (
	"fmt"
	"time"

	"github.com/spec-kit/buddy-service/internal/domain"
	"github.com/spec-kit/buddy-service/pkg/util/errorutil"
)

// MatchRunResponse is the body of a completed run.
type MatchRunResponse struct {
	ID        string               `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Seed      *uint64              `json:"seed,omitempty"`
	Summary   domain.MatchSummary  `json:"summary"`
	Results   []domain.MatchResult `json:"results"`
}

// NewMatchRunResponse maps a run onto its response.
func NewMatchRunResponse(run *domain.MatchRun) MatchRunResponse {
	return MatchRunResponse{
		ID:        run.ID,
		CreatedAt: run.CreatedAt,
		Seed:      run.Seed,
		Summary:   run.Summary,
		Results:   run.Results,
	}
}

// ExportRequest payload for the export endpoints.
type ExportRequest struct {
	Results []domain.MatchResult `json:"results"`
}

// Validate rejects results without a first person.
func (r ExportRequest) Validate() error {
	for i, m := range r.Results {
		if m.Person1.Name == "" {
			return errorutil.NewValidationError(fmt.Sprintf("result %d has no employee1 name", i), map[string]any{"index": i})
		}
	}
	return nil
}
