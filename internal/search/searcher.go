package search

import (
	"context"

	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/models"
)

// Record is one evidentiary document supplied to the model as context.
type Record struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Tenant  string `json:"tenant,omitempty"`
	Summary string `json:"summary"`
}

// Criteria narrows a record lookup. The pipeline does not decide what data
// to fetch; it passes the caller's question and filters through verbatim.
type Criteria struct {
	Query         string
	LocationFocus string
	Limit         int
}

// Searcher supplies record summaries for a question. Implementations are
// external collaborators; the pipeline treats them as read-only.
type Searcher interface {
	// Kind names the record kind this searcher supplies, used for the
	// per-kind counts on the insight.
	Kind() string
	Search(ctx context.Context, criteria Criteria, user models.Identity) ([]Record, error)
}

// Redactor strips sensitive identifiers from outbound context before it
// leaves the trust boundary.
type Redactor interface {
	Redact(text string) string
}
