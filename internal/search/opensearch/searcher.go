package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	opensearch "github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/models"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/search"
)

const defaultLimit = 25

// Searcher supplies record summaries from one OpenSearch index. Each index
// holds a single record kind.
type Searcher struct {
	client *opensearchapi.Client
	index  string
	kind   string
}

func NewSearcher(addresses []string, index string, kind string) (*Searcher, error) {
	if index == "" || kind == "" {
		return nil, fmt.Errorf("index and kind are required")
	}

	client, err := opensearchapi.NewClient(opensearchapi.Config{
		Client: opensearch.Config{Addresses: addresses},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create opensearch client: %w", err)
	}

	return &Searcher{client: client, index: index, kind: kind}, nil
}

func (s *Searcher) Kind() string { return s.kind }

type recordSource struct {
	Summary  string `json:"summary"`
	Location string `json:"location"`
	Tenant   string `json:"tenant"`
}

// Search runs a full-text match over the index, scoped to the caller's
// tenant, and maps hits to records.
func (s *Searcher) Search(ctx context.Context, criteria search.Criteria, user models.Identity) ([]search.Record, error) {
	limit := criteria.Limit
	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}

	body, err := buildQuery(criteria, user, limit)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Search(ctx, &opensearchapi.SearchReq{
		Indices: []string{s.index},
		Body:    strings.NewReader(body),
	})
	if err != nil {
		return nil, fmt.Errorf("search on %s failed: %w", s.index, err)
	}

	records := make([]search.Record, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var src recordSource
		if err := json.Unmarshal(hit.Source, &src); err != nil {
			continue
		}
		records = append(records, search.Record{
			ID:      hit.ID,
			Kind:    s.kind,
			Tenant:  src.Tenant,
			Summary: src.Summary,
		})
	}
	return records, nil
}

func buildQuery(criteria search.Criteria, user models.Identity, limit int) (string, error) {
	must := []map[string]any{
		{"match": map[string]any{"summary": criteria.Query}},
	}
	if criteria.LocationFocus != "" {
		must = append(must, map[string]any{"match": map[string]any{"location": criteria.LocationFocus}})
	}

	query := map[string]any{
		"size": limit,
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
				"filter": []map[string]any{
					{"term": map[string]any{"tenant": user.TenantID}},
				},
			},
		},
	}

	raw, err := json.Marshal(query)
	if err != nil {
		return "", fmt.Errorf("unable to build search query: %w", err)
	}
	return string(raw), nil
}
