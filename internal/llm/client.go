package llm

import (
	"context"
)

// Client is the interface for invoking a remote analysis model.
// This allows mocking in tests without making real API calls.
type Client interface {
	Analyze(ctx context.Context, request AnalysisRequest) (*AnalysisResult, error)
	Name() string
}
