package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/analysis"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/models"
)

// AnalyzeInput is the MCP tool input schema (matches HTTP API field names).
type AnalyzeInput struct {
	Question      string `json:"question" jsonschema:"business question to answer over indexed records"`
	LocationFocus string `json:"location_focus,omitempty" jsonschema:"optional location filter"`
	ResultLimit   int    `json:"result_limit,omitempty" jsonschema:"optional cap on records fetched per kind"`
	UserID        string `json:"user_id" jsonschema:"caller identity for rate limiting and audit"`
	TenantID      string `json:"tenant_id,omitempty" jsonschema:"tenant scope for record lookup"`
}

// NewAnalyzeHandler returns a tool handler backed by the protected
// pipeline. Pass the returned function to mcp.AddTool.
func NewAnalyzeHandler(orchestrator *analysis.Orchestrator) func(context.Context, *mcp.CallToolRequest, AnalyzeInput) (*mcp.CallToolResult, models.Insight, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, models.Insight, error) {
		identity := models.Identity{ID: input.UserID, TenantID: input.TenantID}
		if identity.ID == "" {
			identity.ID = "mcp"
		}

		insight, err := orchestrator.Analyze(ctx, models.AnalyzeRequest{
			Question:      input.Question,
			LocationFocus: input.LocationFocus,
			ResultLimit:   input.ResultLimit,
		}, identity)
		if err != nil {
			// Guardrail rejections surface as tool errors with the typed
			// reason in the message.
			return nil, models.Insight{}, err
		}
		return nil, insight, nil
	}
}
