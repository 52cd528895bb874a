package llm

// AnalysisRequest is the outbound payload for a single model call. The
// question has passed the guardrail chain and the context has been redacted
// before it gets here.
type AnalysisRequest struct {
	Question     string
	Context      string
	SystemPrompt string
}

// AnalysisResult is the raw provider answer. Confidence is kept as the
// provider-supplied string; the output validator decides whether it maps to
// a recognized level.
type AnalysisResult struct {
	Summary    string `json:"summary"`
	Confidence string `json:"confidence"`
	Reasoning  string `json:"reasoning,omitempty"`
}
