package guardrails

import (
	"strings"

	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/llm"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/models"
)

const defaultMinSummaryLength = 10

// OutputValidator is the last line of defense against a malformed or empty
// model response, independent of which provider produced it.
type OutputValidator struct {
	MinSummaryLength int
}

func NewOutputValidator(minSummaryLength int) *OutputValidator {
	if minSummaryLength <= 0 {
		minSummaryLength = defaultMinSummaryLength
	}
	return &OutputValidator{MinSummaryLength: minSummaryLength}
}

// OutputVerdict reports whether a model result is structurally acceptable.
type OutputVerdict struct {
	Valid      bool
	Reason     string
	Confidence models.Confidence
}

// Validate checks for a non-empty summary of minimum length and a
// recognized confidence level.
func (v *OutputValidator) Validate(result *llm.AnalysisResult) OutputVerdict {
	if result == nil {
		return OutputVerdict{Reason: "nil model result"}
	}

	summary := strings.TrimSpace(result.Summary)
	if summary == "" {
		return OutputVerdict{Reason: "empty summary"}
	}
	if len(summary) < v.MinSummaryLength {
		return OutputVerdict{Reason: "summary below minimum length"}
	}

	confidence, ok := models.ParseConfidence(result.Confidence)
	if !ok {
		return OutputVerdict{Reason: "unrecognized confidence level: " + result.Confidence}
	}

	return OutputVerdict{Valid: true, Confidence: confidence}
}
