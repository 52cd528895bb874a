package models

import (
	"strings"
	"time"
)

// Confidence is the model's self-reported certainty, bounded to three levels
// so downstream consumers never have to interpret free-form qualifiers.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ParseConfidence normalizes a raw model-supplied confidence string.
// The second return value is false when the value is not one of the
// recognized levels.
func ParseConfidence(s string) (Confidence, bool) {
	switch Confidence(strings.ToLower(strings.TrimSpace(s))) {
	case ConfidenceHigh:
		return ConfidenceHigh, true
	case ConfidenceMedium:
		return ConfidenceMedium, true
	case ConfidenceLow:
		return ConfidenceLow, true
	}
	return "", false
}

// Identity is the authenticated caller principal. Authentication and tenant
// resolution happen upstream; the pipeline only keys rate budgets and audit
// events off these fields.
type Identity struct {
	ID         string `json:"id"`
	Role       string `json:"role"`
	TenantID   string `json:"tenant_id"`
	TenantType string `json:"tenant_type"`
}

// AnalyzeRequest is the inbound question. Transient, never persisted.
type AnalyzeRequest struct {
	Question      string `json:"question"`
	LocationFocus string `json:"location_focus,omitempty"`
	ResultLimit   int    `json:"result_limit,omitempty"`
}

// AnalyzeEvent is one queued question, delivered over a stream or read from
// a batch file. The same guardrail chain applies to queued questions as to
// synchronous ones.
type AnalyzeEvent struct {
	EventID  string         `json:"event_id"`
	Identity Identity       `json:"identity"`
	Request  AnalyzeRequest `json:"request"`
}

// DataPoints summarizes the evidentiary records behind an insight.
type DataPoints struct {
	RecordsAnalyzedByKind map[string]int `json:"records_analyzed_by_kind"`
}

// Insight is the answer returned to the caller. Immutable once constructed:
// either a validated model answer or a generated fallback.
type Insight struct {
	Question     string     `json:"question"`
	Summary      string     `json:"summary"`
	Confidence   Confidence `json:"confidence"`
	Reasoning    string     `json:"reasoning,omitempty"`
	DataPoints   DataPoints `json:"data_points"`
	GeneratedAt  time.Time  `json:"generated_at"`
	ProviderName string     `json:"provider_name"`
}

// RejectionReason is a typed pre-process rejection code. The boundary layer
// maps these to client-facing statuses instead of collapsing every rejection
// into a generic server error.
type RejectionReason string

const (
	ReasonEmpty       RejectionReason = "empty_question"
	ReasonTooShort    RejectionReason = "question_too_short"
	ReasonInjection   RejectionReason = "injection_detected"
	ReasonPII         RejectionReason = "pii_detected"
	ReasonRateLimited RejectionReason = "rate_limit_exceeded"
)

// PreProcessResult is the verdict of the inbound guardrail chain.
type PreProcessResult struct {
	Allowed           bool            `json:"allowed"`
	SanitizedQuestion string          `json:"sanitized_question,omitempty"`
	Reason            RejectionReason `json:"rejection_reason,omitempty"`
	Message           string          `json:"message,omitempty"`
}

// PostProcessResult always carries a populated insight: the validated model
// answer when valid, otherwise a generated fallback.
type PostProcessResult struct {
	Valid   bool    `json:"valid"`
	Insight Insight `json:"insight"`
}

// GroundingResult estimates how well a summary is supported by the context
// it was generated from. Advisory only; never blocks a response.
type GroundingResult struct {
	Grounded bool    `json:"grounded"`
	Score    float64 `json:"score"`
	Reason   string  `json:"reason,omitempty"`
}
