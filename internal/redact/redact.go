package redact

import (
	"regexp"
)

const placeholder = "[REDACTED]"

// Patterns cover the identifiers most likely to appear in record summaries.
// Context is redacted wholesale before it leaves the trust boundary; unlike
// the inbound PII scan, this path cleans rather than blocks.
var sensitivePatterns = []*regexp.Regexp{
	// SSN-shaped digit groups.
	regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
	// Email addresses.
	regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
	// Phone numbers.
	regexp.MustCompile(`(\+?1[-.\s]?)?(\(\d{3}\)\s*|\b\d{3}[-.\s])\d{3}[-.\s]\d{4}\b`),
	// Card-number-shaped digit runs.
	regexp.MustCompile(`\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`),
	// Credentials that occasionally leak into free-text fields.
	regexp.MustCompile(`(?i)(api_key|apikey|secret_key|access_token|auth_token|password|passwd)\s*[=:]\s*\S+`),
	regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-]{20,}`),
}

// Redactor replaces sensitive identifiers in outbound context.
type Redactor struct{}

func New() *Redactor { return &Redactor{} }

func (Redactor) Redact(text string) string {
	result := text
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, placeholder)
	}
	return result
}
