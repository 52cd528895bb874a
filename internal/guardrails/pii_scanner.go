package guardrails

// PIIScanner scans the question text itself for sensitive identifiers.
// Context sent to the model is redacted separately; a question that carries
// PII indicates misuse worth rejecting outright, so the policy here is
// block-on-detect rather than redact-on-detect.
type PIIScanner struct {
	rules []PatternRule
}

func NewPIIScanner(set *RuleSet) *PIIScanner {
	return &PIIScanner{rules: set.PII}
}

// Scan returns the first matching PII rule. Any match blocks the request.
func (s *PIIScanner) Scan(sanitized string) Detection {
	for _, rule := range s.rules {
		if rule.Pattern.MatchString(sanitized) {
			return Detection{
				Matched:     true,
				Category:    rule.Category,
				Description: rule.Description,
			}
		}
	}
	return Detection{}
}
