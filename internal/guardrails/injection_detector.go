package guardrails

// Detection is the verdict of a pattern scan.
type Detection struct {
	Matched     bool
	Category    RuleCategory
	Description string
}

// InjectionDetector scans a sanitized question for prompt-manipulation
// attempts. Stateless and deterministic: the same input always yields the
// same verdict.
type InjectionDetector struct {
	rules []PatternRule
}

func NewInjectionDetector(set *RuleSet) *InjectionDetector {
	return &InjectionDetector{rules: set.Injection}
}

// Detect returns the first matching injection rule. Matching is substring
// and regex based, not semantic; paraphrased attacks can slip through and
// that trade-off is accepted.
func (d *InjectionDetector) Detect(sanitized string) Detection {
	for _, rule := range d.rules {
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
