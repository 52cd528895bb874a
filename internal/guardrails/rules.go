package guardrails

import (
	"fmt"
	"regexp"
)

// RuleCategory classifies a pattern rule.
type RuleCategory string

const (
	CategoryInjection RuleCategory = "injection"
	CategoryPIISSN    RuleCategory = "pii-ssn"
	CategoryPIIEmail  RuleCategory = "pii-email"
	CategoryPIIPhone  RuleCategory = "pii-phone"
	CategoryPIICard   RuleCategory = "pii-card"
)

// PatternRule is a single compiled detection rule. Rules are loaded at
// startup and read-only afterwards, so a RuleSet is safe for concurrent use.
type PatternRule struct {
	Pattern     *regexp.Regexp
	Category    RuleCategory
	Description string
}

// RuleSet holds the injection and PII tables consumed by the detectors.
type RuleSet struct {
	Injection []PatternRule
	PII       []PatternRule
}

// RawRule is the YAML-facing shape of a rule before compilation.
type RawRule struct {
	Pattern     string `yaml:"pattern"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

// CompileRules turns raw configuration rules into a RuleSet. Injection
// patterns are forced case-insensitive; PII patterns are compiled verbatim.
func CompileRules(raw []RawRule) (*RuleSet, error) {
	set := &RuleSet{}
	for _, r := range raw {
		category := RuleCategory(r.Category)
		expr := r.Pattern
		if category == CategoryInjection {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q for category %s: %w", r.Pattern, r.Category, err)
		}
		rule := PatternRule{Pattern: re, Category: category, Description: r.Description}
		switch category {
		case CategoryInjection:
			set.Injection = append(set.Injection, rule)
		case CategoryPIISSN, CategoryPIIEmail, CategoryPIIPhone, CategoryPIICard:
			set.PII = append(set.PII, rule)
		default:
			return nil, fmt.Errorf("unknown rule category %q", r.Category)
		}
	}
	return set, nil
}

// DefaultRules is the built-in rule table, used when no rules file is
// configured. Matching is substring and regex based, not semantic; false
// positives are preferred over false negatives here.
func DefaultRules() []RawRule {
	return []RawRule{
		// Instruction override.
		{Pattern: `ignore\s+(all\s+)?(previous|prior|above)\s+instructions`, Category: "injection", Description: "instruction override"},
		{Pattern: `disregard\s+(all\s+)?(previous|prior|above)\s+(instructions|rules)`, Category: "injection", Description: "instruction override"},
		{Pattern: `forget\s+(everything|all|your)\s+(you|instructions|rules)`, Category: "injection", Description: "instruction override"},
		// Role manipulation.
		{Pattern: `\bsystem\s*:`, Category: "injection", Description: "role manipulation"},
		{Pattern: `you\s+are\s+now\s+`, Category: "injection", Description: "role manipulation"},
		{Pattern: `act\s+as\s+(if\s+you\s+are\s+)?(an?\s+)?unrestricted`, Category: "injection", Description: "role manipulation"},
		{Pattern: `pretend\s+(to\s+be|you\s+are)\s+`, Category: "injection", Description: "role manipulation"},
		// Jailbreak markers.
		{Pattern: `\bDAN\s+mode\b`, Category: "injection", Description: "jailbreak marker"},
		{Pattern: `bypass\s+(your\s+)?(restrictions|safety|guardrails|filters)`, Category: "injection", Description: "jailbreak marker"},
		{Pattern: `enable\s+unrestricted\s+mode`, Category: "injection", Description: "jailbreak marker"},
		{Pattern: `jailbreak`, Category: "injection", Description: "jailbreak marker"},
		{Pattern: `reveal\s+(your\s+)?(system\s+prompt|instructions|secrets)`, Category: "injection", Description: "prompt exfiltration"},

		// SSN-shaped digit groups.
		{Pattern: `\b\d{3}-\d{2}-\d{4}\b`, Category: "pii-ssn", Description: "SSN"},
		// Email addresses.
		{Pattern: `[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`, Category: "pii-email", Description: "email address"},
		// Phone numbers, with optional country code and separators.
		{Pattern: `(\+?1[-.\s]?)?(\(\d{3}\)\s*|\b\d{3}[-.\s])\d{3}[-.\s]\d{4}\b`, Category: "pii-phone", Description: "phone number"},
		// Card-number-shaped digit runs.
		{Pattern: `\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`, Category: "pii-card", Description: "card number"},
	}
}
