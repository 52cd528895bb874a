package grounding

import (
	"fmt"
	"strings"

	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/models"
)

const defaultThreshold = 0.3

// Verifier estimates whether a summary's claims are supported by the
// context the model was given, using unique-token overlap. The result is an
// audit signal, not a gate: a low score is logged and counted but does not
// change the response.
type Verifier struct {
	Threshold float64
}

func NewVerifier(threshold float64) *Verifier {
	if threshold <= 0 {
		threshold = defaultThreshold
	}
	return &Verifier{Threshold: threshold}
}

// Check scores the fraction of the summary's meaningful tokens that appear
// in the supplied context.
func (v *Verifier) Check(contextText, summary string) models.GroundingResult {
	if strings.TrimSpace(summary) == "" {
		return models.GroundingResult{Reason: "empty summary"}
	}
	if strings.TrimSpace(contextText) == "" {
		return models.GroundingResult{Reason: "no context supplied"}
	}

	summaryTokens := uniqueTokens(tokenize(summary))
	contextTokens := uniqueTokens(tokenize(contextText))

	if len(summaryTokens) == 0 {
		return models.GroundingResult{Reason: "summary has no scoreable terms"}
	}

	supported := 0
	for token := range summaryTokens {
		if contextTokens[token] {
			supported++
		}
	}

	score := float64(supported) / float64(len(summaryTokens))
	if score < v.Threshold {
		return models.GroundingResult{
			Score:  score,
			Reason: fmt.Sprintf("only %.0f%% of summary terms found in context", score*100),
		}
	}

	return models.GroundingResult{Grounded: true, Score: score}
}

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true, "should": true,
	"of": true, "at": true, "by": true, "for": true, "with": true,
	"about": true, "against": true, "between": true, "into": true,
	"through": true, "during": true, "before": true, "after": true,
	"to": true, "from": true, "in": true, "on": true, "and": true,
	"or": true, "not": true, "this": true, "that": true, "these": true,
}

func tokenize(s string) []string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(".,!?;:()[]{}\"'", r) {
			return -1
		}
		return r
	}, s)

	var tokens []string
	for _, word := range strings.Fields(s) {
		if !stopWords[word] && len(word) > 1 {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func uniqueTokens(tokens []string) map[string]bool {
	unique := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		unique[t] = true
	}
	return unique
}
