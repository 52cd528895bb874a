package llm

import (
	"strings"
	"testing"
)

func TestBuildUserPrompt(t *testing.T) {
	prompt := BuildUserPrompt(AnalysisRequest{
		Question: "How many claims in Austin?",
		Context:  "- [claim] dental claim filed in Austin\n",
	})

	if !strings.Contains(prompt, "Question: How many claims in Austin?") {
		t.Errorf("question missing from prompt: %q", prompt)
	}
	if !strings.Contains(prompt, "- [claim] dental claim filed in Austin") {
		t.Errorf("context missing from prompt: %q", prompt)
	}
}

func TestBuildUserPrompt_EmptyContext(t *testing.T) {
	prompt := BuildUserPrompt(AnalysisRequest{Question: "How many claims?"})

	if !strings.Contains(prompt, "(no matching records)") {
		t.Errorf("expected empty-context marker, got %q", prompt)
	}
}

func TestParseAnalysis(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantErr    bool
		summary    string
		confidence string
	}{
		{
			name:       "plain json",
			content:    `{"summary": "Two claims filed.", "confidence": "high", "reasoning": "counted records"}`,
			summary:    "Two claims filed.",
			confidence: "high",
		},
		{
			name: "json fenced with language tag",
			content: "```json\n" +
				`{"summary": "Two claims filed.", "confidence": "medium", "reasoning": "counted records"}` +
				"\n```",
			summary:    "Two claims filed.",
			confidence: "medium",
		},
		{
			name: "json fenced without language tag",
			content: "```\n" +
				`{"summary": "Two claims filed.", "confidence": "low", "reasoning": ""}` +
				"\n```",
			summary:    "Two claims filed.",
			confidence: "low",
		},
		{
			name:       "surrounding whitespace",
			content:    "  \n" + `{"summary": "ok answer here", "confidence": "high", "reasoning": "r"}` + "\n  ",
			summary:    "ok answer here",
			confidence: "high",
		},
		{
			name:    "prose instead of json",
			content: "The answer is two claims.",
			wantErr: true,
		},
		{
			name:    "truncated json",
			content: `{"summary": "Two claims`,
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := ParseAnalysis(test.content)

			if test.wantErr {
				if err == nil {
					t.Fatal("expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Summary != test.summary {
				t.Errorf("expected summary %q, got %q", test.summary, result.Summary)
			}
			if result.Confidence != test.confidence {
				t.Errorf("expected confidence %q, got %q", test.confidence, result.Confidence)
			}
		})
	}
}
