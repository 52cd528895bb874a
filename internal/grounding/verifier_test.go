package grounding

import (
	"testing"
)

func TestVerifier_Check(t *testing.T) {
	verifier := NewVerifier(0.3)

	tests := []struct {
		name     string
		context  string
		summary  string
		grounded bool
	}{
		{
			name:     "fully supported summary",
			context:  "- [claim] dental claim filed in Austin for routine cleaning\n- [claim] dental claim filed in Austin for crown replacement",
			summary:  "Two dental claims were filed in Austin.",
			grounded: true,
		},
		{
			name:     "unsupported summary",
			context:  "- [member] enrolled in vision plan, Seattle",
			summary:  "Cardiac surgery costs increased dramatically across Florida hospitals.",
			grounded: false,
		},
		{
			name:     "empty summary",
			context:  "- [claim] dental claim filed",
			summary:  "   ",
			grounded: false,
		},
		{
			name:     "empty context",
			context:  "",
			summary:  "Two dental claims were filed.",
			grounded: false,
		},
		{
			name:     "stopwords only summary",
			context:  "- [claim] dental claim filed",
			summary:  "the and of in",
			grounded: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := verifier.Check(test.context, test.summary)
			if result.Grounded != test.grounded {
				t.Errorf("expected grounded=%v, got %v (score %.2f, reason %q)",
					test.grounded, result.Grounded, result.Score, result.Reason)
			}
			if !test.grounded && result.Reason == "" {
				t.Error("ungrounded result should carry a reason")
			}
		})
	}
}

func TestVerifier_ScoreIsTokenFraction(t *testing.T) {
	verifier := NewVerifier(0.3)

	// Summary tokens after filtering: "dental", "claims", "filed", "austin".
	// Context supports "dental" and "filed" only.
	result := verifier.Check("dental claim filed yesterday", "Dental claims filed in Austin.")

	if result.Score != 0.5 {
		t.Errorf("expected score 0.5, got %.2f", result.Score)
	}
}

func TestVerifier_ThresholdBoundary(t *testing.T) {
	// A score exactly at the threshold counts as grounded.
	verifier := NewVerifier(0.5)

	result := verifier.Check("dental claim filed yesterday", "Dental claims filed in Austin.")
	if result.Score != 0.5 {
		t.Fatalf("fixture drifted: expected score 0.5, got %.2f", result.Score)
	}
	if !result.Grounded {
		t.Error("score equal to threshold should be grounded")
	}
}

func TestVerifier_DefaultThreshold(t *testing.T) {
	if v := NewVerifier(0); v.Threshold != defaultThreshold {
		t.Errorf("expected default threshold %.1f, got %.1f", defaultThreshold, v.Threshold)
	}
	if v := NewVerifier(-1); v.Threshold != defaultThreshold {
		t.Errorf("negative threshold should fall back to default, got %.1f", v.Threshold)
	}
}
