package guardrails

import (
	"strings"

	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/models"
)

const defaultMinQuestionLength = 3

// InputValidator applies structural checks to the raw question before any
// pattern matching runs. It never rejects on a length ceiling; that is an
// output and model concern.
type InputValidator struct {
	MinLength int
}

func NewInputValidator(minLength int) *InputValidator {
	if minLength <= 0 {
		minLength = defaultMinQuestionLength
	}
	return &InputValidator{MinLength: minLength}
}

// ValidationResult carries the normalized question or the rejection reason.
type ValidationResult struct {
	Valid     bool
	Sanitized string
	Reason    models.RejectionReason
	Message   string
}

// Validate trims the input, collapses whitespace runs to single spaces, and
// rejects empty or below-minimum-length questions. Pure function.
func (v *InputValidator) Validate(raw string) ValidationResult {
	sanitized := strings.Join(strings.Fields(raw), " ")

	if sanitized == "" {
		return ValidationResult{
			Reason:  models.ReasonEmpty,
			Message: "question is empty",
		}
	}
	if len(sanitized) < v.MinLength {
		return ValidationResult{
			Reason:  models.ReasonTooShort,
			Message: "question is too short to analyze",
		}
	}

	return ValidationResult{Valid: true, Sanitized: sanitized}
}
