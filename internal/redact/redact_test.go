package redact

import (
	"strings"
	"testing"
)

func TestRedactor_Redact(t *testing.T) {
	redactor := New()

	tests := []struct {
		name     string
		input    string
		leaked   string
		preserve string
	}{
		{
			name:     "ssn",
			input:    "member 123-45-6789 filed a claim",
			leaked:   "123-45-6789",
			preserve: "filed a claim",
		},
		{
			name:     "email",
			input:    "contact jane.doe@example.com for details",
			leaked:   "jane.doe@example.com",
			preserve: "for details",
		},
		{
			name:     "phone",
			input:    "call (512) 555-1234 about the claim",
			leaked:   "(512) 555-1234",
			preserve: "about the claim",
		},
		{
			name:     "card number",
			input:    "charged to 4111-1111-1111-1111 last week",
			leaked:   "4111-1111-1111-1111",
			preserve: "last week",
		},
		{
			name:     "credential pair",
			input:    "config had api_key=sk-live-abc123 embedded",
			leaked:   "sk-live-abc123",
			preserve: "config had",
		},
		{
			name:     "bearer token",
			input:    "header was Bearer abcdefghijklmnopqrstuvwxyz123456",
			leaked:   "abcdefghijklmnopqrstuvwxyz123456",
			preserve: "header was",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := redactor.Redact(test.input)

			if strings.Contains(result, test.leaked) {
				t.Errorf("sensitive value leaked through: %q", result)
			}
			if !strings.Contains(result, placeholder) {
				t.Errorf("expected placeholder in output, got %q", result)
			}
			if !strings.Contains(result, test.preserve) {
				t.Errorf("surrounding text lost: %q", result)
			}
		})
	}
}

func TestRedactor_CleanTextUnchanged(t *testing.T) {
	redactor := New()
	input := "- [claim] dental claim filed in Austin for routine cleaning\n"

	if result := redactor.Redact(input); result != input {
		t.Errorf("clean text modified: %q", result)
	}
}

func TestRedactor_MultipleMatches(t *testing.T) {
	redactor := New()
	input := "123-45-6789 emailed jane@example.com"

	result := redactor.Redact(input)
	if strings.Count(result, placeholder) != 2 {
		t.Errorf("expected both identifiers redacted, got %q", result)
	}
}
