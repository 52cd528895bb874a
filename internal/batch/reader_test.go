package batch

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestReader_InvalidFile(t *testing.T) {
	file := strings.NewReader("invalid file content")

	reader := NewReader(file, newTestLogger())
	ch := reader.ReadAll(context.Background())

	for parsed := range ch {
		if parsed.Error == nil {
			t.Errorf("expected parse error for invalid JSON, but got none")
		}
	}
}

func TestReader_ValidFile(t *testing.T) {
	inputFile := `{"event_id":"1","identity":{"id":"user-1","tenant_id":"tenant-a"},"request":{"question":"How many claims were filed last month?"}}
{"event_id":"2","identity":{"id":"user-2","tenant_id":"tenant-a"},"request":{"question":"Which members are in Austin?","location_focus":"Austin"}}`

	file := strings.NewReader(inputFile)
	reader := NewReader(file, newTestLogger())

	ch := reader.ReadAll(context.Background())
	count := 0
	for parsed := range ch {
		count++
		if parsed.Error != nil {
			t.Errorf("error reading analyze event: %s", parsed.Error)
			continue
		}
		if parsed.Event.Identity.ID == "" {
			t.Errorf("line %d: identity not decoded", parsed.Line)
		}
		if parsed.Event.Request.Question == "" {
			t.Errorf("line %d: question not decoded", parsed.Line)
		}
	}
	if count != 2 {
		t.Errorf("expected 2 analyze events, got %d", count)
	}
}

func TestReader_ContextCancellation(t *testing.T) {
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, `{"event_id":"1","identity":{"id":"user-1"},"request":{"question":"How many claims?"}}`)
	}
	file := strings.NewReader(strings.Join(lines, "\n"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := NewReader(file, newTestLogger())

	ch := reader.ReadAll(ctx)
	count := 0
	for range ch {
		count++
		if count == 5 {
			cancel()
			break
		}
	}

	if count >= 100 {
		t.Errorf("expected early cancellation, but read all records")
	}
}

func TestReader_LineNumbers(t *testing.T) {
	inputFile := `{"event_id":"1","identity":{"id":"user-1"},"request":{"question":"first"}}

{"invalid json}
{"event_id":"2","identity":{"id":"user-2"},"request":{"question":"second"}}`

	file := strings.NewReader(inputFile)
	reader := NewReader(file, newTestLogger())

	ch := reader.ReadAll(context.Background())
	var parsed []ParsedEvent
	for p := range ch {
		parsed = append(parsed, p)
	}

	if len(parsed) != 3 {
		t.Fatalf("expected 3 parsed lines (blank line skipped), got %d", len(parsed))
	}
	if parsed[0].Line != 1 {
		t.Errorf("first record should be line 1, got %d", parsed[0].Line)
	}
	if parsed[1].Line != 3 || parsed[1].Error == nil {
		t.Errorf("expected parse error on line 3, got line %d err %v", parsed[1].Line, parsed[1].Error)
	}
	if parsed[2].Line != 4 {
		t.Errorf("third record should be line 4, got %d", parsed[2].Line)
	}
}
