package observe

import (
	"github.com/rs/zerolog"
)

// EventKind labels a single pipeline event for metrics and audit.
type EventKind string

const (
	EventBlocked         EventKind = "blocked"
	EventRejected        EventKind = "rejected"
	EventRateLimited     EventKind = "rate_limited"
	EventFallback        EventKind = "fallback"
	EventTimeout         EventKind = "timeout"
	EventBreakerOpen     EventKind = "breaker_open"
	EventBreakerClose    EventKind = "breaker_close"
	EventBreakerHalfOpen EventKind = "breaker_half_open"
	EventGroundingLow    EventKind = "grounding_low"
)

// Recorder receives pipeline events. The guardrails orchestrator and the
// circuit breaker call into it; production wiring decides the sink.
type Recorder interface {
	Record(kind EventKind, labels map[string]string)
}

// NopRecorder discards all events. Used in tests.
type NopRecorder struct{}

func (NopRecorder) Record(EventKind, map[string]string) {}

// LogRecorder writes every event as a structured log line.
type LogRecorder struct {
	logger *zerolog.Logger
}

func NewLogRecorder(logger *zerolog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) Record(kind EventKind, labels map[string]string) {
	evt := r.logger.Info().Str("event", string(kind))
	for k, v := range labels {
		evt = evt.Str(k, v)
	}
	evt.Msg("pipeline event")
}
