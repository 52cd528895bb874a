package breaker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/llm"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/models"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/observe"
)

// State is the circuit position. Owned exclusively by the Breaker and
// mutated only on call completion and failure events.
type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half-open"
)

// Config controls failure detection and recovery. Zero values fall back to
// the defaults.
type Config struct {
	// Timeout bounds every wrapped call; a call exceeding it counts as a
	// failure and its result is discarded.
	Timeout time.Duration
	// ErrorThresholdPercentage trips the circuit when the failure share of
	// the rolling window meets or exceeds it.
	ErrorThresholdPercentage int
	// ResetTimeout is how long the circuit stays open before admitting a
	// single trial call.
	ResetTimeout time.Duration
	// VolumeThreshold is the minimum calls in the window before the error
	// percentage is evaluated.
	VolumeThreshold int
	// RollingWindow bounds the failure statistics; counters reset when it
	// elapses.
	RollingWindow time.Duration
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.ErrorThresholdPercentage <= 0 {
		c.ErrorThresholdPercentage = 50
	}
	if c.ResetTimeout <= 0 {
		c.ResetTimeout = 30 * time.Second
	}
	if c.VolumeThreshold <= 0 {
		c.VolumeThreshold = 3
	}
	if c.RollingWindow <= 0 {
		c.RollingWindow = 10 * time.Second
	}
	return c
}

// Breaker wraps a model client in a three-state circuit. All concurrent
// requests share one state machine per wrapped provider; transitions happen
// under the mutex, and only one trial call is admitted while half-open.
type Breaker struct {
	client   llm.Client
	cfg      Config
	recorder observe.Recorder
	logger   *zerolog.Logger

	mu            sync.Mutex
	state         State
	windowStart   time.Time
	requests      int
	failures      int
	openedAt      time.Time
	trialInFlight bool
}

func New(client llm.Client, cfg Config, recorder observe.Recorder, logger *zerolog.Logger) *Breaker {
	return &Breaker{
		client:      client,
		cfg:         cfg.withDefaults(),
		recorder:    recorder,
		logger:      logger,
		state:       StateClosed,
		windowStart: time.Now(),
	}
}

func (b *Breaker) Name() string { return b.client.Name() }

// State reports the current circuit position.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// FallbackResult is the fixed degraded-service answer returned while the
// circuit is open. Its shape matches a genuine low-confidence answer so
// downstream code needs no special casing.
func FallbackResult() *llm.AnalysisResult {
	return &llm.AnalysisResult{
		Summary:    "The analysis service is temporarily unavailable. Please try again shortly.",
		Confidence: string(models.ConfidenceLow),
		Reasoning:  "circuit breaker active",
	}
}

// Analyze routes the call through the circuit. While open it fails fast
// with the fixed fallback and zero added latency; the wrapped client is not
// invoked at all.
func (b *Breaker) Analyze(ctx context.Context, request llm.AnalysisRequest) (*llm.AnalysisResult, error) {
	if !b.admit() {
		b.recorder.Record(observe.EventFallback, map[string]string{"reason": "circuit_open"})
		return FallbackResult(), nil
	}

	callCtx, cancel := context.WithTimeout(ctx, b.cfg.Timeout)
	defer cancel()

	type outcome struct {
		result *llm.AnalysisResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := b.client.Analyze(callCtx, request)
		done <- outcome{result: result, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			b.onFailure()
			return nil, out.err
		}
		b.onSuccess()
		return out.result, nil
	case <-callCtx.Done():
		// The timeout supersedes natural completion; a late result is
		// discarded and the call counts as failed.
		b.recorder.Record(observe.EventTimeout, map[string]string{"provider": b.client.Name()})
		b.onFailure()
		return nil, fmt.Errorf("model call exceeded %s: %w", b.cfg.Timeout, callCtx.Err())
	}
}

// admit decides under the lock whether this call may reach the wrapped
// client, performing the open -> half-open transition when the reset
// timeout has elapsed.
func (b *Breaker) admit() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return true
	case StateOpen:
		if time.Since(b.openedAt) >= b.cfg.ResetTimeout {
			b.toHalfOpen()
			b.trialInFlight = true
			return true
		}
		return false
	case StateHalfOpen:
		if b.trialInFlight {
			return false
		}
		b.trialInFlight = true
		return true
	}
	return false
}

func (b *Breaker) onSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		b.toClosed()
		return
	}
	if b.state == StateOpen {
		// Call admitted before the trip; no counting while open.
		return
	}
	b.observe(false)
}

func (b *Breaker) onFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateHalfOpen:
		b.trialInFlight = false
		b.toOpen()
	case StateOpen:
		// No counting while open.
	default:
		b.observe(true)
	}
}

// observe records one call outcome in the rolling window and trips the
// circuit when the failure percentage crosses the threshold. Caller holds
// the lock.
func (b *Breaker) observe(failed bool) {
	now := time.Now()
	if now.Sub(b.windowStart) >= b.cfg.RollingWindow {
		b.windowStart = now
		b.requests = 0
		b.failures = 0
	}

	b.requests++
	if failed {
		b.failures++
	}

	if b.requests >= b.cfg.VolumeThreshold &&
		b.failures*100 >= b.cfg.ErrorThresholdPercentage*b.requests {
		b.toOpen()
	}
}

func (b *Breaker) toOpen() {
	b.state = StateOpen
	b.openedAt = time.Now()
	b.requests = 0
	b.failures = 0
	b.logger.Warn().Str("provider", b.client.Name()).Msg("circuit opened")
	b.recorder.Record(observe.EventBreakerOpen, map[string]string{"provider": b.client.Name()})
}

func (b *Breaker) toHalfOpen() {
	b.state = StateHalfOpen
	b.logger.Info().Str("provider", b.client.Name()).Msg("circuit half-open, admitting trial call")
	b.recorder.Record(observe.EventBreakerHalfOpen, map[string]string{"provider": b.client.Name()})
}

func (b *Breaker) toClosed() {
	b.state = StateClosed
	b.trialInFlight = false
	b.requests = 0
	b.failures = 0
	b.windowStart = time.Now()
	b.logger.Info().Str("provider", b.client.Name()).Msg("circuit closed")
	b.recorder.Record(observe.EventBreakerClose, map[string]string{"provider": b.client.Name()})
}
