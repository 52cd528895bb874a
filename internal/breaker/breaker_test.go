package breaker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/llm"
	"github.com/sphoortimirji5/OpenSearch-Backed-Grounded-AI-Search-Platform/internal/observe"
)

var errProvider = errors.New("provider unreachable")

// scriptedClient returns canned outcomes in order, then repeats the last one.
type scriptedClient struct {
	mu       sync.Mutex
	outcomes []error
	calls    int32
	delay    time.Duration
	release  chan struct{}
}

func (c *scriptedClient) Name() string { return "fake/model" }

func (c *scriptedClient) Analyze(ctx context.Context, _ llm.AnalysisRequest) (*llm.AnalysisResult, error) {
	atomic.AddInt32(&c.calls, 1)

	if c.release != nil {
		select {
		case <-c.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	c.mu.Lock()
	var err error
	if len(c.outcomes) > 0 {
		err = c.outcomes[0]
		if len(c.outcomes) > 1 {
			c.outcomes = c.outcomes[1:]
		}
	}
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return &llm.AnalysisResult{Summary: "records look healthy", Confidence: "high"}, nil
}

func (c *scriptedClient) callCount() int32 { return atomic.LoadInt32(&c.calls) }

func newTestBreaker(client llm.Client, cfg Config) *Breaker {
	logger := zerolog.Nop()
	return New(client, cfg, observe.NopRecorder{}, &logger)
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	client := &scriptedClient{outcomes: []error{errProvider}}
	b := newTestBreaker(client, Config{VolumeThreshold: 3, ErrorThresholdPercentage: 50})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := b.Analyze(ctx, llm.AnalysisRequest{Question: "q"}); err == nil {
			t.Fatalf("call %d: expected provider error", i+1)
		}
	}

	if got := b.State(); got != StateOpen {
		t.Fatalf("expected open circuit after 3 failures, got %s", got)
	}
}

func TestBreaker_OpenFailsFastWithFallback(t *testing.T) {
	client := &scriptedClient{outcomes: []error{errProvider}}
	b := newTestBreaker(client, Config{VolumeThreshold: 3, ErrorThresholdPercentage: 50, ResetTimeout: time.Hour})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		b.Analyze(ctx, llm.AnalysisRequest{Question: "q"})
	}
	callsBeforeOpen := client.callCount()

	result, err := b.Analyze(ctx, llm.AnalysisRequest{Question: "q"})
	if err != nil {
		t.Fatalf("open circuit should not surface an error, got %v", err)
	}
	if result.Summary != FallbackResult().Summary {
		t.Errorf("expected fallback summary, got %q", result.Summary)
	}
	if result.Confidence != "low" {
		t.Errorf("expected low confidence fallback, got %q", result.Confidence)
	}
	if client.callCount() != callsBeforeOpen {
		t.Error("wrapped client was invoked while the circuit was open")
	}
}

func TestBreaker_HalfOpenTrialSuccessCloses(t *testing.T) {
	client := &scriptedClient{outcomes: []error{errProvider, errProvider, errProvider, nil}}
	b := newTestBreaker(client, Config{VolumeThreshold: 3, ErrorThresholdPercentage: 50, ResetTimeout: 10 * time.Millisecond})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		b.Analyze(ctx, llm.AnalysisRequest{Question: "q"})
	}
	if b.State() != StateOpen {
		t.Fatalf("precondition: circuit should be open, got %s", b.State())
	}

	time.Sleep(20 * time.Millisecond)

	result, err := b.Analyze(ctx, llm.AnalysisRequest{Question: "q"})
	if err != nil {
		t.Fatalf("trial call failed: %v", err)
	}
	if result.Summary != "records look healthy" {
		t.Errorf("expected real result from trial call, got %q", result.Summary)
	}
	if got := b.State(); got != StateClosed {
		t.Errorf("successful trial should close the circuit, got %s", got)
	}
}

func TestBreaker_HalfOpenTrialFailureReopens(t *testing.T) {
	client := &scriptedClient{outcomes: []error{errProvider}}
	b := newTestBreaker(client, Config{VolumeThreshold: 3, ErrorThresholdPercentage: 50, ResetTimeout: 10 * time.Millisecond})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		b.Analyze(ctx, llm.AnalysisRequest{Question: "q"})
	}
	time.Sleep(20 * time.Millisecond)

	if _, err := b.Analyze(ctx, llm.AnalysisRequest{Question: "q"}); err == nil {
		t.Fatal("expected trial call to fail")
	}
	if got := b.State(); got != StateOpen {
		t.Errorf("failed trial should reopen the circuit, got %s", got)
	}

	// Back to fail-fast: the next call returns the fallback untouched.
	calls := client.callCount()
	result, err := b.Analyze(ctx, llm.AnalysisRequest{Question: "q"})
	if err != nil || result.Summary != FallbackResult().Summary {
		t.Errorf("expected fallback after reopen, got (%v, %v)", result, err)
	}
	if client.callCount() != calls {
		t.Error("client invoked while reopened")
	}
}

func TestBreaker_TimeoutCountsAsFailure(t *testing.T) {
	client := &scriptedClient{delay: 200 * time.Millisecond}
	b := newTestBreaker(client, Config{
		Timeout:                  10 * time.Millisecond,
		VolumeThreshold:          3,
		ErrorThresholdPercentage: 50,
	})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := b.Analyze(ctx, llm.AnalysisRequest{Question: "q"})
		if err == nil {
			t.Fatalf("call %d: expected timeout error", i+1)
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("call %d: expected deadline error, got %v", i+1, err)
		}
	}

	if got := b.State(); got != StateOpen {
		t.Errorf("timeouts should trip the circuit, got %s", got)
	}
}

func TestBreaker_SuccessesBelowThresholdStayClosed(t *testing.T) {
	// 1 failure in 4 calls is 25%, below the 50% threshold.
	client := &scriptedClient{outcomes: []error{errProvider, nil}}
	b := newTestBreaker(client, Config{VolumeThreshold: 3, ErrorThresholdPercentage: 50})
	ctx := context.Background()

	b.Analyze(ctx, llm.AnalysisRequest{Question: "q"})
	for i := 0; i < 3; i++ {
		if _, err := b.Analyze(ctx, llm.AnalysisRequest{Question: "q"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := b.State(); got != StateClosed {
		t.Errorf("expected closed circuit at 25%% failures, got %s", got)
	}
}

// While half-open, exactly one concurrent caller may reach the provider; the
// rest get the fallback immediately.
func TestBreaker_HalfOpenAdmitsSingleTrial(t *testing.T) {
	release := make(chan struct{})
	client := &scriptedClient{outcomes: []error{errProvider, errProvider, errProvider, nil}, release: release}
	b := newTestBreaker(client, Config{VolumeThreshold: 3, ErrorThresholdPercentage: 50, ResetTimeout: 10 * time.Millisecond})
	ctx := context.Background()

	close(release)
	for i := 0; i < 3; i++ {
		b.Analyze(ctx, llm.AnalysisRequest{Question: "q"})
	}
	time.Sleep(20 * time.Millisecond)

	// Gate the trial call so concurrent callers observe the half-open state.
	client.release = make(chan struct{})
	callsBefore := client.callCount()

	var wg sync.WaitGroup
	var fallbacks int32
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := b.Analyze(ctx, llm.AnalysisRequest{Question: "q"})
			if err == nil && result.Summary == FallbackResult().Summary {
				atomic.AddInt32(&fallbacks, 1)
			}
		}()
	}

	// Let the trial start, then release it.
	time.Sleep(20 * time.Millisecond)
	close(client.release)
	wg.Wait()

	if got := client.callCount() - callsBefore; got != 1 {
		t.Errorf("expected exactly 1 trial call to the provider, got %d", got)
	}
	if fallbacks != 4 {
		t.Errorf("expected 4 concurrent callers to receive the fallback, got %d", fallbacks)
	}
	if got := b.State(); got != StateClosed {
		t.Errorf("successful trial should close the circuit, got %s", got)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := Config{}.withDefaults()

	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %s", cfg.Timeout)
	}
	if cfg.ErrorThresholdPercentage != 50 {
		t.Errorf("expected 50%% threshold, got %d", cfg.ErrorThresholdPercentage)
	}
	if cfg.ResetTimeout != 30*time.Second {
		t.Errorf("expected 30s reset timeout, got %s", cfg.ResetTimeout)
	}
	if cfg.VolumeThreshold != 3 {
		t.Errorf("expected volume threshold 3, got %d", cfg.VolumeThreshold)
	}
	if cfg.RollingWindow != 10*time.Second {
		t.Errorf("expected 10s rolling window, got %s", cfg.RollingWindow)
	}
}
