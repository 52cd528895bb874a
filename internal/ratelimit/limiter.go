package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter tracks per-identity request budgets. Budgets are independent per
// identity, so one abusive caller cannot exhaust another's.
type Limiter interface {
	// Allow consumes one unit of the identity's budget and reports whether
	// the request is admitted.
	Allow(ctx context.Context, identity string) (bool, error)
}

// Config holds the window size and per-window budget.
type Config struct {
	Window      time.Duration
	MaxRequests int
}

func (c Config) withDefaults() Config {
	if c.Window <= 0 {
		c.Window = time.Minute
	}
	if c.MaxRequests <= 0 {
		c.MaxRequests = 10
	}
	return c
}

type window struct {
	start time.Time
	count int
}

// MemoryLimiter is a fixed-window counter kept in process memory. Fixed
// windows were chosen over sliding for exact, testable counts; the count in
// a window is exactly the number of admitted calls regardless of arrival
// order.
type MemoryLimiter struct {
	cfg Config
	now func() time.Time

	mu      sync.Mutex
	budgets map[string]*window
}

func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	return &MemoryLimiter{
		cfg:     cfg.withDefaults(),
		now:     time.Now,
		budgets: make(map[string]*window),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, identity string) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.budgets[identity]
	if !ok || now.Sub(w.start) >= l.cfg.Window {
		l.budgets[identity] = &window{start: now, count: 1}
		return true, nil
	}

	if w.count >= l.cfg.MaxRequests {
		return false, nil
	}
	w.count++
	return true, nil
}
