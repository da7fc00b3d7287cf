// Package ratelimit bounds outbound sends with a fixed 60-second window.
package ratelimit

import (
	"errors"
	"sync"
	"time"
)

// Window is the length of one rate window.
const Window = 60 * time.Second

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// Limiter is a fixed-window counter. The window resets only once the elapsed
// time strictly exceeds Window; a call at exactly Window still counts against
// the current one. Safe for concurrent use.
type Limiter struct {
	limit int
	now   func() time.Time

	mu          sync.Mutex
	count       int
	windowStart time.Time
}

// Option customises a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// New creates a Limiter admitting at most limit sends per window.
// A limit <= 0 admits nothing.
func New(limit int, opts ...Option) *Limiter {
	l := &Limiter{
		limit: limit,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.windowStart = l.now()
	return l
}

// Allow consumes one send from the current window, or returns
// ErrRateLimitExceeded without side effects when the window is full.
func (l *Limiter) Allow() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rollLocked()
	if l.count >= l.limit {
		return ErrRateLimitExceeded
	}
	l.count++
	return nil
}

// Limit returns the configured sends per window.
func (l *Limiter) Limit() int {
	return l.limit
}

// Remaining reports how many sends the current window still admits.
// It never moves the window; only Allow does.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := l.count
	if l.expiredLocked(l.now()) {
		count = 0
	}
	if r := l.limit - count; r > 0 {
		return r
	}
	return 0
}

// ResetAt is the earliest instant at which the current window can roll over.
// Once it has passed, the next Allow opens a new window.
func (l *Limiter) ResetAt() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.windowStart.Add(Window)
}

func (l *Limiter) expiredLocked(now time.Time) bool {
	return now.Sub(l.windowStart) > Window
}

func (l *Limiter) rollLocked() {
	now := l.now()
	if l.expiredLocked(now) {
		l.count = 0
		l.windowStart = now
	}
}
