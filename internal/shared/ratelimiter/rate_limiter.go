// Package ratelimiter throttles outbound calls to third-party APIs.
package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Waiter blocks until an operation may proceed.
type Waiter interface {
	Wait(ctx context.Context) error
}

// RateLimiter allows at most limit calls per fixed interval window.
type RateLimiter struct {
	mu          sync.Mutex
	limit       int
	interval    time.Duration
	count       int
	windowStart time.Time
	now         func() time.Time
}

var _ Waiter = (*RateLimiter)(nil)

// NewRateLimiter creates a limiter allowing limit calls per interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:       limit,
		interval:    interval,
		windowStart: time.Now(),
		now:         time.Now,
	}
}

// Wait returns immediately while the current window has room, otherwise it
// sleeps until the next window or until ctx is done.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	for {
		rl.mu.Lock()
		now := rl.now()
		if now.Sub(rl.windowStart) >= rl.interval {
			rl.count = 0
			rl.windowStart = now
		}
		if rl.count < rl.limit {
			rl.count++
			rl.mu.Unlock()
			return nil
		}
		sleep := rl.interval - now.Sub(rl.windowStart)
		rl.mu.Unlock()

		slog.Warn("outbound rate limit reached, waiting", "limit", rl.limit, "wait", sleep)
		timer := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
