// Package ratelimit paces requests to the Google Sheets and Google Analytics APIs so that
// long runs stay inside the per-user write quotas.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultDelay is the interval between successive result rows written to a worksheet.
const DefaultDelay = 800 * time.Millisecond

// Limiter is a token bucket with a burst of 1, i.e. successive Wait calls return at least
// 'interval' apart. The first Wait returns immediately.
type Limiter struct {
	limiter  *rate.Limiter
	interval time.Duration
}

// NewLimiter returns a Limiter that spaces events 'interval' apart. A zero or negative
// interval disables pacing.
func NewLimiter(interval time.Duration) *Limiter {
	if interval <= 0 {
		return &Limiter{
			limiter: rate.NewLimiter(rate.Inf, 1),
		}
	}

	return &Limiter{
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		interval: interval,
	}
}

// NewLimiterPerMinute returns a Limiter for an API quota expressed as requests per minute.
func NewLimiterPerMinute(requests int, burst int) *Limiter {
	if requests <= 0 {
		return NewLimiter(0)
	}

	if burst < 1 {
		burst = 1
	}

	return &Limiter{
		limiter:  rate.NewLimiter(rate.Limit(float64(requests)/60.0), burst),
		interval: time.Minute / time.Duration(requests),
	}
}

// Wait blocks until the next event is allowed or the context is cancelled. A nil Limiter
// never blocks.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}

	return l.limiter.Wait(ctx)
}

func (l *Limiter) Interval() time.Duration {
	if l == nil {
		return 0
	}

	return l.interval
}
