// ABOUTME: Request pacing policies used between sequential API calls
// ABOUTME: Fixed delay mirrors the polite sleep; the token bucket uses x/time/rate

package pacing

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultDelay is the pause between two consecutive requests
const DefaultDelay = 600 * time.Millisecond

// FixedDelay waits a constant interval on every call
type FixedDelay struct {
	delay time.Duration
}

// NewFixedDelay creates a pacer sleeping delay per Wait; a non-positive delay disables waiting
func NewFixedDelay(delay time.Duration) *FixedDelay {
	return &FixedDelay{delay: delay}
}

// Delay returns the configured interval
func (p *FixedDelay) Delay() time.Duration {
	return p.delay
}

// Wait blocks for the configured interval or until ctx is done
func (p *FixedDelay) Wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RateLimit paces requests through a token bucket
type RateLimit struct {
	limiter *rate.Limiter
}

// NewRateLimit allows rps requests per second with the given burst
func NewRateLimit(rps float64, burst int) *RateLimit {
	if burst < 1 {
		burst = 1
	}
	return &RateLimit{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Wait blocks until the bucket grants a token or ctx is done
func (p *RateLimit) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// None never waits
type None struct{}

// Wait returns immediately unless ctx is already done
func (None) Wait(ctx context.Context) error {
	return ctx.Err()
}
