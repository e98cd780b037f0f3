package lending

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"lendingapi/internal/loan"
)

const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = 10 * time.Millisecond
	retryJitterFactor    = 0.3
)

// RetryOnConflict re-runs fn with exponential backoff while it keeps
// failing with loan.ErrVersionConflict. Every other error fails fast.
// This lives at the edge for callers like the HTTP layer; the
// coordinator itself never retries.
func RetryOnConflict(ctx context.Context, attempts int, fn func(ctx context.Context) error) error {
	if attempts <= 0 {
		attempts = defaultRetryAttempts
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := defaultRetryDelay * time.Duration(1<<(attempt-1))
			jitter := time.Duration(rand.Float64() * float64(delay) * retryJitterFactor)
			select {
			case <-time.After(delay + jitter):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !errors.Is(lastErr, loan.ErrVersionConflict) {
			return lastErr
		}
	}
	return lastErr
}
