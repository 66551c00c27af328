// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package retry runs fallible operations again with exponential backoff.
// The protocol client reports every failed exchange exactly once, so
// retry policy lives here with the callers instead of inside the client.
package retry

import (
	"context"
	"math"
	"time"
)

// BaseDelay controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var BaseDelay = 2 * time.Second

const defaultMaxAttempts = 3

// Do invokes fn until it succeeds, the error is not retryable, or
// maxAttempts calls have been made. The delay between attempts starts at
// BaseDelay and doubles each time: 2 s, 4 s, 8 s.
//
// When maxAttempts is 0 the default (3) is used. If the context is
// cancelled during a backoff wait Do returns ctx.Err(). After exhausting
// attempts the last error is returned so the caller can inspect it.
func Do(ctx context.Context, maxAttempts int, retryable func(error) bool, fn func(context.Context) error) error {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	for attempt := 0; ; attempt++ {
		err := fn(ctx)
		if err == nil || !retryable(err) {
			return err
		}

		// Exhausted attempts — return the last error as-is.
		if attempt >= maxAttempts-1 {
			return err
		}

		backoff := time.Duration(math.Pow(2, float64(attempt))) * BaseDelay

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
}
