// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ratelimit enforces a minimum interval between outbound requests
// to the E-utilities service. A single Governor instance is injected into
// every component that performs network I/O, so the whole process shares
// one rate window and tests can substitute a no-op instance.
// Implements: prd001-search-protocol (rate governor).
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Governor spaces out grants so that no two callers proceed within less
// than the configured minimum interval of each other. Safe for concurrent
// use; waiting callers are served roughly in FIFO order.
type Governor struct {
	lim *rate.Limiter
}

// New returns a Governor with the given minimum inter-request interval.
// A non-positive interval yields a governor that never blocks, which is
// what tests want.
func New(minInterval time.Duration) *Governor {
	if minInterval <= 0 {
		return &Governor{lim: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Governor{lim: rate.NewLimiter(rate.Every(minInterval), 1)}
}

// Acquire blocks until the minimum interval has elapsed since the previous
// grant, then claims the window and returns. The claim stands even if the
// subsequent request fails, since a real request still counts toward the
// service's rate policy. The only error is context cancellation during
// the wait.
func (g *Governor) Acquire(ctx context.Context) error {
	return g.lim.Wait(ctx)
}
