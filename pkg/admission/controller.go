// Package admission rate limits free-tier endpoints.
//
// The counter store is the one place in the serving path with true
// cross-request shared mutable state; implementations must serialize
// increments so two concurrent requests for the same key can never both
// pass a stale count.
package admission

import (
	"context"
	"time"
)

// Free-tier limits. The externally documented limit (60 requests per
// minute) is authoritative; it is deliberately a named constant rather
// than a literal buried in limiter setup.
const (
	FreeTierLimit  = 60
	FreeTierWindow = time.Minute
)

// keyPrefix partitions limiter counters per endpoint identity.
const keyPrefix = "rate_limit_endpoint_"

// Store counts consumptions within a rolling window. TryConsume must
// increment and test atomically: read-then-write implementations race.
type Store interface {
	// TryConsume records one consumption against key and reports whether
	// it fits within limit for the current window.
	TryConsume(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// Controller applies the free-tier admission policy.
type Controller struct {
	store  Store
	limit  int
	window time.Duration
}

// NewController creates a controller with the free-tier defaults.
func NewController(store Store) *Controller {
	return &Controller{store: store, limit: FreeTierLimit, window: FreeTierWindow}
}

// NewControllerWithLimits creates a controller with explicit limits,
// mainly for configuration overrides and tests.
func NewControllerWithLimits(store Store, limit int, window time.Duration) *Controller {
	if limit <= 0 {
		limit = FreeTierLimit
	}
	if window <= 0 {
		window = FreeTierWindow
	}
	return &Controller{store: store, limit: limit, window: window}
}

// Admit decides whether a request to the endpoint may proceed. Pro-owned
// endpoints are never throttled. A store error fails open (the request is
// admitted and the error returned for logging): losing rate-limit
// precision beats failing every caller when the counter backend is down.
func (c *Controller) Admit(ctx context.Context, endpointID string, isPro bool) (bool, error) {
	if isPro {
		return true, nil
	}

	allowed, err := c.store.TryConsume(ctx, keyPrefix+endpointID, c.limit, c.window)
	if err != nil {
		return true, err
	}
	return allowed, nil
}

// Limit returns the configured per-window request limit.
func (c *Controller) Limit() int { return c.limit }

// Window returns the configured window length.
func (c *Controller) Window() time.Duration { return c.window }
