// Package chaos applies configured random failure and artificial latency
// to requests.
package chaos

import (
	"context"
	mathrand "math/rand/v2"
	"sync"
	"time"

	"github.com/mocklet/mocklet/pkg/endpoint"
)

// Injector draws chaos samples and applies artificial delay. The random
// source is injected so tests can seed it; the production default is a
// time-seeded PCG. Safe for concurrent use.
type Injector struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

// New creates an injector with a time-seeded random source.
func New() *Injector {
	seed := uint64(time.Now().UnixNano())
	return NewWithRand(mathrand.New(mathrand.NewPCG(seed, seed>>32)))
}

// NewWithRand creates an injector with the given random source.
func NewWithRand(rng *mathrand.Rand) *Injector {
	return &Injector{rng: rng}
}

// ShouldFail draws one uniform sample per request and reports whether the
// request should be short-circuited with a synthetic failure. Disabled or
// absent config never fires. The rate is clamped to [0, 1].
func (i *Injector) ShouldFail(cfg *endpoint.ChaosConfig) bool {
	if cfg == nil || !cfg.Enabled {
		return false
	}

	rate := cfg.Rate
	if rate <= 0 {
		return false
	}
	if rate > 1 {
		rate = 1
	}

	i.mu.Lock()
	sample := i.rng.Float64()
	i.mu.Unlock()

	return sample < rate
}

// Delay suspends the current request for ms milliseconds without blocking
// other requests. Returns the context error if the caller disconnects
// mid-delay.
func (i *Injector) Delay(ctx context.Context, ms int) error {
	if ms <= 0 {
		return nil
	}

	timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
