package admission

import (
	"context"
	"sync"
	"time"
)

// cleanupInterval is how often expired counters are swept.
const cleanupInterval = time.Minute

// windowCounter tracks consumptions for one key within one window.
type windowCounter struct {
	count   int
	resetAt time.Time
}

// MemoryStore is a fixed-window counter store. Increment-and-test happens
// in a single critical section, so concurrent consumers of the same key
// serialize and the limit holds under any interleaving.
type MemoryStore struct {
	mu        sync.Mutex
	counters  map[string]*windowCounter
	stopCh    chan struct{}
	stoppedCh chan struct{}
}

// NewMemoryStore creates a memory store and starts its cleanup goroutine.
// Call Stop when the store is no longer needed.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		counters:  make(map[string]*windowCounter),
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
	go s.cleanup()
	return s
}

// TryConsume implements Store.
func (s *MemoryStore) TryConsume(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	wc, ok := s.counters[key]
	if !ok || !now.Before(wc.resetAt) {
		s.counters[key] = &windowCounter{count: 1, resetAt: now.Add(window)}
		return 1 <= limit, nil
	}

	wc.count++
	return wc.count <= limit, nil
}

// cleanup periodically removes expired counters so idle keys do not
// accumulate.
func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	defer close(s.stoppedCh)

	for {
		select {
		case <-ticker.C:
			s.removeExpired()
		case <-s.stopCh:
			return
		}
	}
}

func (s *MemoryStore) removeExpired() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, wc := range s.counters {
		if !now.Before(wc.resetAt) {
			delete(s.counters, key)
		}
	}
}

// Stop stops the cleanup goroutine.
func (s *MemoryStore) Stop() {
	close(s.stopCh)
	<-s.stoppedCh
}
