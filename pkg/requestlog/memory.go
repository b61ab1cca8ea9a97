package requestlog

import (
	"context"
	"sync"
)

// defaultCapacity bounds the memory store when no capacity is configured.
const defaultCapacity = 1000

// MemoryStore keeps the most recent entries in a capacity-bounded FIFO
// buffer. It implements Sink and serves admin inspection queries.
type MemoryStore struct {
	mu       sync.RWMutex
	entries  []*Entry
	capacity int
}

// NewMemoryStore creates a memory store holding at most capacity entries.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &MemoryStore{
		entries:  make([]*Entry, 0, capacity),
		capacity: capacity,
	}
}

// Write implements Sink. The oldest entry is evicted at capacity.
func (s *MemoryStore) Write(_ context.Context, entry *Entry) error {
	if entry == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) >= s.capacity {
		s.entries = s.entries[1:]
	}
	s.entries = append(s.entries, entry)
	return nil
}

// List returns all stored entries, oldest first.
func (s *MemoryStore) List() []*Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ListByEndpoint returns entries recorded for one endpoint, oldest first.
func (s *MemoryStore) ListByEndpoint(endpointID string) []*Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Entry
	for _, e := range s.entries {
		if e.EndpointID == endpointID {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of stored entries.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear removes all stored entries.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = s.entries[:0]
}
