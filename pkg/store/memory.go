package store

import (
	"context"
	"errors"
	"sync"

	"github.com/mocklet/mocklet/pkg/endpoint"
)

// MemoryStore is a mutex-guarded in-memory EndpointStore. Reads and
// writes exchange deep copies, so callers can never mutate stored state
// through a returned definition.
type MemoryStore struct {
	mu        sync.RWMutex
	endpoints map[string]*endpoint.Definition
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{endpoints: make(map[string]*endpoint.Definition)}
}

// Get implements EndpointStore.
func (s *MemoryStore) Get(_ context.Context, id string) (*endpoint.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.endpoints[id]
	if !ok {
		return nil, ErrNotFound
	}
	return def.Clone(), nil
}

// Put implements EndpointStore.
func (s *MemoryStore) Put(_ context.Context, def *endpoint.Definition) error {
	if def == nil || def.ID == "" {
		return errors.New("definition must have an ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.endpoints[def.ID] = def.Clone()
	return nil
}

// Delete implements EndpointStore.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.endpoints[id]; !ok {
		return ErrNotFound
	}
	delete(s.endpoints, id)
	return nil
}

// List implements EndpointStore.
func (s *MemoryStore) List(_ context.Context) ([]*endpoint.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*endpoint.Definition, 0, len(s.endpoints))
	for _, def := range s.endpoints {
		out = append(out, def.Clone())
	}
	return out, nil
}
