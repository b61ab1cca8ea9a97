// Package store defines the endpoint definition storage boundary.
//
// The serving pipeline only reads; the admin API writes. Persistent
// implementations live behind EndpointStore so the pipeline never knows
// where definitions come from.
package store

import (
	"context"
	"errors"

	"github.com/mocklet/mocklet/pkg/endpoint"
)

// ErrNotFound is returned when no endpoint exists for the given ID.
var ErrNotFound = errors.New("endpoint not found")

// EndpointStore stores endpoint definitions keyed by ID.
type EndpointStore interface {
	// Get returns the definition for id, or ErrNotFound.
	Get(ctx context.Context, id string) (*endpoint.Definition, error)

	// Put creates or replaces the definition under def.ID.
	Put(ctx context.Context, def *endpoint.Definition) error

	// Delete removes the definition for id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// List returns all stored definitions.
	List(ctx context.Context) ([]*endpoint.Definition, error)
}
