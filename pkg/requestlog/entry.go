// Package requestlog records per-request hit entries for user inspection.
//
// Recording sits on the hot serving path, so the Logger contract is
// fire-and-forget: Record never blocks and never fails the request that
// produced the entry.
package requestlog

import (
	"context"
	"time"
)

// Entry is one recorded endpoint hit.
type Entry struct {
	Time       time.Time `json:"time"`
	EndpointID string    `json:"endpointId"`
	Method     string    `json:"method"`
	RemoteAddr string    `json:"remoteAddr"`
}

// Logger is the minimal interface the serving pipeline records through.
type Logger interface {
	Record(entry *Entry)
}

// Sink receives entries off the hot path. Implementations may persist,
// forward, or buffer; a returned error never reaches the recorded
// request.
type Sink interface {
	Write(ctx context.Context, entry *Entry) error
}
