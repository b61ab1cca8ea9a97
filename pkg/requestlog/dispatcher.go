package requestlog

import (
	"context"
	"log/slog"

	"github.com/mocklet/mocklet/pkg/logging"
)

// DefaultQueueSize bounds the dispatcher queue when no size is configured.
const DefaultQueueSize = 1024

// Dispatcher decouples recording from delivery with a bounded queue and a
// single worker goroutine. When the queue is full the entry is dropped;
// hit logging is best-effort and must never add latency to the request
// that produced it.
type Dispatcher struct {
	sink   Sink
	queue  chan *Entry
	logger *slog.Logger
	done   chan struct{}
}

// NewDispatcher creates a dispatcher writing to sink and starts its
// worker. Call Close to drain and stop it.
func NewDispatcher(sink Sink, queueSize int, logger *slog.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if logger == nil {
		logger = logging.Nop()
	}
	d := &Dispatcher{
		sink:   sink,
		queue:  make(chan *Entry, queueSize),
		logger: logger,
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

// Record implements Logger. It enqueues the entry without blocking; if
// the queue is full the entry is dropped.
func (d *Dispatcher) Record(entry *Entry) {
	if entry == nil {
		return
	}
	select {
	case d.queue <- entry:
	default:
		d.logger.Debug("request log queue full, dropping entry",
			"endpoint_id", entry.EndpointID)
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for entry := range d.queue {
		if err := d.sink.Write(context.Background(), entry); err != nil {
			d.logger.Debug("request log write failed",
				"endpoint_id", entry.EndpointID, "error", err)
		}
	}
}

// Close stops accepting entries, drains the queue, and waits for the
// worker to finish.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
