package queue

import (
	"context"
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yogaflow/studio-api/internal/core/domain"
	"github.com/yogaflow/studio-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes authentication events to a fixed set of workers using
// consistent hashing on the email, so events for one account are recorded
// in the order they happened.
type Dispatcher struct {
	workers  []chan domain.AuthEvent
	recorder ports.AuditRecorder
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, recorder ports.AuditRecorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan domain.AuthEvent, numWorkers),
		recorder: recorder,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuthEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an event to the worker responsible for its email. The call
// never blocks: when the worker's buffer is full the event is dropped and
// logged, since the audit trail must not stall a login.
func (d *Dispatcher) Enqueue(event domain.AuthEvent) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	select {
	case d.workers[d.shardIndex(event.Email)] <- event:
	default:
		d.log.Warn().
			Str("email", event.Email).
			Str("kind", string(event.Kind)).
			Msg("audit queue full, event dropped")
	}
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuthEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.recorder.Record(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("email", event.Email).
					Str("kind", string(event.Kind)).
					Int("worker_id", id).
					Msg("audit event recording failed")
			}
		}
	}
}
