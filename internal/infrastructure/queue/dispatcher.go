package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/core/domain"
	"github.com/devhub/admin-console/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Observer receives queue telemetry. A nil Observer is allowed.
type Observer interface {
	QueueDepth(workerID, depth int)
	ProcessFailed()
}

// Dispatcher routes audit entries to a fixed set of workers using consistent
// hashing on the entry's shard key, so entries about one entity are persisted
// in the order they were recorded.
type Dispatcher struct {
	workers  []chan domain.AuditEntry
	service  ports.AuditService
	observer Observer
	log      zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, observer Observer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan domain.AuditEntry, numWorkers),
		service:  service,
		observer: observer,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled or
// after Close has drained their queues.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Record implements ports.AuditRecorder. It never blocks the caller: when the
// worker queue is full or the dispatcher is closed the entry is dropped and
// logged.
func (d *Dispatcher) Record(entry domain.AuditEntry) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn().Str("shard", entry.ShardKey()).Msg("audit dispatcher closed, entry dropped")
		return
	}

	idx := d.shardIndex(entry.ShardKey())
	select {
	case d.workers[idx] <- entry:
		d.reportDepth(idx)
	default:
		d.log.Error().Str("shard", entry.ShardKey()).Int("worker_id", idx).Msg("audit queue full, entry dropped")
		if d.observer != nil {
			d.observer.ProcessFailed()
		}
	}
}

// Close stops accepting entries and waits until the workers drain their queues.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// shardIndex maps a shard key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) reportDepth(idx int) {
	if d.observer != nil {
		d.observer.QueueDepth(idx, len(d.workers[idx]))
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(context.WithoutCancel(ctx), entry); err != nil {
				d.log.Error().Err(err).
					Str("shard", entry.ShardKey()).
					Int("worker_id", id).
					Msg("audit entry processing failed")
				if d.observer != nil {
					d.observer.ProcessFailed()
				}
			}
			d.reportDepth(id)
		}
	}
}
