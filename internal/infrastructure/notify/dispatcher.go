package notify

import (
	"context"
	"sync"

	"taller_jaison/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Dispatcher is a bounded one-way queue drained by a single worker.
// Enqueueing never blocks: when the queue is full the change is dropped.
type Dispatcher struct {
	sink     Sink
	apiToken string
	logger   *zap.Logger
	queue    chan interfaces.OrderChange

	mu      sync.Mutex
	closed  bool
	started bool
	done    chan struct{}
}

var _ interfaces.IOrderNotifier = (*Dispatcher)(nil)

func NewDispatcher(sink Sink, apiToken string, size int, logger *zap.Logger) *Dispatcher {
	if size <= 0 {
		size = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		sink:     sink,
		apiToken: apiToken,
		logger:   logger,
		queue:    make(chan interfaces.OrderChange, size),
		done:     make(chan struct{}),
	}
}

func (d *Dispatcher) NotifyOrderChanged(change interfaces.OrderChange) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.logger.Warn("[notify][dispatcher] dropped after stop", zap.String("order_id", change.Order.ID))
		return
	}
	select {
	case d.queue <- change:
	default:
		d.logger.Warn("[notify][dispatcher] queue full; dropped", zap.String("order_id", change.Order.ID))
	}
}

// Start launches the worker. Deliveries outlive ctx cancellation so that
// Stop can drain what was already queued.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started {
		return
	}
	d.started = true
	go d.run(context.WithoutCancel(ctx))
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.done)
	for change := range d.queue {
		p := BuildPayload(change, d.apiToken)
		if err := d.sink.Deliver(ctx, p); err != nil {
			d.logger.Error("[notify][dispatcher] delivery failed", zap.String("order_id", p.OrderID), zap.Error(err))
			continue
		}
		d.logger.Debug("[notify][dispatcher] delivered", zap.String("order_id", p.OrderID), zap.String("status", p.Status))
	}
}

// Stop closes the queue and waits for the worker to drain it, or for ctx.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	started := d.started
	d.mu.Unlock()
	if !started {
		return nil
	}
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
