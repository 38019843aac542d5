package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/tienda-online/store-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes stock alerts to a fixed set of workers using consistent
// hashing on the product id, guaranteeing per-product alert ordering.
// It implements ports.StockNotifier.
type Dispatcher struct {
	workers []chan ports.StockAlertInput
	service ports.StockAlertService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.StockAlertService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.StockAlertInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.StockAlertInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an alert to the worker responsible for its product.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(input ports.StockAlertInput) {
	d.workers[d.shardIndex(input.ProductID)] <- input
}

// shardIndex maps a product id deterministically to a worker index.
func (d *Dispatcher) shardIndex(productID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(productID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.StockAlertInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, input); err != nil {
				d.log.Error().Err(err).
					Str("product_id", input.ProductID).
					Int("worker_id", id).
					Msg("stock alert processing failed")
			}
		}
	}
}
