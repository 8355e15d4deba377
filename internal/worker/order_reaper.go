package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/craftpine/storefront/internal/domain/errors"
	"github.com/craftpine/storefront/internal/domain/model"
)

// StorefrontFacade exposes the subset of application functionality required by the reaper.
type StorefrontFacade interface {
	StalePendingOrders(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error)
	CancelOrder(ctx context.Context, orderID string) (*model.Order, error)
}

// OrderReaper cancels pending orders that outlived their TTL, returning
// reserved stock through the regular cancellation path.
type OrderReaper struct {
	facade       StorefrontFacade
	pollInterval time.Duration
	pendingTTL   time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOrderReaper constructs reaper worker pool.
func NewOrderReaper(facade StorefrontFacade, pollInterval, pendingTTL time.Duration, batchSize, workers int, logger *slog.Logger) *OrderReaper {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &OrderReaper{
		facade:       facade,
		pollInterval: pollInterval,
		pendingTTL:   pendingTTL,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (r *OrderReaper) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (r *OrderReaper) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *OrderReaper) dispatch(ctx context.Context) {
	defer r.wg.Done()
	defer close(r.jobs)
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetchAndDispatch(ctx)
		}
	}
}

func (r *OrderReaper) fetchAndDispatch(ctx context.Context) {
	cutoff := time.Now().Add(-r.pendingTTL)
	orders, err := r.facade.StalePendingOrders(ctx, cutoff, r.batchSize)
	if err != nil {
		r.logger.Error("fetch stale pending orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case r.jobs <- order:
		}
	}
}

func (r *OrderReaper) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-r.jobs:
			if !ok {
				return
			}
			r.reapOrder(ctx, order)
		}
	}
}

func (r *OrderReaper) reapOrder(ctx context.Context, order model.Order) {
	if _, err := r.facade.CancelOrder(ctx, order.ID.String()); err != nil {
		// Concurrent completion or cancellation between the poll and this
		// call is expected; the guarded transition already refused it.
		if errors.Is(err, domainErrors.ErrOrderNotPending) || errors.Is(err, domainErrors.ErrNotFound) {
			return
		}
		r.logger.Error("cancel stale order failed", slog.String("order", order.ID.String()), slog.String("error", err.Error()))
		return
	}
	r.logger.Info("stale pending order cancelled", slog.String("order", order.ID.String()))
}
