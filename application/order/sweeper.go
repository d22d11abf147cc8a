package order

import (
	"context"
	"time"

	"github.com/muhammadheryan/hub-fulfillment/model"
	"github.com/muhammadheryan/hub-fulfillment/utils/logger"
	"go.uber.org/zap"
)

// Sweeper periodically promotes PENDING orders whose restocks have landed. It backs up the
// restock.fulfilled consumer in case an event is lost.
type Sweeper struct {
	app      OrderApp
	interval time.Duration
}

func NewSweeper(app OrderApp, interval time.Duration) *Sweeper {
	return &Sweeper{app: app, interval: interval}
}

// Run blocks until ctx is cancelled.
func (w *Sweeper) Run(ctx context.Context) {
	if w.interval <= 0 {
		logger.Warn("[Sweeper] disabled, non-positive interval", zap.Duration("interval", w.interval))
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	logger.Info("[Sweeper] started", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			logger.Info("[Sweeper] stopped")
			return
		case <-ticker.C:
			if _, err := w.app.SweepPendingApprovals(ctx); err != nil && ctx.Err() == nil {
				logger.Error("[Sweeper] sweep failed", zap.Error(err))
			}
		}
	}
}

// OnRestockFulfilled handles a restock.fulfilled event. A restock opened for an order
// re-evaluates just that order; an uncorrelated one runs a sweep batch.
func OnRestockFulfilled(app OrderApp) func(ctx context.Context, ev model.RestockFulfilledEvent) error {
	return func(ctx context.Context, ev model.RestockFulfilledEvent) error {
		if ev.OrderID != nil {
			approved, err := app.ApproveOrder(ctx, *ev.OrderID)
			if err != nil {
				return err
			}
			logger.Info("[OnRestockFulfilled] order re-evaluated", zap.Uint64("request_id", ev.RequestID),
				zap.Uint64("order_id", *ev.OrderID), zap.Bool("approved", approved))
			return nil
		}
		approved, err := app.SweepPendingApprovals(ctx)
		if err != nil {
			return err
		}
		logger.Info("[OnRestockFulfilled] sweep after restock", zap.Uint64("request_id", ev.RequestID), zap.Int("approved", approved))
		return nil
	}
}
