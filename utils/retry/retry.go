package retry

import (
	"context"
	"time"

	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/muhammadheryan/hub-fulfillment/utils/logger"
	"go.uber.org/zap"
)

// OnConflict runs fn up to attempts times while it fails with ErrConcurrentModification,
// waiting backoff*attempt between tries. Any other result is returned immediately.
func OnConflict(ctx context.Context, op string, attempts int, backoff time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 1; i <= attempts; i++ {
		err = fn()
		if err == nil || !errors.IsType(err, constant.ErrConcurrentModification) {
			return err
		}
		if i == attempts {
			break
		}
		logger.Debug("["+op+"] concurrent modification, retrying", zap.Int("attempt", i))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff * time.Duration(i)):
		}
	}
	logger.Warn("["+op+"] gave up after concurrent modifications", zap.Int("attempts", attempts))
	return err
}
