package order_test

import (
	"context"
	"errors"
	"testing"
	"time"

	apporder "github.com/muhammadheryan/hub-fulfillment/application/order"
	orderappmocks "github.com/muhammadheryan/hub-fulfillment/mocks/application/order"
	"github.com/muhammadheryan/hub-fulfillment/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSweeper_Run(t *testing.T) {
	app := orderappmocks.NewOrderApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app.On("SweepPendingApprovals", mock.Anything).Return(1, nil).Run(func(mock.Arguments) { cancel() }).Once()

	done := make(chan struct{})
	go func() {
		apporder.NewSweeper(app, 5*time.Millisecond).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
}

func TestSweeper_DisabledInterval(t *testing.T) {
	app := orderappmocks.NewOrderApp(t)
	apporder.NewSweeper(app, 0).Run(context.Background())
}

func TestOnRestockFulfilled(t *testing.T) {
	orderID := uint64(77)

	t.Run("success: correlated restock re-evaluates only its order", func(t *testing.T) {
		app := orderappmocks.NewOrderApp(t)
		app.On("ApproveOrder", mock.Anything, orderID).Return(true, nil).Once()

		err := apporder.OnRestockFulfilled(app)(context.Background(), model.RestockFulfilledEvent{RequestID: 41, OrderID: &orderID})
		assert.NoError(t, err)
	})

	t.Run("success: uncorrelated restock runs a sweep batch", func(t *testing.T) {
		app := orderappmocks.NewOrderApp(t)
		app.On("SweepPendingApprovals", mock.Anything).Return(0, nil).Once()

		err := apporder.OnRestockFulfilled(app)(context.Background(), model.RestockFulfilledEvent{RequestID: 42})
		assert.NoError(t, err)
	})

	t.Run("error: approval failure is returned so the message is requeued", func(t *testing.T) {
		app := orderappmocks.NewOrderApp(t)
		app.On("ApproveOrder", mock.Anything, orderID).Return(false, errors.New("deadlock")).Once()

		err := apporder.OnRestockFulfilled(app)(context.Background(), model.RestockFulfilledEvent{RequestID: 41, OrderID: &orderID})
		assert.Error(t, err)
	})
}
