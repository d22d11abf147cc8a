package restock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	apprestock "github.com/muhammadheryan/hub-fulfillment/application/restock"
	"github.com/muhammadheryan/hub-fulfillment/cmd/config"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	hubappmocks "github.com/muhammadheryan/hub-fulfillment/mocks/application/hub"
	inventoryappmocks "github.com/muhammadheryan/hub-fulfillment/mocks/application/inventory"
	restockappmocks "github.com/muhammadheryan/hub-fulfillment/mocks/application/restock"
	restockmocks "github.com/muhammadheryan/hub-fulfillment/mocks/repository/restock"
	txmocks "github.com/muhammadheryan/hub-fulfillment/mocks/repository/tx"
	"github.com/muhammadheryan/hub-fulfillment/model"
	cerr "github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	txRepo       *txmocks.TxRepository
	restockRepo  *restockmocks.RestockRepository
	inventoryApp *inventoryappmocks.InventoryApp
	hubApp       *hubappmocks.HubApp
	publisher    *restockappmocks.EventPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:       txmocks.NewTxRepository(t),
		restockRepo:  restockmocks.NewRestockRepository(t),
		inventoryApp: inventoryappmocks.NewInventoryApp(t),
		hubApp:       hubappmocks.NewHubApp(t),
		publisher:    restockappmocks.NewEventPublisher(t),
	}
}

func newApp(f fields) apprestock.RestockApp {
	cfg := &config.Config{Fulfillment: config.FulfillmentConfig{
		MaxRetries:      3,
		RetryBackoff:    time.Millisecond,
		RestockPriority: constant.RestockPriorityHigh,
	}}
	return apprestock.NewRestockApp(cfg, f.txRepo, f.restockRepo, f.inventoryApp, f.hubApp, f.publisher)
}

var central = &model.Hub{ID: 1, Type: constant.HubTypeCentral, Status: constant.HubStatusActive}

func pending(orderID uint64) *model.RestockRequest {
	return &model.RestockRequest{
		ID:                40,
		RequestingHubID:   7,
		ProductID:         100,
		RequestedQuantity: 3,
		OrderID:           &orderID,
		Status:            constant.RestockStatusPending,
		Priority:          constant.RestockPriorityHigh,
	}
}

func TestRestockApp_ApproveRestock(t *testing.T) {
	approver := uint64(2)

	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: transfers from central and fulfils",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.hubApp.On("CentralHub", mock.Anything).Return(central, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.restockRepo.On("GetTx", mock.Anything, tx, uint64(40)).Return(pending(9), nil).Once()
				f.inventoryApp.On("TransferTx", mock.Anything, tx, uint64(1), uint64(7), uint64(100), int64(3),
					model.MovementRef{ReferenceType: "restock", ReferenceID: 40, ActorID: &approver}).Return(nil).Once()
				f.restockRepo.On("TransitionTx", mock.Anything, tx, mock.MatchedBy(func(r *model.RestockRequest) bool {
					return r.Status == constant.RestockStatusFulfilled && r.ApprovedAt != nil && r.FulfilledAt != nil &&
						r.ApprovedBy != nil && *r.ApprovedBy == approver
				}), constant.RestockStatusPending).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishRestockFulfilled", mock.Anything, mock.MatchedBy(func(ev model.RestockFulfilledEvent) bool {
					return ev.RequestID == 40 && ev.HubID == 7 && *ev.OrderID == 9 && ev.Quantity == 3 && ev.EventID != ""
				})).Return(nil).Once()
			},
		},
		{
			name: "error: central hub cannot cover the request",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.hubApp.On("CentralHub", mock.Anything).Return(central, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.restockRepo.On("GetTx", mock.Anything, tx, uint64(40)).Return(pending(9), nil).Once()
				f.inventoryApp.On("TransferTx", mock.Anything, tx, uint64(1), uint64(7), uint64(100), int64(3), mock.Anything).
					Return(cerr.SetCustomError(constant.ErrInsufficientStock)).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientCentralStock,
		},
		{
			name: "error: approving an already fulfilled request",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				done := pending(9)
				done.Status = constant.RestockStatusFulfilled
				f.hubApp.On("CentralHub", mock.Anything).Return(central, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.restockRepo.On("GetTx", mock.Anything, tx, uint64(40)).Return(done, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotPending,
		},
		{
			name: "error: status guard lost to a concurrent approval",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.hubApp.On("CentralHub", mock.Anything).Return(central, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.restockRepo.On("GetTx", mock.Anything, tx, uint64(40)).Return(pending(9), nil).Once()
				f.inventoryApp.On("TransferTx", mock.Anything, tx, uint64(1), uint64(7), uint64(100), int64(3), mock.Anything).Return(nil).Once()
				f.restockRepo.On("TransitionTx", mock.Anything, tx, mock.Anything, constant.RestockStatusPending).
					Return(cerr.SetCustomError(constant.ErrNotPending)).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotPending,
		},
		{
			name: "error: unknown request",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.hubApp.On("CentralHub", mock.Anything).Return(central, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.restockRepo.On("GetTx", mock.Anything, tx, uint64(40)).Return(nil, cerr.SetCustomError(constant.ErrRestockNotFound)).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrRestockNotFound,
		},
		{
			name: "success: publish failure does not undo the approval",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.hubApp.On("CentralHub", mock.Anything).Return(central, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.restockRepo.On("GetTx", mock.Anything, tx, uint64(40)).Return(pending(9), nil).Once()
				f.inventoryApp.On("TransferTx", mock.Anything, tx, uint64(1), uint64(7), uint64(100), int64(3), mock.Anything).Return(nil).Once()
				f.restockRepo.On("TransitionTx", mock.Anything, tx, mock.Anything, constant.RestockStatusPending).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishRestockFulfilled", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := newApp(f).ApproveRestock(context.Background(), 40, &approver)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApproveRestock() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !cerr.IsType(err, tt.errCode) {
					t.Fatalf("ApproveRestock() error = %v, want %s", err, constant.ErrorTypeMessage[tt.errCode])
				}
				return
			}
			assert.Equal(t, constant.RestockStatusFulfilled, got.Status)
		})
	}
}

func TestRestockApp_RejectRestock(t *testing.T) {
	f := newFields(t)
	tx := &sqlx.Tx{}
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.restockRepo.On("GetTx", mock.Anything, tx, uint64(40)).Return(pending(9), nil).Once()
	f.restockRepo.On("TransitionTx", mock.Anything, tx, mock.MatchedBy(func(r *model.RestockRequest) bool {
		return r.Status == constant.RestockStatusRejected && *r.RejectedReason == "discontinued"
	}), constant.RestockStatusPending).Return(nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()

	got, err := newApp(f).RejectRestock(context.Background(), 40, "discontinued", nil)
	require.NoError(t, err)
	assert.Equal(t, constant.RestockStatusRejected, got.Status)
}

func TestRestockApp_RequestRestockTx(t *testing.T) {
	t.Run("success: default priority and order correlation", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		orderID := uint64(9)
		f.restockRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(r *model.RestockRequest) bool {
			return r.Status == constant.RestockStatusPending && r.Priority == constant.RestockPriorityHigh &&
				r.RequestedQuantity == 3 && r.OrderID != nil && *r.OrderID == 9
		})).Return(uint64(41), nil).Once()

		got, err := newApp(f).RequestRestockTx(context.Background(), tx, &model.CreateRestockRequest{
			HubID: 7, ProductID: 100, Quantity: 3, OrderID: &orderID,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(41), got.ID)
	})

	t.Run("error: zero quantity", func(t *testing.T) {
		f := newFields(t)
		_, err := newApp(f).RequestRestockTx(context.Background(), &sqlx.Tx{}, &model.CreateRestockRequest{HubID: 7, ProductID: 100})
		assert.True(t, cerr.IsType(err, constant.ErrInvalidRequest))
	})
}

func TestRestockApp_AllFulfilled(t *testing.T) {
	tests := []struct {
		name     string
		progress *model.RestockProgress
		want     bool
	}{
		{name: "no requests", progress: &model.RestockProgress{}, want: false},
		{name: "partially fulfilled", progress: &model.RestockProgress{Total: 2, Fulfilled: 1}, want: false},
		{name: "all fulfilled", progress: &model.RestockProgress{Total: 2, Fulfilled: 2}, want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.restockRepo.On("ProgressByOrder", mock.Anything, uint64(9)).Return(tt.progress, nil).Once()

			got, err := newApp(f).AllFulfilled(context.Background(), 9)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
