package restock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	apphub "github.com/muhammadheryan/hub-fulfillment/application/hub"
	appinventory "github.com/muhammadheryan/hub-fulfillment/application/inventory"
	"github.com/muhammadheryan/hub-fulfillment/cmd/config"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	restockrepo "github.com/muhammadheryan/hub-fulfillment/repository/restock"
	txrepo "github.com/muhammadheryan/hub-fulfillment/repository/tx"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/muhammadheryan/hub-fulfillment/utils/logger"
	"github.com/muhammadheryan/hub-fulfillment/utils/retry"
	"go.uber.org/zap"
)

const referenceType = "restock"

// EventPublisher announces fulfilled restocks so waiting orders can be re-evaluated.
type EventPublisher interface {
	PublishRestockFulfilled(ctx context.Context, ev model.RestockFulfilledEvent) error
}

type RestockApp interface {
	RequestRestock(ctx context.Context, req *model.CreateRestockRequest) (*model.RestockRequest, error)
	RequestRestockTx(ctx context.Context, tx *sqlx.Tx, req *model.CreateRestockRequest) (*model.RestockRequest, error)
	ApproveRestock(ctx context.Context, requestID uint64, approvedBy *uint64) (*model.RestockRequest, error)
	RejectRestock(ctx context.Context, requestID uint64, reason string, rejectedBy *uint64) (*model.RestockRequest, error)
	AllFulfilled(ctx context.Context, orderID uint64) (bool, error)
	ListRestocks(ctx context.Context, filter *model.RestockFilter) ([]model.RestockRequest, error)
	CancelForOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (int64, error)
}

type restockAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	restockRepo  restockrepo.RestockRepository
	inventoryApp appinventory.InventoryApp
	hubApp       apphub.HubApp
	publisher    EventPublisher
}

func NewRestockApp(config *config.Config, txRepo txrepo.TxRepository, restockRepo restockrepo.RestockRepository,
	inventoryApp appinventory.InventoryApp, hubApp apphub.HubApp, publisher EventPublisher) RestockApp {
	return &restockAppImpl{
		config:       config,
		txRepo:       txRepo,
		restockRepo:  restockRepo,
		inventoryApp: inventoryApp,
		hubApp:       hubApp,
		publisher:    publisher,
	}
}

func (s *restockAppImpl) RequestRestock(ctx context.Context, req *model.CreateRestockRequest) (*model.RestockRequest, error) {
	if _, err := s.hubApp.GetHub(ctx, req.HubID); err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RequestRestock] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	created, err := s.RequestRestockTx(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RequestRestock] commit tx", zap.String("error", err.Error()))
		return nil, errors.AsCustom(err, constant.ErrInternal)
	}
	committed = true
	return created, nil
}

// RequestRestockTx opens a PENDING request. It has no effect on any ledger.
func (s *restockAppImpl) RequestRestockTx(ctx context.Context, tx *sqlx.Tx, req *model.CreateRestockRequest) (*model.RestockRequest, error) {
	if req.Quantity < 1 || req.HubID == 0 || req.ProductID == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	priority := req.Priority
	if priority == "" {
		priority = s.config.Fulfillment.RestockPriority
	}

	created := &model.RestockRequest{
		RequestingHubID:   req.HubID,
		ProductID:         req.ProductID,
		RequestedQuantity: req.Quantity,
		RequestedBy:       req.RequestedBy,
		OrderID:           req.OrderID,
		Status:            constant.RestockStatusPending,
		Priority:          priority,
		Reason:            req.Reason,
		CreatedAt:         time.Now().UTC(),
	}
	id, err := s.restockRepo.InsertTx(ctx, tx, created)
	if err != nil {
		logger.Error("[RequestRestockTx] insert request", zap.String("error", err.Error()))
		return nil, errors.AsCustom(err, constant.ErrInternal)
	}
	created.ID = id

	logger.Info("[RequestRestockTx] restock requested",
		zap.Uint64("request_id", id),
		zap.Uint64("hub_id", req.HubID),
		zap.Uint64("product_id", req.ProductID),
		zap.Int64("quantity", req.Quantity))
	return created, nil
}

// ApproveRestock moves the requested quantity from the central hub and lands the request on
// FULFILLED in one transaction. A second approval of the same request fails with ErrNotPending.
func (s *restockAppImpl) ApproveRestock(ctx context.Context, requestID uint64, approvedBy *uint64) (*model.RestockRequest, error) {
	central, err := s.hubApp.CentralHub(ctx)
	if err != nil {
		return nil, err
	}

	var approved *model.RestockRequest
	err = retry.OnConflict(ctx, "ApproveRestock", s.config.Fulfillment.MaxRetries, s.config.Fulfillment.RetryBackoff, func() error {
		tx, err := s.txRepo.BeginTx(ctx)
		if err != nil {
			logger.Error("[ApproveRestock] begin tx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		committed := false
		defer func() {
			if !committed {
				_ = s.txRepo.RollbackTx(tx)
			}
		}()

		req, err := s.restockRepo.GetTx(ctx, tx, requestID)
		if err != nil {
			return s.fail("ApproveRestock", "get request", err)
		}
		if req.Status != constant.RestockStatusPending {
			return errors.SetCustomError(constant.ErrNotPending)
		}
		if req.RequestingHubID == central.ID {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}

		ref := model.MovementRef{ReferenceType: referenceType, ReferenceID: req.ID, ActorID: approvedBy}
		if err := s.inventoryApp.TransferTx(ctx, tx, central.ID, req.RequestingHubID, req.ProductID, req.RequestedQuantity, ref); err != nil {
			if errors.IsType(err, constant.ErrInsufficientStock) {
				logger.Info("[ApproveRestock] central hub short",
					zap.Uint64("request_id", req.ID), zap.Uint64("product_id", req.ProductID), zap.Int64("quantity", req.RequestedQuantity))
				return errors.SetCustomError(constant.ErrInsufficientCentralStock)
			}
			return err
		}

		now := time.Now().UTC()
		req.Status = constant.RestockStatusFulfilled
		req.ApprovedBy = approvedBy
		req.ApprovedAt = &now
		req.FulfilledAt = &now
		if err := s.restockRepo.TransitionTx(ctx, tx, req, constant.RestockStatusPending); err != nil {
			return s.fail("ApproveRestock", "transition request", err)
		}

		if err := s.txRepo.CommitTx(tx); err != nil {
			return s.fail("ApproveRestock", "commit tx", err)
		}
		committed = true
		approved = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishFulfilled(ctx, approved)
	return approved, nil
}

func (s *restockAppImpl) publishFulfilled(ctx context.Context, req *model.RestockRequest) {
	if s.publisher == nil {
		return
	}
	ev := model.RestockFulfilledEvent{
		EventID:   uuid.NewString(),
		RequestID: req.ID,
		HubID:     req.RequestingHubID,
		ProductID: req.ProductID,
		OrderID:   req.OrderID,
		Quantity:  req.RequestedQuantity,
		At:        *req.FulfilledAt,
	}
	if err := s.publisher.PublishRestockFulfilled(ctx, ev); err != nil {
		// the periodic sweep still picks the order up
		logger.Error("[ApproveRestock] publish restock fulfilled", zap.Uint64("request_id", req.ID), zap.String("error", err.Error()))
	}
}

func (s *restockAppImpl) RejectRestock(ctx context.Context, requestID uint64, reason string, rejectedBy *uint64) (*model.RestockRequest, error) {
	var rejected *model.RestockRequest
	err := retry.OnConflict(ctx, "RejectRestock", s.config.Fulfillment.MaxRetries, s.config.Fulfillment.RetryBackoff, func() error {
		tx, err := s.txRepo.BeginTx(ctx)
		if err != nil {
			logger.Error("[RejectRestock] begin tx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		committed := false
		defer func() {
			if !committed {
				_ = s.txRepo.RollbackTx(tx)
			}
		}()

		req, err := s.restockRepo.GetTx(ctx, tx, requestID)
		if err != nil {
			return s.fail("RejectRestock", "get request", err)
		}
		if req.Status != constant.RestockStatusPending {
			return errors.SetCustomError(constant.ErrNotPending)
		}

		req.Status = constant.RestockStatusRejected
		req.RejectedBy = rejectedBy
		req.RejectedReason = &reason
		if err := s.restockRepo.TransitionTx(ctx, tx, req, constant.RestockStatusPending); err != nil {
			return s.fail("RejectRestock", "transition request", err)
		}

		if err := s.txRepo.CommitTx(tx); err != nil {
			return s.fail("RejectRestock", "commit tx", err)
		}
		committed = true
		rejected = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rejected, nil
}

// AllFulfilled is true once the order has at least one restock request and all are FULFILLED.
func (s *restockAppImpl) AllFulfilled(ctx context.Context, orderID uint64) (bool, error) {
	p, err := s.restockRepo.ProgressByOrder(ctx, orderID)
	if err != nil {
		logger.Error("[AllFulfilled] progress by order", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	return p.Total > 0 && p.Fulfilled == p.Total, nil
}

func (s *restockAppImpl) ListRestocks(ctx context.Context, filter *model.RestockFilter) ([]model.RestockRequest, error) {
	if filter == nil {
		filter = &model.RestockFilter{}
	}
	items, err := s.restockRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListRestocks] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

// CancelForOrderTx cancels the order's still-pending requests. Fulfilled ones stay as they are.
func (s *restockAppImpl) CancelForOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (int64, error) {
	n, err := s.restockRepo.CancelPendingByOrderTx(ctx, tx, orderID)
	if err != nil {
		return 0, s.fail("CancelForOrderTx", "cancel pending", err)
	}
	return n, nil
}

func (s *restockAppImpl) fail(op, msg string, err error) error {
	if ce := errors.AsCustom(err, constant.ErrInternal); ce.Type() != constant.ErrInternal {
		return ce
	}
	logger.Error("["+op+"] "+msg, zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}
