package order

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	apphub "github.com/muhammadheryan/hub-fulfillment/application/hub"
	appinventory "github.com/muhammadheryan/hub-fulfillment/application/inventory"
	appnotification "github.com/muhammadheryan/hub-fulfillment/application/notification"
	apprestock "github.com/muhammadheryan/hub-fulfillment/application/restock"
	approute "github.com/muhammadheryan/hub-fulfillment/application/route"
	"github.com/muhammadheryan/hub-fulfillment/cmd/config"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	orderrepo "github.com/muhammadheryan/hub-fulfillment/repository/order"
	productrepo "github.com/muhammadheryan/hub-fulfillment/repository/product"
	txrepo "github.com/muhammadheryan/hub-fulfillment/repository/tx"
	ctxutil "github.com/muhammadheryan/hub-fulfillment/utils/context"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/muhammadheryan/hub-fulfillment/utils/logger"
	"github.com/muhammadheryan/hub-fulfillment/utils/otp"
	"github.com/muhammadheryan/hub-fulfillment/utils/retry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const referenceType = "order"

// errUnchanged lets an update callback end the unit of work without writing anything.
var errUnchanged = stderrors.New("order unchanged")

// OrderApp drives an order from placement to hand-off:
// PENDING -> APPROVED -> OUT_FOR_DELIVERY | READY_FOR_COLLECTION -> DELIVERED, or CANCELLED
// from any non-terminal status.
type OrderApp interface {
	PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)
	SweepPendingApprovals(ctx context.Context) (int, error)
	ApproveOrder(ctx context.Context, orderID uint64) (bool, error)
	ScanIn(ctx context.Context, orderID, hubID uint64) (*model.Order, error)
	Dispatch(ctx context.Context, orderID, callingHubID uint64, req *model.DispatchRequest) (*model.Order, error)
	MarkReadyForCollection(ctx context.Context, orderID uint64) (*model.Order, error)
	VerifyCollection(ctx context.Context, orderID uint64, code string) (*model.Order, error)
	ConfirmDelivery(ctx context.Context, orderID uint64, code string) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID uint64) (*model.Order, error)
	ConfirmPayment(ctx context.Context, orderID uint64) (*model.Order, error)
	GetOrder(ctx context.Context, orderID uint64) (*model.Order, error)
}

type orderAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	orderRepo       orderrepo.OrderRepository
	productRepo     productrepo.ProductRepository
	inventoryApp    appinventory.InventoryApp
	restockApp      apprestock.RestockApp
	routeApp        approute.RouteApp
	hubApp          apphub.HubApp
	notificationApp appnotification.NotificationApp

	sweepMu sync.Mutex
	// last order id scanned by the previous sweep batch, 0 to start over
	sweepCursor uint64
}

func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, productRepo productrepo.ProductRepository,
	inventoryApp appinventory.InventoryApp, restockApp apprestock.RestockApp, routeApp approute.RouteApp, hubApp apphub.HubApp,
	notificationApp appnotification.NotificationApp) OrderApp {
	return &orderAppImpl{
		config:          config,
		txRepo:          txRepo,
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		inventoryApp:    inventoryApp,
		restockApp:      restockApp,
		routeApp:        routeApp,
		hubApp:          hubApp,
		notificationApp: notificationApp,
	}
}

// PlaceOrder prices the items, resolves the route and either reserves everything at the
// fulfilment hub (APPROVED) or parks the order as PENDING with one restock request per short
// product, all in one transaction.
func (s *orderAppImpl) PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	lines, err := mergeItems(req.Items)
	if err != nil {
		return nil, err
	}

	route, err := s.routeApp.ResolveRoute(ctx, &req.Target)
	if err != nil {
		return nil, err
	}
	if len(route) == 0 {
		return nil, errors.SetCustomError(constant.ErrHubNotFound)
	}
	hub := s.locate(ctx, route[0])

	items, total, err := s.priceItems(ctx, lines)
	if err != nil {
		return nil, err
	}

	draft := model.Order{
		OrderNumber:   newOrderNumber(),
		UserID:        req.UserID,
		TotalAmount:   total,
		DeliveryType:  req.Target.DeliveryType,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: constant.PaymentStatusPending,
		Items:         items,
		Route:         route,
	}
	if req.Target.DeliveryType == constant.DeliveryTypeHubCollection {
		hubID := route[0]
		draft.CollectionHubID = &hubID
	} else if addr := req.Target.Address; addr != nil {
		draft.AddressLine, draft.District, draft.Pincode = &addr.Line, &addr.District, &addr.Pincode
	}

	var placed *model.Order
	err = retry.OnConflict(ctx, "PlaceOrder", s.config.Fulfillment.MaxRetries, s.config.Fulfillment.RetryBackoff, func() error {
		tx, err := s.txRepo.BeginTx(ctx)
		if err != nil {
			logger.Error("[PlaceOrder] begin tx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		committed := false
		defer func() {
			if !committed {
				_ = s.txRepo.RollbackTx(tx)
			}
		}()

		order := draft
		order.Timeline = nil
		order.CreatedAt = time.Now().UTC()
		order.UpdatedAt = order.CreatedAt

		shortfalls, err := s.inventoryApp.CheckShortfallsTx(ctx, tx, hub.ID, order.StockLines())
		if err != nil {
			return err
		}
		order.Status = constant.OrderStatusPending
		if len(shortfalls) == 0 {
			order.Status = constant.OrderStatusApproved
			order.ReservedHubID = &hub.ID
		}

		id, err := s.orderRepo.InsertOrderTx(ctx, tx, &order)
		if err != nil {
			return s.fail("PlaceOrder", "insert order", err)
		}
		order.ID = id
		if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, id, order.Items); err != nil {
			return s.fail("PlaceOrder", "insert items", err)
		}
		if err := s.orderRepo.InsertRouteTx(ctx, tx, id, 0, order.Route); err != nil {
			return s.fail("PlaceOrder", "insert route", err)
		}
		if err := s.appendTimeline(ctx, tx, &order, constant.TimelinePlaced, hub, "Order placed"); err != nil {
			return err
		}

		if len(shortfalls) == 0 {
			if err := s.inventoryApp.ReserveItemsTx(ctx, tx, hub.ID, order.StockLines(), s.ref(&order)); err != nil {
				return err
			}
			if err := s.appendTimeline(ctx, tx, &order, constant.TimelineApproved, hub, "Stock reserved at "+hub.Name); err != nil {
				return err
			}
		} else if err := s.openRestocks(ctx, tx, &order, hub.ID, shortfalls); err != nil {
			return err
		}

		if err := s.txRepo.CommitTx(tx); err != nil {
			return s.fail("PlaceOrder", "commit tx", err)
		}
		committed = true
		placed = &order
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("[PlaceOrder] order placed",
		zap.Uint64("order_id", placed.ID),
		zap.String("order_number", placed.OrderNumber),
		zap.String("status", string(placed.Status)),
		zap.Uint64("hub_id", hub.ID))

	s.notify(ctx, constant.NotificationOrderPlaced, placed, nil)
	if placed.Status == constant.OrderStatusApproved {
		s.notify(ctx, constant.NotificationOrderApproved, placed, nil)
	}
	return placed, nil
}

// SweepPendingApprovals re-evaluates PENDING orders whose restock requests have all been
// fulfilled. Each call scans one batch after the previous one, wrapping around at the end, so
// orders stuck behind rejected restocks cannot starve newer ones. Sweeps never overlap;
// per-order failures are logged and skipped.
func (s *orderAppImpl) SweepPendingApprovals(ctx context.Context) (int, error) {
	s.sweepMu.Lock()
	defer s.sweepMu.Unlock()

	limit := s.config.Fulfillment.SweepBatchSize
	ids, err := s.orderRepo.ListOrderIDs(ctx, &model.OrderFilter{
		Status:  constant.OrderStatusPending,
		AfterID: s.sweepCursor,
		Limit:   limit,
	})
	if err != nil {
		return 0, s.fail("SweepPendingApprovals", "list pending orders", err)
	}
	if limit > 0 && len(ids) == limit {
		s.sweepCursor = ids[len(ids)-1]
	} else {
		s.sweepCursor = 0
	}

	approved := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return approved, err
		}
		ok, err := s.ApproveOrder(ctx, id)
		if err != nil {
			logger.Warn("[SweepPendingApprovals] approve order", zap.Uint64("order_id", id), zap.Error(err))
			continue
		}
		if ok {
			approved++
		}
	}

	if approved > 0 {
		logger.Info("[SweepPendingApprovals] orders approved", zap.Int("approved", approved), zap.Int("scanned", len(ids)))
	}
	return approved, nil
}

// ApproveOrder approves one PENDING order once all of its restock requests are FULFILLED.
// It reports false, without error, while any request is outstanding or the order already moved on.
func (s *orderAppImpl) ApproveOrder(ctx context.Context, orderID uint64) (bool, error) {
	ready, err := s.restockApp.AllFulfilled(ctx, orderID)
	if err != nil {
		return false, err
	}
	if !ready {
		return false, nil
	}
	return s.approvePending(ctx, orderID)
}

// approvePending reserves a PENDING order's items. When the hub is still short the order stays
// PENDING and restock requests for the remaining shortfall are committed instead.
func (s *orderAppImpl) approvePending(ctx context.Context, orderID uint64) (bool, error) {
	var approved *model.Order
	err := retry.OnConflict(ctx, "ApprovePending", s.config.Fulfillment.MaxRetries, s.config.Fulfillment.RetryBackoff, func() error {
		approved = nil
		tx, err := s.txRepo.BeginTx(ctx)
		if err != nil {
			logger.Error("[ApprovePending] begin tx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		committed := false
		defer func() {
			if !committed {
				_ = s.txRepo.RollbackTx(tx)
			}
		}()

		order, err := s.orderRepo.GetOrderTx(ctx, tx, orderID)
		if err != nil {
			return s.fail("ApprovePending", "get order", err)
		}
		if order.Status != constant.OrderStatusPending {
			return nil
		}
		hubID, ok := order.FulfillmentHubID()
		if !ok {
			logger.Integrity("[ApprovePending] order has no fulfilment hub", zap.Uint64("order_id", order.ID))
			return errors.SetCustomError(constant.ErrDataIntegrity)
		}

		shortfalls, err := s.inventoryApp.CheckShortfallsTx(ctx, tx, hubID, order.StockLines())
		if err != nil {
			return err
		}
		if len(shortfalls) > 0 {
			if err := s.openRestocks(ctx, tx, order, hubID, shortfalls); err != nil {
				return err
			}
		} else {
			if err := s.inventoryApp.ReserveItemsTx(ctx, tx, hubID, order.StockLines(), s.ref(order)); err != nil {
				return err
			}
			hub := s.locate(ctx, hubID)
			order.Status = constant.OrderStatusApproved
			order.ReservedHubID = &hubID
			if err := s.appendTimeline(ctx, tx, order, constant.TimelineApproved, hub, "Stock reserved at "+hub.Name); err != nil {
				return err
			}
			if err := s.orderRepo.UpdateOrderTx(ctx, tx, order); err != nil {
				return s.fail("ApprovePending", "update order", err)
			}
		}

		if err := s.txRepo.CommitTx(tx); err != nil {
			return s.fail("ApprovePending", "commit tx", err)
		}
		committed = true
		if len(shortfalls) == 0 {
			approved = order
		}
		return nil
	})
	if err != nil || approved == nil {
		return false, err
	}

	logger.Info("[ApprovePending] order approved", zap.Uint64("order_id", approved.ID))
	s.notify(ctx, constant.NotificationOrderApproved, approved, nil)
	return true, nil
}

// ScanIn records the package arriving at hubID. The hub must be on the route and, unless it is
// the first hub, the previous route hub must be the last one that scanned the package.
func (s *orderAppImpl) ScanIn(ctx context.Context, orderID, hubID uint64) (*model.Order, error) {
	hub, err := s.hubApp.GetHub(ctx, hubID)
	if err != nil {
		return nil, err
	}

	return s.update(ctx, "ScanIn", orderID, func(tx *sqlx.Tx, order *model.Order) error {
		if order.Status != constant.OrderStatusApproved {
			return errors.SetCustomError(constant.ErrInvalidOrderStatus)
		}
		pos := indexOf(order.Route, hubID)
		if pos < 0 {
			logger.Info("[ScanIn] hub not in route", zap.Uint64("order_id", order.ID), zap.Uint64("hub_id", hubID))
			return errors.SetCustomError(constant.ErrHubNotInRoute)
		}
		if order.InTransitToHubID != nil && *order.InTransitToHubID != hubID {
			return s.sequenceViolation("ScanIn", order, hubID)
		}
		if pos == 0 && order.LastConfirmedHubID != nil {
			return s.sequenceViolation("ScanIn", order, hubID)
		}
		if pos > 0 && (order.LastConfirmedHubID == nil || *order.LastConfirmedHubID != order.Route[pos-1]) {
			return s.sequenceViolation("ScanIn", order, hubID)
		}

		order.LastConfirmedHubID = &hub.ID
		order.InTransitToHubID = nil
		return s.appendTimeline(ctx, tx, order, constant.TimelineArrivedAtHub, hub, "Arrived at "+hub.Name)
	})
}

// Dispatch sends the package onward from the hub that last scanned it. A LOCAL_HUB hands it to a
// delivery boy with a fresh delivery OTP; any other hub puts it in transit to the next hub.
// An explicit next hub must match the route, or may extend it once the route is exhausted.
func (s *orderAppImpl) Dispatch(ctx context.Context, orderID, callingHubID uint64, req *model.DispatchRequest) (*model.Order, error) {
	hub, err := s.hubApp.GetHub(ctx, callingHubID)
	if err != nil {
		return nil, err
	}
	var explicit *model.Hub
	if req.NextHubID != nil && hub.Type != constant.HubTypeLocal {
		if explicit, err = s.hubApp.GetHub(ctx, *req.NextHubID); err != nil {
			return nil, err
		}
		if explicit.Status != constant.HubStatusActive || explicit.ID == hub.ID {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}

	var code string
	order, err := s.update(ctx, "Dispatch", orderID, func(tx *sqlx.Tx, order *model.Order) error {
		if order.DeliveryType != constant.DeliveryTypeHome {
			return errors.SetCustomError(constant.ErrInvalidOrderStatus)
		}
		if order.LastConfirmedHubID == nil || *order.LastConfirmedHubID != hub.ID {
			return s.sequenceViolation("Dispatch", order, hub.ID)
		}

		if hub.Type == constant.HubTypeLocal {
			// OUT_FOR_DELIVERY is accepted so an expired delivery OTP can be re-issued.
			if order.Status != constant.OrderStatusApproved && order.Status != constant.OrderStatusOutForDelivery {
				return errors.SetCustomError(constant.ErrInvalidOrderStatus)
			}
			if req.DeliveryBoyID == nil {
				return errors.SetCustomError(constant.ErrInvalidRequest)
			}
			var err error
			if code, err = s.issueOtp("Dispatch"); err != nil {
				return err
			}
			now := time.Now().UTC()
			order.DeliveryBoyID = req.DeliveryBoyID
			order.DeliveryOtp = &code
			order.DeliveryOtpGeneratedAt = &now
			order.InTransitToHubID = nil
			order.Status = constant.OrderStatusOutForDelivery
			return s.appendTimeline(ctx, tx, order, constant.TimelineOutForDelivery, hub, "Out for delivery from "+hub.Name)
		}

		if order.Status != constant.OrderStatusApproved {
			return errors.SetCustomError(constant.ErrInvalidOrderStatus)
		}
		if order.InTransitToHubID != nil {
			return s.sequenceViolation("Dispatch", order, hub.ID)
		}
		next, err := s.routeApp.NextHub(order)
		if err != nil {
			return err
		}
		if explicit != nil {
			switch {
			case indexOf(order.Route, explicit.ID) >= 0:
				if next == nil || *next != explicit.ID {
					return s.sequenceViolation("Dispatch", order, explicit.ID)
				}
			case next != nil:
				return s.sequenceViolation("Dispatch", order, explicit.ID)
			default:
				if err := s.orderRepo.InsertRouteTx(ctx, tx, order.ID, len(order.Route), []uint64{explicit.ID}); err != nil {
					return s.fail("Dispatch", "extend route", err)
				}
				order.Route = append(order.Route, explicit.ID)
			}
			next = &explicit.ID
		}
		if next == nil {
			return errors.SetCustomError(constant.ErrNextHubUndetermined)
		}

		order.InTransitToHubID = next
		desc := fmt.Sprintf("Dispatched from %s to hub %d", hub.Name, *next)
		if explicit != nil {
			desc = fmt.Sprintf("Dispatched from %s to %s", hub.Name, explicit.Name)
		}
		return s.appendTimeline(ctx, tx, order, constant.TimelineInTransit, hub, desc)
	})
	if err != nil {
		return nil, err
	}

	if order.Status == constant.OrderStatusOutForDelivery {
		s.notify(ctx, constant.NotificationOutForDelivery, order, map[string]string{
			"otp":             code,
			"delivery_boy_id": strconv.FormatUint(*order.DeliveryBoyID, 10),
		})
	}
	return order, nil
}

// MarkReadyForCollection issues the collection OTP. The order's reservation at the collection
// hub is taken now if it holds none, otherwise re-validated. Calling it again on a
// READY_FOR_COLLECTION order re-issues the OTP.
func (s *orderAppImpl) MarkReadyForCollection(ctx context.Context, orderID uint64) (*model.Order, error) {
	var (
		code string
		hub  *model.Hub
	)
	order, err := s.update(ctx, "MarkReadyForCollection", orderID, func(tx *sqlx.Tx, order *model.Order) error {
		if order.DeliveryType != constant.DeliveryTypeHubCollection ||
			(order.Status != constant.OrderStatusApproved && order.Status != constant.OrderStatusReadyForCollection) {
			return errors.SetCustomError(constant.ErrInvalidOrderStatus)
		}
		if order.CollectionHubID == nil {
			logger.Integrity("[MarkReadyForCollection] collection order without hub", zap.Uint64("order_id", order.ID))
			return errors.SetCustomError(constant.ErrDataIntegrity)
		}
		hubID := *order.CollectionHubID
		hub = s.locate(ctx, hubID)

		lines := order.StockLines()
		if order.ReservedHubID == nil {
			shortfalls, err := s.inventoryApp.CheckShortfallsTx(ctx, tx, hubID, lines)
			if err != nil {
				return err
			}
			if len(shortfalls) > 0 {
				logger.Info("[MarkReadyForCollection] collection hub short",
					zap.Uint64("order_id", order.ID), zap.Uint64("hub_id", hubID), zap.Int("short_products", len(shortfalls)))
				return errors.SetCustomError(constant.ErrInsufficientStock)
			}
			if err := s.inventoryApp.ReserveItemsTx(ctx, tx, hubID, lines, s.ref(order)); err != nil {
				return err
			}
			order.ReservedHubID = &hubID
		} else if err := s.inventoryApp.VerifyReservedTx(ctx, tx, *order.ReservedHubID, lines); err != nil {
			return err
		}

		var err error
		if code, err = s.issueOtp("MarkReadyForCollection"); err != nil {
			return err
		}
		now := time.Now().UTC()
		order.CollectionOtp = &code
		order.CollectionOtpGeneratedAt = &now
		order.Status = constant.OrderStatusReadyForCollection
		return s.appendTimeline(ctx, tx, order, constant.TimelineReadyForCollection, hub, "Ready for collection at "+hub.Name)
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, constant.NotificationReadyForCollection, order, map[string]string{
		"otp":      code,
		"hub_name": hub.Name,
	})
	return order, nil
}

func (s *orderAppImpl) VerifyCollection(ctx context.Context, orderID uint64, code string) (*model.Order, error) {
	order, err := s.update(ctx, "VerifyCollection", orderID, func(tx *sqlx.Tx, order *model.Order) error {
		if order.Status != constant.OrderStatusReadyForCollection || order.CollectionOtp == nil || order.CollectionOtpGeneratedAt == nil {
			return errors.SetCustomError(constant.ErrInvalidOrderStatus)
		}
		now := time.Now().UTC()
		if err := s.checkOtp("VerifyCollection", order, *order.CollectionOtp, code, *order.CollectionOtpGeneratedAt, now,
			s.config.Fulfillment.CollectionOtpTTL); err != nil {
			return err
		}
		order.CollectedAt = &now
		return s.handOver(ctx, tx, order, now, "Collected by customer")
	})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, constant.NotificationOrderDelivered, order, nil)
	return order, nil
}

func (s *orderAppImpl) ConfirmDelivery(ctx context.Context, orderID uint64, code string) (*model.Order, error) {
	order, err := s.update(ctx, "ConfirmDelivery", orderID, func(tx *sqlx.Tx, order *model.Order) error {
		if order.Status != constant.OrderStatusOutForDelivery || order.DeliveryOtp == nil || order.DeliveryOtpGeneratedAt == nil {
			return errors.SetCustomError(constant.ErrInvalidOrderStatus)
		}
		now := time.Now().UTC()
		if err := s.checkOtp("ConfirmDelivery", order, *order.DeliveryOtp, code, *order.DeliveryOtpGeneratedAt, now,
			s.config.Fulfillment.DeliveryOtpTTL); err != nil {
			return err
		}
		return s.handOver(ctx, tx, order, now, "Delivered to customer")
	})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, constant.NotificationOrderDelivered, order, nil)
	return order, nil
}

// CancelOrder releases whatever the order holds and cancels its pending restock requests.
// Customers may only cancel their own orders.
func (s *orderAppImpl) CancelOrder(ctx context.Context, orderID uint64) (*model.Order, error) {
	order, err := s.update(ctx, "CancelOrder", orderID, func(tx *sqlx.Tx, order *model.Order) error {
		if err := authorize(ctx, order); err != nil {
			return err
		}
		if order.Status.IsTerminal() {
			return errors.SetCustomError(constant.ErrInvalidOrderStatus)
		}

		if order.ReservedHubID != nil {
			if err := s.inventoryApp.ReleaseItemsTx(ctx, tx, *order.ReservedHubID, order.StockLines(), s.ref(order)); err != nil {
				return err
			}
			order.ReservedHubID = nil
		}
		cancelled, err := s.restockApp.CancelForOrderTx(ctx, tx, order.ID)
		if err != nil {
			return err
		}
		if cancelled > 0 {
			logger.Info("[CancelOrder] restock requests cancelled", zap.Uint64("order_id", order.ID), zap.Int64("count", cancelled))
		}

		order.Status = constant.OrderStatusCanceled
		order.InTransitToHubID = nil
		return s.appendTimeline(ctx, tx, order, constant.TimelineCanceled, nil, "Order cancelled")
	})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, constant.NotificationOrderCanceled, order, nil)
	return order, nil
}

// ConfirmPayment is idempotent: an already paid order is returned unchanged.
func (s *orderAppImpl) ConfirmPayment(ctx context.Context, orderID uint64) (*model.Order, error) {
	return s.update(ctx, "ConfirmPayment", orderID, func(tx *sqlx.Tx, order *model.Order) error {
		if order.PaymentStatus == constant.PaymentStatusPaid {
			return errUnchanged
		}
		if order.Status == constant.OrderStatusCanceled {
			return errors.SetCustomError(constant.ErrInvalidOrderStatus)
		}
		order.PaymentStatus = constant.PaymentStatusPaid
		return s.appendTimeline(ctx, tx, order, constant.TimelinePaymentConfirmed, nil, "Payment confirmed")
	})
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID uint64) (*model.Order, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, s.fail("GetOrder", "get order", err)
	}
	if err := authorize(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// update locks the order, lets fn mutate it and persists it under the version check, retrying
// the whole unit on concurrent modification.
func (s *orderAppImpl) update(ctx context.Context, op string, orderID uint64, fn func(tx *sqlx.Tx, order *model.Order) error) (*model.Order, error) {
	var updated *model.Order
	err := retry.OnConflict(ctx, op, s.config.Fulfillment.MaxRetries, s.config.Fulfillment.RetryBackoff, func() error {
		tx, err := s.txRepo.BeginTx(ctx)
		if err != nil {
			logger.Error("["+op+"] begin tx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		committed := false
		defer func() {
			if !committed {
				_ = s.txRepo.RollbackTx(tx)
			}
		}()

		order, err := s.orderRepo.GetOrderTx(ctx, tx, orderID)
		if err != nil {
			return s.fail(op, "get order", err)
		}
		if err := fn(tx, order); err != nil {
			if stderrors.Is(err, errUnchanged) {
				updated = order
				return nil
			}
			return err
		}
		if err := s.orderRepo.UpdateOrderTx(ctx, tx, order); err != nil {
			return s.fail(op, "update order", err)
		}
		if err := s.txRepo.CommitTx(tx); err != nil {
			return s.fail(op, "commit tx", err)
		}
		committed = true
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// handOver consumes the reservation and closes the order as DELIVERED. COD orders are paid on
// hand-off.
func (s *orderAppImpl) handOver(ctx context.Context, tx *sqlx.Tx, order *model.Order, now time.Time, desc string) error {
	if order.ReservedHubID == nil {
		logger.Integrity("[HandOver] delivering order without reservation", zap.Uint64("order_id", order.ID))
		return errors.SetCustomError(constant.ErrDataIntegrity)
	}
	if err := s.inventoryApp.FulfillItemsTx(ctx, tx, *order.ReservedHubID, order.StockLines(), s.ref(order)); err != nil {
		return err
	}

	order.Status = constant.OrderStatusDelivered
	order.DeliveredAt = &now
	if order.PaymentMethod == constant.PaymentMethodCOD {
		order.PaymentStatus = constant.PaymentStatusPaid
	}

	var hub *model.Hub
	if order.DeliveryType == constant.DeliveryTypeHubCollection && order.CollectionHubID != nil {
		hub = s.locate(ctx, *order.CollectionHubID)
	}
	return s.appendTimeline(ctx, tx, order, constant.TimelineDelivered, hub, desc)
}

func (s *orderAppImpl) checkOtp(op string, order *model.Order, expected, supplied string, generatedAt, now time.Time, ttl time.Duration) error {
	if !otp.Match(expected, supplied) {
		logger.Info("["+op+"] otp mismatch", zap.Uint64("order_id", order.ID))
		return errors.SetCustomError(constant.ErrInvalidOtp)
	}
	if otp.Expired(generatedAt, now, ttl) {
		logger.Info("["+op+"] otp expired", zap.Uint64("order_id", order.ID), zap.Time("generated_at", generatedAt))
		return errors.SetCustomError(constant.ErrOtpExpired)
	}
	return nil
}

func (s *orderAppImpl) issueOtp(op string) (string, error) {
	code, err := otp.Generate()
	if err != nil {
		logger.Error("["+op+"] generate otp", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	return code, nil
}

// openRestocks requests exactly the missing quantity of every short product, correlated to the order.
func (s *orderAppImpl) openRestocks(ctx context.Context, tx *sqlx.Tx, order *model.Order, hubID uint64, shortfalls []model.Shortfall) error {
	for _, sf := range shortfalls {
		orderID := order.ID
		if _, err := s.restockApp.RequestRestockTx(ctx, tx, &model.CreateRestockRequest{
			HubID:     hubID,
			ProductID: sf.ProductID,
			Quantity:  sf.Missing,
			Reason:    "shortfall for order " + order.OrderNumber,
			OrderID:   &orderID,
		}); err != nil {
			return err
		}
	}
	logger.Info("[OpenRestocks] order waiting for restock",
		zap.Uint64("order_id", order.ID), zap.Uint64("hub_id", hubID), zap.Int("short_products", len(shortfalls)))
	return nil
}

// appendTimeline stamps entries with max(now, last update) so a timeline never goes backwards.
func (s *orderAppImpl) appendTimeline(ctx context.Context, tx *sqlx.Tx, order *model.Order, status constant.TimelineStatus, hub *model.Hub, desc string) error {
	ts := time.Now().UTC()
	if ts.Before(order.UpdatedAt) {
		ts = order.UpdatedAt
	}
	entry := &model.TimelineEntry{
		OrderID:     order.ID,
		Status:      status,
		Timestamp:   ts,
		Description: desc,
	}
	if hub != nil {
		hubID := hub.ID
		entry.HubID = &hubID
		entry.Location = hub.Name
	} else if order.District != nil {
		entry.Location = *order.District
	}
	if err := s.orderRepo.AppendTimelineTx(ctx, tx, entry); err != nil {
		return s.fail("AppendTimeline", "append entry", err)
	}
	order.Timeline = append(order.Timeline, *entry)
	return nil
}

// locate returns the hub for display purposes. Lookup failures fall back to a bare id.
func (s *orderAppImpl) locate(ctx context.Context, hubID uint64) *model.Hub {
	hub, err := s.hubApp.GetHub(ctx, hubID)
	if err != nil {
		logger.Warn("[Locate] hub lookup failed", zap.Uint64("hub_id", hubID), zap.Error(err))
		return &model.Hub{ID: hubID, Name: fmt.Sprintf("hub %d", hubID)}
	}
	return hub
}

func (s *orderAppImpl) priceItems(ctx context.Context, lines []model.StockLine) ([]model.OrderItem, decimal.Decimal, error) {
	ids := make([]uint64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, s.fail("PlaceOrder", "get products", err)
	}
	byID := make(map[uint64]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]model.OrderItem, 0, len(lines))
	total := decimal.Zero
	for _, l := range lines {
		p, ok := byID[l.ProductID]
		if !ok {
			logger.Info("[PlaceOrder] unknown product", zap.Uint64("product_id", l.ProductID))
			return nil, decimal.Zero, errors.SetCustomError(constant.ErrNotFound)
		}
		items = append(items, model.OrderItem{ProductID: p.ID, Name: p.Name, PriceAtOrder: p.Price, Quantity: l.Quantity})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(l.Quantity)))
	}
	return items, total, nil
}

func (s *orderAppImpl) ref(order *model.Order) model.MovementRef {
	return model.MovementRef{ReferenceType: referenceType, ReferenceID: order.ID, Notes: order.OrderNumber}
}

func (s *orderAppImpl) notify(ctx context.Context, kind constant.NotificationKind, order *model.Order, extra map[string]string) {
	payload := map[string]string{
		"order_id":     strconv.FormatUint(order.ID, 10),
		"order_number": order.OrderNumber,
		"status":       string(order.Status),
	}
	for k, v := range extra {
		payload[k] = v
	}
	s.notificationApp.Notify(ctx, kind, order.UserID, payload)
}

func (s *orderAppImpl) sequenceViolation(op string, order *model.Order, hubID uint64) error {
	fields := []zap.Field{zap.Uint64("order_id", order.ID), zap.Uint64("hub_id", hubID)}
	if order.LastConfirmedHubID != nil {
		fields = append(fields, zap.Uint64("last_confirmed_hub_id", *order.LastConfirmedHubID))
	}
	if order.InTransitToHubID != nil {
		fields = append(fields, zap.Uint64("in_transit_to_hub_id", *order.InTransitToHubID))
	}
	logger.Info("["+op+"] sequence violation", fields...)
	return errors.SetCustomError(constant.ErrSequenceViolation)
}

func (s *orderAppImpl) fail(op, msg string, err error) error {
	if ce := errors.AsCustom(err, constant.ErrInternal); ce.Type() != constant.ErrInternal {
		return ce
	}
	logger.Error("["+op+"] "+msg, zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}

// authorize restricts customers to their own orders. Staff and internal callers pass.
func authorize(ctx context.Context, order *model.Order) error {
	role, ok := ctxutil.GetUserRole(ctx)
	if !ok || role != constant.UserRoleCustomer {
		return nil
	}
	if userID, _ := ctxutil.GetUserID(ctx); userID != order.UserID {
		return errors.SetCustomError(constant.ErrForbidden)
	}
	return nil
}

// mergeItems folds duplicate products together, keeping first-seen order.
func mergeItems(items []model.OrderItemRequest) ([]model.StockLine, error) {
	if len(items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	lines := make([]model.StockLine, 0, len(items))
	pos := make(map[uint64]int, len(items))
	for _, it := range items {
		if it.ProductID == 0 || it.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if i, ok := pos[it.ProductID]; ok {
			lines[i].Quantity += it.Quantity
			continue
		}
		pos[it.ProductID] = len(lines)
		lines = append(lines, model.StockLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return lines, nil
}

func indexOf(route []uint64, hubID uint64) int {
	for i, id := range route {
		if id == hubID {
			return i
		}
	}
	return -1
}

func newOrderNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + id[:12]
}
