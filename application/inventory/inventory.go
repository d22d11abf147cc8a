package inventory

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/hub-fulfillment/cmd/config"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	inventoryrepo "github.com/muhammadheryan/hub-fulfillment/repository/inventory"
	txrepo "github.com/muhammadheryan/hub-fulfillment/repository/tx"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/muhammadheryan/hub-fulfillment/utils/logger"
	"github.com/muhammadheryan/hub-fulfillment/utils/retry"
	"go.uber.org/zap"
)

// InventoryApp is the per-hub stock ledger. Single operations own their transaction and retry
// on concurrent modification; the *Tx variants run inside the caller's transaction.
type InventoryApp interface {
	GetAvailable(ctx context.Context, hubID, productID uint64) (int64, error)
	GetInventory(ctx context.Context, hubID, productID uint64) (*model.InventoryResponse, error)
	Reserve(ctx context.Context, hubID, productID uint64, qty int64, ref model.MovementRef) error
	Release(ctx context.Context, hubID, productID uint64, qty int64, ref model.MovementRef) error
	Fulfill(ctx context.Context, hubID, productID uint64, qty int64, ref model.MovementRef) error
	Restock(ctx context.Context, hubID, productID uint64, qty int64, ref model.MovementRef) error

	CheckShortfallsTx(ctx context.Context, tx *sqlx.Tx, hubID uint64, lines []model.StockLine) ([]model.Shortfall, error)
	VerifyReservedTx(ctx context.Context, tx *sqlx.Tx, hubID uint64, lines []model.StockLine) error
	ReserveItemsTx(ctx context.Context, tx *sqlx.Tx, hubID uint64, lines []model.StockLine, ref model.MovementRef) error
	ReleaseItemsTx(ctx context.Context, tx *sqlx.Tx, hubID uint64, lines []model.StockLine, ref model.MovementRef) error
	FulfillItemsTx(ctx context.Context, tx *sqlx.Tx, hubID uint64, lines []model.StockLine, ref model.MovementRef) error
	TransferTx(ctx context.Context, tx *sqlx.Tx, fromHubID, toHubID, productID uint64, qty int64, ref model.MovementRef) error
}

type inventoryAppImpl struct {
	config        *config.Config
	txRepo        txrepo.TxRepository
	inventoryRepo inventoryrepo.InventoryRepository
}

func NewInventoryApp(config *config.Config, txRepo txrepo.TxRepository, inventoryRepo inventoryrepo.InventoryRepository) InventoryApp {
	return &inventoryAppImpl{config: config, txRepo: txRepo, inventoryRepo: inventoryRepo}
}

func (s *inventoryAppImpl) GetAvailable(ctx context.Context, hubID, productID uint64) (int64, error) {
	rec, err := s.inventoryRepo.Get(ctx, hubID, productID)
	if err != nil {
		logger.Error("[GetAvailable] get record", zap.Uint64("hub_id", hubID), zap.Uint64("product_id", productID), zap.Error(err))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if rec == nil {
		return 0, nil
	}
	if err := checkIntegrity(rec); err != nil {
		return 0, err
	}
	return rec.Available(), nil
}

func (s *inventoryAppImpl) GetInventory(ctx context.Context, hubID, productID uint64) (*model.InventoryResponse, error) {
	rec, err := s.inventoryRepo.Get(ctx, hubID, productID)
	if err != nil {
		logger.Error("[GetInventory] get record", zap.Uint64("hub_id", hubID), zap.Uint64("product_id", productID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if rec == nil {
		return &model.InventoryResponse{HubID: hubID, ProductID: productID}, nil
	}
	if err := checkIntegrity(rec); err != nil {
		return nil, err
	}
	return &model.InventoryResponse{
		HubID:            rec.HubID,
		ProductID:        rec.ProductID,
		TotalQuantity:    rec.TotalQuantity,
		ReservedQuantity: rec.ReservedQuantity,
		AvailableQty:     rec.Available(),
		LastRestocked:    rec.LastRestocked,
	}, nil
}

func (s *inventoryAppImpl) Reserve(ctx context.Context, hubID, productID uint64, qty int64, ref model.MovementRef) error {
	return s.mutate(ctx, "Reserve", hubID, productID, qty, func(rec *model.InventoryRecord) (constant.MovementType, error) {
		return constant.MovementReserve, applyReserve(rec, qty)
	}, ref)
}

// Release commits the clamp to zero and still reports ErrInvalidRelease when qty exceeded the reservation.
func (s *inventoryAppImpl) Release(ctx context.Context, hubID, productID uint64, qty int64, ref model.MovementRef) error {
	var clamped bool
	err := s.mutate(ctx, "Release", hubID, productID, qty, func(rec *model.InventoryRecord) (constant.MovementType, error) {
		clamped = applyRelease(rec, qty)
		return constant.MovementRelease, nil
	}, ref)
	if err != nil {
		return err
	}
	if clamped {
		logger.Warn("[Release] release exceeded reservation, clamped to zero", zap.Uint64("hub_id", hubID), zap.Uint64("product_id", productID), zap.Int64("qty", qty))
		return errors.SetCustomError(constant.ErrInvalidRelease)
	}
	return nil
}

func (s *inventoryAppImpl) Fulfill(ctx context.Context, hubID, productID uint64, qty int64, ref model.MovementRef) error {
	return s.mutate(ctx, "Fulfill", hubID, productID, qty, func(rec *model.InventoryRecord) (constant.MovementType, error) {
		return constant.MovementFulfill, applyFulfill(rec, qty)
	}, ref)
}

func (s *inventoryAppImpl) Restock(ctx context.Context, hubID, productID uint64, qty int64, ref model.MovementRef) error {
	return s.mutate(ctx, "Restock", hubID, productID, qty, func(rec *model.InventoryRecord) (constant.MovementType, error) {
		applyRestock(rec, qty, time.Now().UTC())
		return constant.MovementRestock, nil
	}, ref)
}

// mutate runs one locked read-modify-write of a single record in its own transaction.
func (s *inventoryAppImpl) mutate(ctx context.Context, op string, hubID, productID uint64, qty int64,
	fn func(rec *model.InventoryRecord) (constant.MovementType, error), ref model.MovementRef) error {
	if qty <= 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	return retry.OnConflict(ctx, op, s.config.Fulfillment.MaxRetries, s.config.Fulfillment.RetryBackoff, func() error {
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

		rec, err := s.inventoryRepo.EnsureTx(ctx, tx, hubID, productID)
		if err != nil {
			return s.internal(op, "ensure record", err)
		}
		if err := checkIntegrity(rec); err != nil {
			return err
		}

		before := *rec
		kind, err := fn(rec)
		if err != nil {
			return err
		}
		if err := s.persist(ctx, tx, before, rec, kind, qty, ref); err != nil {
			return s.internal(op, "persist", err)
		}

		if err := s.txRepo.CommitTx(tx); err != nil {
			return s.internal(op, "commit tx", err)
		}
		committed = true
		return nil
	})
}

func (s *inventoryAppImpl) CheckShortfallsTx(ctx context.Context, tx *sqlx.Tx, hubID uint64, lines []model.StockLine) ([]model.Shortfall, error) {
	lines, err := normalizeLines(lines)
	if err != nil {
		return nil, err
	}

	shortfalls := make([]model.Shortfall, 0)
	for _, l := range lines {
		rec, err := s.inventoryRepo.GetTx(ctx, tx, hubID, l.ProductID)
		if err != nil {
			return nil, s.internal("CheckShortfallsTx", "get record", err)
		}
		var available int64
		if rec != nil {
			if err := checkIntegrity(rec); err != nil {
				return nil, err
			}
			available = rec.Available()
		}
		if available < l.Quantity {
			shortfalls = append(shortfalls, model.Shortfall{
				ProductID: l.ProductID,
				Requested: l.Quantity,
				Available: available,
				Missing:   l.Quantity - available,
			})
		}
	}
	return shortfalls, nil
}

// VerifyReservedTx checks that the hub still holds at least the given reservations. A missing
// reservation for an order that believes it holds one is a data-integrity fault.
func (s *inventoryAppImpl) VerifyReservedTx(ctx context.Context, tx *sqlx.Tx, hubID uint64, lines []model.StockLine) error {
	lines, err := normalizeLines(lines)
	if err != nil {
		return err
	}

	for _, l := range lines {
		rec, err := s.inventoryRepo.GetTx(ctx, tx, hubID, l.ProductID)
		if err != nil {
			return s.internal("VerifyReservedTx", "get record", err)
		}
		var reserved int64
		if rec != nil {
			if err := checkIntegrity(rec); err != nil {
				return err
			}
			reserved = rec.ReservedQuantity
		}
		if reserved < l.Quantity {
			logger.Integrity("[VerifyReservedTx] reservation below order quantity",
				zap.Uint64("hub_id", hubID), zap.Uint64("product_id", l.ProductID),
				zap.Int64("reserved", reserved), zap.Int64("qty", l.Quantity))
			return errors.SetCustomError(constant.ErrDataIntegrity)
		}
	}
	return nil
}

// ReserveItemsTx reserves every line or returns ErrInsufficientStock; the caller rolls back on error.
func (s *inventoryAppImpl) ReserveItemsTx(ctx context.Context, tx *sqlx.Tx, hubID uint64, lines []model.StockLine, ref model.MovementRef) error {
	return s.eachLocked(ctx, tx, "ReserveItemsTx", hubID, lines, func(rec *model.InventoryRecord, qty int64) (constant.MovementType, error) {
		return constant.MovementReserve, applyReserve(rec, qty)
	}, ref)
}

// ReleaseItemsTx clamps at zero per line and keeps going.
func (s *inventoryAppImpl) ReleaseItemsTx(ctx context.Context, tx *sqlx.Tx, hubID uint64, lines []model.StockLine, ref model.MovementRef) error {
	return s.eachLocked(ctx, tx, "ReleaseItemsTx", hubID, lines, func(rec *model.InventoryRecord, qty int64) (constant.MovementType, error) {
		if applyRelease(rec, qty) {
			logger.Warn("[ReleaseItemsTx] release exceeded reservation, clamped to zero",
				zap.Uint64("hub_id", hubID), zap.Uint64("product_id", rec.ProductID), zap.Int64("qty", qty))
		}
		return constant.MovementRelease, nil
	}, ref)
}

func (s *inventoryAppImpl) FulfillItemsTx(ctx context.Context, tx *sqlx.Tx, hubID uint64, lines []model.StockLine, ref model.MovementRef) error {
	return s.eachLocked(ctx, tx, "FulfillItemsTx", hubID, lines, func(rec *model.InventoryRecord, qty int64) (constant.MovementType, error) {
		return constant.MovementFulfill, applyFulfill(rec, qty)
	}, ref)
}

func (s *inventoryAppImpl) eachLocked(ctx context.Context, tx *sqlx.Tx, op string, hubID uint64, lines []model.StockLine,
	fn func(rec *model.InventoryRecord, qty int64) (constant.MovementType, error), ref model.MovementRef) error {
	lines, err := normalizeLines(lines)
	if err != nil {
		return err
	}

	for _, l := range lines {
		rec, err := s.inventoryRepo.EnsureTx(ctx, tx, hubID, l.ProductID)
		if err != nil {
			return s.internal(op, "ensure record", err)
		}
		if err := checkIntegrity(rec); err != nil {
			return err
		}
		before := *rec
		kind, err := fn(rec, l.Quantity)
		if err != nil {
			logger.Info("["+op+"] rejected", zap.Uint64("hub_id", hubID), zap.Uint64("product_id", l.ProductID),
				zap.Int64("qty", l.Quantity), zap.Int64("available", before.Available()), zap.Error(err))
			return err
		}
		if err := s.persist(ctx, tx, before, rec, kind, l.Quantity, ref); err != nil {
			return s.internal(op, "persist", err)
		}
	}
	return nil
}

// TransferTx moves available stock between hubs. Rows are locked in hub id order.
func (s *inventoryAppImpl) TransferTx(ctx context.Context, tx *sqlx.Tx, fromHubID, toHubID, productID uint64, qty int64, ref model.MovementRef) error {
	if qty <= 0 || fromHubID == toHubID {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	first, second := fromHubID, toHubID
	if second < first {
		first, second = second, first
	}
	locked := make(map[uint64]*model.InventoryRecord, 2)
	for _, hubID := range []uint64{first, second} {
		rec, err := s.inventoryRepo.EnsureTx(ctx, tx, hubID, productID)
		if err != nil {
			return s.internal("TransferTx", "ensure record", err)
		}
		if err := checkIntegrity(rec); err != nil {
			return err
		}
		locked[hubID] = rec
	}

	src, dst := locked[fromHubID], locked[toHubID]
	srcBefore, dstBefore := *src, *dst
	if err := applyTransferOut(src, qty); err != nil {
		return err
	}
	applyRestock(dst, qty, time.Now().UTC())

	if err := s.persist(ctx, tx, srcBefore, src, constant.MovementTransferOut, qty, ref); err != nil {
		return s.internal("TransferTx", "persist source", err)
	}
	if err := s.persist(ctx, tx, dstBefore, dst, constant.MovementTransferIn, qty, ref); err != nil {
		return s.internal("TransferTx", "persist destination", err)
	}
	return nil
}

func (s *inventoryAppImpl) persist(ctx context.Context, tx *sqlx.Tx, before model.InventoryRecord, rec *model.InventoryRecord,
	kind constant.MovementType, qty int64, ref model.MovementRef) error {
	if err := s.inventoryRepo.UpdateTx(ctx, tx, rec); err != nil {
		return err
	}
	return s.inventoryRepo.LogMovementTx(ctx, tx, movement(before, rec, kind, qty, ref, time.Now().UTC()))
}

// internal keeps CustomErrors (concurrency, integrity) intact and logs anything else.
func (s *inventoryAppImpl) internal(op, msg string, err error) error {
	var ce errors.CustomError
	if stderrors.As(err, &ce) {
		return ce
	}
	logger.Error("["+op+"] "+msg, zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}
