package inventory

import (
	"sort"
	"time"

	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/muhammadheryan/hub-fulfillment/utils/logger"
	"go.uber.org/zap"
)

// Pure record mutations. Callers hold the row lock and persist the result.

func checkIntegrity(rec *model.InventoryRecord) error {
	if rec.ReservedQuantity < 0 || rec.ReservedQuantity > rec.TotalQuantity || rec.TotalQuantity < 0 {
		logger.Integrity("inventory record out of bounds",
			zap.Uint64("hub_id", rec.HubID),
			zap.Uint64("product_id", rec.ProductID),
			zap.Int64("total", rec.TotalQuantity),
			zap.Int64("reserved", rec.ReservedQuantity),
		)
		return errors.SetCustomError(constant.ErrDataIntegrity)
	}
	return nil
}

func applyReserve(rec *model.InventoryRecord, qty int64) error {
	if qty > rec.Available() {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}
	rec.ReservedQuantity += qty
	return nil
}

// applyRelease never drives reserved below zero. It reports whether it had to clamp.
func applyRelease(rec *model.InventoryRecord, qty int64) bool {
	if qty > rec.ReservedQuantity {
		rec.ReservedQuantity = 0
		return true
	}
	rec.ReservedQuantity -= qty
	return false
}

func applyFulfill(rec *model.InventoryRecord, qty int64) error {
	if qty > rec.ReservedQuantity {
		return errors.SetCustomError(constant.ErrInsufficientReserved)
	}
	rec.ReservedQuantity -= qty
	rec.TotalQuantity -= qty
	return nil
}

func applyRestock(rec *model.InventoryRecord, qty int64, now time.Time) {
	rec.TotalQuantity += qty
	rec.LastRestocked = &now
}

func applyTransferOut(rec *model.InventoryRecord, qty int64) error {
	if qty > rec.Available() {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}
	rec.TotalQuantity -= qty
	return nil
}

// normalizeLines merges duplicate products and sorts by product id, which is the lock order.
func normalizeLines(lines []model.StockLine) ([]model.StockLine, error) {
	merged := make(map[uint64]int64, len(lines))
	for _, l := range lines {
		if l.ProductID == 0 || l.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		merged[l.ProductID] += l.Quantity
	}
	out := make([]model.StockLine, 0, len(merged))
	for id, qty := range merged {
		out = append(out, model.StockLine{ProductID: id, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func movement(before model.InventoryRecord, after *model.InventoryRecord, kind constant.MovementType, qty int64, ref model.MovementRef, now time.Time) *model.InventoryMovement {
	m := &model.InventoryMovement{
		HubID:          after.HubID,
		ProductID:      after.ProductID,
		MovementType:   kind,
		Quantity:       qty,
		TotalBefore:    before.TotalQuantity,
		TotalAfter:     after.TotalQuantity,
		ReservedBefore: before.ReservedQuantity,
		ReservedAfter:  after.ReservedQuantity,
		CreatedBy:      ref.ActorID,
		Notes:          ref.Notes,
		CreatedAt:      now,
	}
	if ref.ReferenceType != "" {
		refType := ref.ReferenceType
		m.ReferenceType = &refType
	}
	if ref.ReferenceID != 0 {
		refID := ref.ReferenceID
		m.ReferenceID = &refID
	}
	return m
}
