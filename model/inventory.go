package model

import (
	"time"

	"github.com/muhammadheryan/hub-fulfillment/constant"
)

// InventoryRecord is the stock of one product at one hub.
type InventoryRecord struct {
	ID               uint64     `db:"id" json:"id"`
	HubID            uint64     `db:"hub_id" json:"hub_id"`
	ProductID        uint64     `db:"product_id" json:"product_id"`
	TotalQuantity    int64      `db:"total_quantity" json:"total_quantity"`
	ReservedQuantity int64      `db:"reserved_quantity" json:"reserved_quantity"`
	LastRestocked    *time.Time `db:"last_restocked" json:"last_restocked,omitempty"`
	Version          uint64     `db:"version" json:"-"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

func (r *InventoryRecord) Available() int64 {
	return r.TotalQuantity - r.ReservedQuantity
}

// StockLine is a product quantity handled as part of a multi-item ledger operation.
type StockLine struct {
	ProductID uint64
	Quantity  int64
}

// Shortfall is how much of a product a hub is missing to cover a request.
type Shortfall struct {
	ProductID uint64
	Requested int64
	Available int64
	Missing   int64
}

// MovementRef ties a ledger movement to the business document that caused it.
type MovementRef struct {
	ReferenceType string
	ReferenceID   uint64
	ActorID       *uint64
	Notes         string
}

type InventoryMovement struct {
	ID             uint64                `db:"id"`
	HubID          uint64                `db:"hub_id"`
	ProductID      uint64                `db:"product_id"`
	MovementType   constant.MovementType `db:"movement_type"`
	Quantity       int64                 `db:"quantity"`
	TotalBefore    int64                 `db:"total_before"`
	TotalAfter     int64                 `db:"total_after"`
	ReservedBefore int64                 `db:"reserved_before"`
	ReservedAfter  int64                 `db:"reserved_after"`
	ReferenceType  *string               `db:"reference_type"`
	ReferenceID    *uint64               `db:"reference_id"`
	CreatedBy      *uint64               `db:"created_by"`
	Notes          string                `db:"notes"`
	CreatedAt      time.Time             `db:"created_at"`
}

type StockAdjustRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

type InventoryResponse struct {
	HubID            uint64     `json:"hub_id"`
	ProductID        uint64     `json:"product_id"`
	TotalQuantity    int64      `json:"total_quantity"`
	ReservedQuantity int64      `json:"reserved_quantity"`
	AvailableQty     int64      `json:"available_quantity"`
	LastRestocked    *time.Time `json:"last_restocked,omitempty"`
}
