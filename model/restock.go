package model

import (
	"time"

	"github.com/muhammadheryan/hub-fulfillment/constant"
)

type RestockRequest struct {
	ID                uint64                   `db:"id" json:"id"`
	RequestingHubID   uint64                   `db:"requesting_hub_id" json:"requesting_hub_id"`
	ProductID         uint64                   `db:"product_id" json:"product_id"`
	RequestedQuantity int64                    `db:"requested_quantity" json:"requested_quantity"`
	RequestedBy       *uint64                  `db:"requested_by" json:"requested_by,omitempty"`
	OrderID           *uint64                  `db:"order_id" json:"order_id,omitempty"`
	Status            constant.RestockStatus   `db:"status" json:"status"`
	Priority          constant.RestockPriority `db:"priority" json:"priority"`
	Reason            string                   `db:"reason" json:"reason"`
	ApprovedBy        *uint64                  `db:"approved_by" json:"approved_by,omitempty"`
	ApprovedAt        *time.Time               `db:"approved_at" json:"approved_at,omitempty"`
	FulfilledAt       *time.Time               `db:"fulfilled_at" json:"fulfilled_at,omitempty"`
	RejectedBy        *uint64                  `db:"rejected_by" json:"rejected_by,omitempty"`
	RejectedReason    *string                  `db:"rejected_reason" json:"rejected_reason,omitempty"`
	CreatedAt         time.Time                `db:"created_at" json:"created_at"`
	UpdatedAt         *time.Time               `db:"updated_at" json:"updated_at,omitempty"`
}

type CreateRestockRequest struct {
	HubID       uint64                   `json:"hub_id" validate:"required"`
	ProductID   uint64                   `json:"product_id" validate:"required"`
	Quantity    int64                    `json:"quantity" validate:"required,gte=1"`
	Priority    constant.RestockPriority `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Reason      string                   `json:"reason"`
	RequestedBy *uint64                  `json:"-"`
	OrderID     *uint64                  `json:"-"`
}

type RejectRestockRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type RestockFilter struct {
	Status  constant.RestockStatus
	HubID   uint64
	OrderID uint64
	Limit   int
}

// RestockProgress counts the restock requests correlated to one order.
type RestockProgress struct {
	Total     int `db:"total"`
	Fulfilled int `db:"fulfilled"`
}
