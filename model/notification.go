package model

import (
	"time"

	"github.com/muhammadheryan/hub-fulfillment/constant"
)

type Notification struct {
	EventID     string                    `json:"event_id"`
	Kind        constant.NotificationKind `json:"kind"`
	RecipientID uint64                    `json:"recipient_id"`
	Payload     map[string]string         `json:"payload"`
	CreatedAt   time.Time                 `json:"created_at"`
}

type RestockFulfilledEvent struct {
	EventID   string    `json:"event_id"`
	RequestID uint64    `json:"request_id"`
	HubID     uint64    `json:"hub_id"`
	ProductID uint64    `json:"product_id"`
	OrderID   *uint64   `json:"order_id,omitempty"`
	Quantity  int64     `json:"quantity"`
	At        time.Time `json:"at"`
}
