package model

import (
	"time"

	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/shopspring/decimal"
)

type OrderItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

type Address struct {
	Line      string   `json:"line" validate:"required"`
	District  string   `json:"district" validate:"required"`
	Pincode   string   `json:"pincode" validate:"required,pincode"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// DeliveryTarget is either a home address or a collection hub.
type DeliveryTarget struct {
	DeliveryType    constant.DeliveryType `json:"delivery_type" validate:"required,oneof=HOME_DELIVERY HUB_COLLECTION"`
	Address         *Address              `json:"address" validate:"required_if=DeliveryType HOME_DELIVERY"`
	CollectionHubID uint64                `json:"collection_hub_id" validate:"required_if=DeliveryType HUB_COLLECTION"`
	OriginHubID     uint64                `json:"origin_hub_id"`
}

type OrderRequest struct {
	UserID        uint64
	Items         []OrderItemRequest     `json:"items" validate:"required,min=1,dive,required"`
	Target        DeliveryTarget         `json:"target"`
	PaymentMethod constant.PaymentMethod `json:"payment_method" validate:"required,oneof=COD ONLINE"`
}

type DispatchRequest struct {
	NextHubID     *uint64 `json:"next_hub_id"`
	DeliveryBoyID *uint64 `json:"delivery_boy_id"`
}

type OtpRequest struct {
	Otp string `json:"otp" validate:"required,len=6,numeric"`
}

type OrderItem struct {
	ID           uint64          `db:"id" json:"-"`
	OrderID      uint64          `db:"order_id" json:"-"`
	ProductID    uint64          `db:"product_id" json:"product_id"`
	Name         string          `db:"name" json:"name"`
	PriceAtOrder decimal.Decimal `db:"price_at_order" json:"price_at_order"`
	Quantity     int64           `db:"quantity" json:"quantity"`
}

type TimelineEntry struct {
	ID          uint64                  `db:"id" json:"-"`
	OrderID     uint64                  `db:"order_id" json:"-"`
	Status      constant.TimelineStatus `db:"status" json:"status"`
	Location    string                  `db:"location" json:"location"`
	HubID       *uint64                 `db:"hub_id" json:"hub_id,omitempty"`
	Timestamp   time.Time               `db:"created_at" json:"timestamp"`
	Description string                  `db:"description" json:"description"`
}

// Order is the fulfilment aggregate. Items, Route and Timeline are stored in child tables.
type Order struct {
	ID                       uint64                 `db:"id" json:"id"`
	OrderNumber              string                 `db:"order_number" json:"order_number"`
	UserID                   uint64                 `db:"user_id" json:"user_id"`
	TotalAmount              decimal.Decimal        `db:"total_amount" json:"total_amount"`
	Status                   constant.OrderStatus   `db:"status" json:"status"`
	DeliveryType             constant.DeliveryType  `db:"delivery_type" json:"delivery_type"`
	PaymentMethod            constant.PaymentMethod `db:"payment_method" json:"payment_method"`
	PaymentStatus            constant.PaymentStatus `db:"payment_status" json:"payment_status"`
	AddressLine              *string                `db:"address_line" json:"address_line,omitempty"`
	District                 *string                `db:"district" json:"district,omitempty"`
	Pincode                  *string                `db:"pincode" json:"pincode,omitempty"`
	CollectionHubID          *uint64                `db:"collection_hub_id" json:"collection_hub_id,omitempty"`
	LastConfirmedHubID       *uint64                `db:"last_confirmed_hub_id" json:"last_confirmed_hub_id,omitempty"`
	InTransitToHubID         *uint64                `db:"in_transit_to_hub_id" json:"in_transit_to_hub_id,omitempty"`
	ReservedHubID            *uint64                `db:"reserved_hub_id" json:"-"`
	DeliveryBoyID            *uint64                `db:"delivery_boy_id" json:"delivery_boy_id,omitempty"`
	DeliveryOtp              *string                `db:"delivery_otp" json:"-"`
	DeliveryOtpGeneratedAt   *time.Time             `db:"delivery_otp_generated_at" json:"-"`
	CollectionOtp            *string                `db:"collection_otp" json:"-"`
	CollectionOtpGeneratedAt *time.Time             `db:"collection_otp_generated_at" json:"-"`
	CollectedAt              *time.Time             `db:"collected_at" json:"collected_at,omitempty"`
	DeliveredAt              *time.Time             `db:"delivered_at" json:"delivered_at,omitempty"`
	Version                  uint64                 `db:"version" json:"-"`
	CreatedAt                time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt                time.Time              `db:"updated_at" json:"updated_at"`

	Items    []OrderItem     `db:"-" json:"items"`
	Route    []uint64        `db:"-" json:"route,omitempty"`
	Timeline []TimelineEntry `db:"-" json:"tracking_timeline"`
}

// StockLines returns the order items as ledger lines.
func (o *Order) StockLines() []StockLine {
	lines := make([]StockLine, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, StockLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return lines
}

// FulfillmentHubID is the hub whose stock backs the order: the collection hub or the first
// hub of the delivery route.
func (o *Order) FulfillmentHubID() (uint64, bool) {
	if o.DeliveryType == constant.DeliveryTypeHubCollection {
		if o.CollectionHubID == nil {
			return 0, false
		}
		return *o.CollectionHubID, true
	}
	if len(o.Route) == 0 {
		return 0, false
	}
	return o.Route[0], true
}

type OrderFilter struct {
	Status  constant.OrderStatus
	AfterID uint64
	Limit   int
}

type SweepResponse struct {
	Approved int `json:"approved"`
}
