package constant

type OrderStatus string

const (
	OrderStatusPending            OrderStatus = "PENDING"
	OrderStatusApproved           OrderStatus = "APPROVED"
	OrderStatusOutForDelivery     OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusReadyForCollection OrderStatus = "READY_FOR_COLLECTION"
	OrderStatusDelivered          OrderStatus = "DELIVERED"
	OrderStatusCanceled           OrderStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition may leave the status.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCanceled
}

type DeliveryType string

const (
	DeliveryTypeHome          DeliveryType = "HOME_DELIVERY"
	DeliveryTypeHubCollection DeliveryType = "HUB_COLLECTION"
)

type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// TimelineStatus labels an entry of the order tracking timeline.
type TimelineStatus string

const (
	TimelinePlaced             TimelineStatus = "PLACED"
	TimelineApproved           TimelineStatus = "APPROVED"
	TimelineArrivedAtHub       TimelineStatus = "ARRIVED_AT_HUB"
	TimelineInTransit          TimelineStatus = "IN_TRANSIT"
	TimelineOutForDelivery     TimelineStatus = "OUT_FOR_DELIVERY"
	TimelineReadyForCollection TimelineStatus = "READY_FOR_COLLECTION"
	TimelineDelivered          TimelineStatus = "DELIVERED"
	TimelineCanceled           TimelineStatus = "CANCELLED"
	TimelinePaymentConfirmed   TimelineStatus = "PAYMENT_CONFIRMED"
)
