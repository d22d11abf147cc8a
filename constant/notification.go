package constant

type NotificationKind string

const (
	NotificationOrderPlaced        NotificationKind = "ORDER_PLACED"
	NotificationOrderApproved      NotificationKind = "ORDER_APPROVED"
	NotificationOutForDelivery     NotificationKind = "OUT_FOR_DELIVERY"
	NotificationReadyForCollection NotificationKind = "READY_FOR_COLLECTION"
	NotificationOrderDelivered     NotificationKind = "ORDER_DELIVERED"
	NotificationOrderCanceled      NotificationKind = "ORDER_CANCELLED"
)
