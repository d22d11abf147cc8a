package constant

type RestockStatus string

// APPROVED and IN_TRANSIT are kept for stored data and reporting; approval transfers the
// stock and lands on FULFILLED in the same transaction.
const (
	RestockStatusPending   RestockStatus = "PENDING"
	RestockStatusApproved  RestockStatus = "APPROVED"
	RestockStatusInTransit RestockStatus = "IN_TRANSIT"
	RestockStatusFulfilled RestockStatus = "FULFILLED"
	RestockStatusRejected  RestockStatus = "REJECTED"
	RestockStatusCanceled  RestockStatus = "CANCELLED"
)

func (s RestockStatus) IsTerminal() bool {
	return s == RestockStatusFulfilled || s == RestockStatusRejected || s == RestockStatusCanceled
}

type RestockPriority string

const (
	RestockPriorityLow    RestockPriority = "LOW"
	RestockPriorityMedium RestockPriority = "MEDIUM"
	RestockPriorityHigh   RestockPriority = "HIGH"
	RestockPriorityUrgent RestockPriority = "URGENT"
)
