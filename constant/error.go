package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrForbidden
	ErrInsufficientStock
	ErrInsufficientReserved
	ErrInvalidRelease
	ErrInsufficientCentralStock
	ErrNotPending
	ErrSequenceViolation
	ErrNextHubUndetermined
	ErrHubNotInRoute
	ErrInvalidOtp
	ErrOtpExpired
	ErrOrderNotFound
	ErrRestockNotFound
	ErrHubNotFound
	ErrInvalidOrderStatus
	ErrHubHasReservedStock
	ErrConcurrentModification
	ErrDataIntegrity
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                  "success",
	ErrInternal:                 "error internal",
	ErrNotFound:                 "data not found",
	ErrInvalidRequest:           "invalid request",
	ErrUnauthorize:              "unauthorize request",
	ErrCredentialExists:         "email or phone already exists",
	ErrInvalidPassword:          "password invalid",
	ErrForbidden:                "forbidden",
	ErrInsufficientStock:        "insufficient stock",
	ErrInsufficientReserved:     "insufficient reserved stock",
	ErrInvalidRelease:           "release exceeds reserved stock",
	ErrInsufficientCentralStock: "insufficient stock at central hub",
	ErrNotPending:               "restock request is not pending",
	ErrSequenceViolation:        "hub scanned out of route sequence",
	ErrNextHubUndetermined:      "next hub cannot be determined",
	ErrHubNotInRoute:            "hub is not part of the order route",
	ErrInvalidOtp:               "invalid otp",
	ErrOtpExpired:               "otp expired",
	ErrOrderNotFound:            "order not found",
	ErrRestockNotFound:          "restock request not found",
	ErrHubNotFound:              "hub not found",
	ErrInvalidOrderStatus:       "invalid order status",
	ErrHubHasReservedStock:      "hub still holds reserved stock",
	ErrConcurrentModification:   "record modified concurrently, retry",
	ErrDataIntegrity:            "data integrity violation",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                  http.StatusOK,
	ErrInternal:                 http.StatusInternalServerError,
	ErrNotFound:                 http.StatusBadRequest,
	ErrInvalidRequest:           http.StatusBadRequest,
	ErrUnauthorize:              http.StatusUnauthorized,
	ErrCredentialExists:         http.StatusBadRequest,
	ErrInvalidPassword:          http.StatusBadRequest,
	ErrForbidden:                http.StatusForbidden,
	ErrInsufficientStock:        http.StatusUnprocessableEntity,
	ErrInsufficientReserved:     http.StatusUnprocessableEntity,
	ErrInvalidRelease:           http.StatusUnprocessableEntity,
	ErrInsufficientCentralStock: http.StatusUnprocessableEntity,
	ErrNotPending:               http.StatusConflict,
	ErrSequenceViolation:        http.StatusConflict,
	ErrNextHubUndetermined:      http.StatusUnprocessableEntity,
	ErrHubNotInRoute:            http.StatusBadRequest,
	ErrInvalidOtp:               http.StatusBadRequest,
	ErrOtpExpired:               http.StatusGone,
	ErrOrderNotFound:            http.StatusNotFound,
	ErrRestockNotFound:          http.StatusNotFound,
	ErrHubNotFound:              http.StatusNotFound,
	ErrInvalidOrderStatus:       http.StatusConflict,
	ErrHubHasReservedStock:      http.StatusConflict,
	ErrConcurrentModification:   http.StatusConflict,
	ErrDataIntegrity:            http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                  "0000",
	ErrInternal:                 "0001",
	ErrNotFound:                 "0002",
	ErrInvalidRequest:           "0003",
	ErrUnauthorize:              "0004",
	ErrCredentialExists:         "0005",
	ErrInvalidPassword:          "0006",
	ErrForbidden:                "0007",
	ErrInsufficientStock:        "1001",
	ErrInsufficientReserved:     "1002",
	ErrInvalidRelease:           "1003",
	ErrInsufficientCentralStock: "1004",
	ErrNotPending:               "1101",
	ErrSequenceViolation:        "1201",
	ErrNextHubUndetermined:      "1202",
	ErrHubNotInRoute:            "1203",
	ErrInvalidOtp:               "1301",
	ErrOtpExpired:               "1302",
	ErrOrderNotFound:            "1401",
	ErrRestockNotFound:          "1402",
	ErrHubNotFound:              "1403",
	ErrInvalidOrderStatus:       "1404",
	ErrHubHasReservedStock:      "1405",
	ErrConcurrentModification:   "1901",
	ErrDataIntegrity:            "1999",
}
