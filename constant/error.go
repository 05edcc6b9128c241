package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrCredentialExists
	ErrInvalidPassword
	ErrQuoteLocked
	ErrQtyEditLocked
	ErrInvalidTransition
	ErrShortageUnresolved
	ErrMissingProduct
	ErrInsufficientStock
	ErrAvailabilityNotChecked
	ErrQuoteNotConfirmed
	ErrInvalidOrderStatus
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "error internal",
	ErrNotFound:               "data not found",
	ErrInvalidRequest:         "invalid request",
	ErrUnauthorize:            "unauthorize request",
	ErrForbidden:              "forbidden request",
	ErrCredentialExists:       "email or phone already exists",
	ErrInvalidPassword:        "password invalid",
	ErrQuoteLocked:            "quote is locked by an order or manual invoice",
	ErrQtyEditLocked:          "quantities already confirmed by client",
	ErrInvalidTransition:      "status transition not allowed",
	ErrShortageUnresolved:     "quote has unresolved shortage",
	ErrMissingProduct:         "a requested item references a deleted product",
	ErrInsufficientStock:      "insufficient stock",
	ErrAvailabilityNotChecked: "availability has not been checked",
	ErrQuoteNotConfirmed:      "quote is not confirmed",
	ErrInvalidOrderStatus:     "invalid order status",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrNotFound:               http.StatusBadRequest,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnauthorize:            http.StatusUnauthorized,
	ErrForbidden:              http.StatusForbidden,
	ErrCredentialExists:       http.StatusBadRequest,
	ErrInvalidPassword:        http.StatusBadRequest,
	ErrQuoteLocked:            http.StatusConflict,
	ErrQtyEditLocked:          http.StatusConflict,
	ErrInvalidTransition:      http.StatusConflict,
	ErrShortageUnresolved:     http.StatusConflict,
	ErrMissingProduct:         http.StatusConflict,
	ErrInsufficientStock:      http.StatusConflict,
	ErrAvailabilityNotChecked: http.StatusConflict,
	ErrQuoteNotConfirmed:      http.StatusConflict,
	ErrInvalidOrderStatus:     http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrNotFound:               "0002",
	ErrInvalidRequest:         "0003",
	ErrUnauthorize:            "0004",
	ErrForbidden:              "0005",
	ErrCredentialExists:       "0006",
	ErrInvalidPassword:        "0007",
	ErrQuoteLocked:            "0101",
	ErrQtyEditLocked:          "0102",
	ErrInvalidTransition:      "0103",
	ErrShortageUnresolved:     "0104",
	ErrMissingProduct:         "0105",
	ErrInsufficientStock:      "0106",
	ErrAvailabilityNotChecked: "0107",
	ErrQuoteNotConfirmed:      "0108",
	ErrInvalidOrderStatus:     "0109",
}
