package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrValidation
	ErrNotFound
	ErrUnauthorize
	ErrInsufficientStock
	ErrInvalidStateTransition
	ErrConcurrentModification
	ErrProductReferenced
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "error internal",
	ErrValidation:             "invalid request",
	ErrNotFound:               "data not found",
	ErrUnauthorize:            "unauthorize request",
	ErrInsufficientStock:      "insufficient stock",
	ErrInvalidStateTransition: "invalid state transition",
	ErrConcurrentModification: "concurrent modification, please retry",
	ErrProductReferenced:      "product still holds stock",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrValidation:             http.StatusBadRequest,
	ErrNotFound:               http.StatusNotFound,
	ErrUnauthorize:            http.StatusUnauthorized,
	ErrInsufficientStock:      http.StatusConflict,
	ErrInvalidStateTransition: http.StatusConflict,
	ErrConcurrentModification: http.StatusConflict,
	ErrProductReferenced:      http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrValidation:             "0002",
	ErrNotFound:               "0003",
	ErrUnauthorize:            "0004",
	ErrInsufficientStock:      "0005",
	ErrInvalidStateTransition: "0006",
	ErrConcurrentModification: "0007",
	ErrProductReferenced:      "0008",
}
