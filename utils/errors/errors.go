package errors

import (
	"fmt"

	"github.com/muhammadheryan/inventory-tracker/constant"
)

type CustomError struct {
	errType constant.ErrorType
	detail  string
}

func (c CustomError) Error() string {
	if c.detail != "" {
		return constant.ErrorTypeMessage[c.errType] + ": " + c.detail
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorf attaches a caller-facing detail, e.g. the batch and
// shortfall on an insufficient stock failure.
func SetCustomErrorf(errorType constant.ErrorType, format string, args ...interface{}) CustomError {
	return CustomError{
		errType: errorType,
		detail:  fmt.Sprintf(format, args...),
	}
}

// TypeOf extracts the error type from a CustomError, ErrInternal otherwise.
func TypeOf(err error) constant.ErrorType {
	if ce, ok := err.(CustomError); ok {
		return ce.ErrorType()
	}
	return constant.ErrInternal
}

// IsType reports whether err is a CustomError of the given type.
func IsType(err error, errorType constant.ErrorType) bool {
	ce, ok := err.(CustomError)
	return ok && ce.errType == errorType
}
