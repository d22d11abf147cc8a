package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/hub-fulfillment/constant"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Is matches any CustomError of the same type, so errors.Is works against SetCustomError values.
func (c CustomError) Is(target error) bool {
	t, ok := target.(CustomError)
	return ok && t.errType == c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// IsType reports whether err (or anything it wraps) is a CustomError of errorType.
func IsType(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if !stderrors.As(err, &ce) {
		return false
	}
	return ce.errType == errorType
}

// AsCustom returns err unchanged when it already is a CustomError, otherwise the fallback type.
func AsCustom(err error, fallback constant.ErrorType) CustomError {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce
	}
	return SetCustomError(fallback)
}
