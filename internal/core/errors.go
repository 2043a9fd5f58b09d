package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientMargin indicates the exchange rejected the action due to insufficient margin.
	ErrInsufficientMargin = errors.New("insufficient margin")
	// ErrOrderNotFound indicates the order does not exist on exchange.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderRejected indicates the order was rejected by exchange.
	ErrOrderRejected = errors.New("order rejected")
	// ErrUnknownSymbol indicates the exchange does not trade the requested symbol.
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// ValidationError reports malformed or out-of-range input. It is always
// raised before any network call is made.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string { return e.Reason }

func Validationf(format string, args ...interface{}) error {
	return ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var verr ValidationError
	return errors.As(err, &verr)
}
