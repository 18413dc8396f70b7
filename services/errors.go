package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Handlers map these onto HTTP
// status codes; anything else is treated as a persistence failure.
var (
	// ErrNotFound means a referenced product, cart item, order or size
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock means the requested quantity exceeds the
	// available stock for a specific size.
	ErrInsufficientStock = errors.New("not enough stock available")
)

// ValidationError reports a missing or invalid field in a request.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
