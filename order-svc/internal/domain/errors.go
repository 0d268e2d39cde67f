package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ValidationError is a business rule or input violation tied to a field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrCartEmpty        = &ValidationError{Field: "items", Message: "Cart is empty"}
	ErrOutstandingOrder = &ValidationError{Field: "order", Message: "previous order must complete first"}
	ErrOrderLocked      = &ValidationError{Field: "status", Message: "order can no longer be changed"}
)

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
