package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing entity (product, order, account).
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart signals a totals or checkout call against an empty cart.
	// The HTTP boundary is expected to reject such requests before they
	// reach the cart engine.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrUnauthorized signals a request without a valid logged-in identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDuplicate signals a uniqueness violation (email, brand name, ...).
	ErrDuplicate = errors.New("already exists")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PersistenceError wraps a failure from a storage collaborator. Checkout
// relies on it to distinguish "order not saved" from every other failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NewPersistenceError wraps err with the failing operation name.
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}
