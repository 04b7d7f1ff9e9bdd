package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors let callers branch on the failure class with
// errors.Is while the concrete types below carry the details.
var (
	ErrValidation        = errors.New("invalid input")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPaymentMismatch   = errors.New("payment does not match bill total")
	ErrNotFound          = errors.New("not found")
)

// ValidationError rejects malformed input before any mutation, naming
// the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// InsufficientStockError reports a requested quantity exceeding what is
// available for an item. The operation is rejected, never clamped.
type InsufficientStockError struct {
	ItemID    string
	Requested float64
	Available float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %g, available %g",
		e.ItemID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// PaymentMismatchError reports a split payment that does not sum to the
// bill total.
type PaymentMismatchError struct {
	Required float64
	Tendered float64
}

func (e *PaymentMismatchError) Error() string {
	return fmt.Sprintf("payment does not match bill total: required %.2f, tendered %.2f",
		e.Required, e.Tendered)
}

func (e *PaymentMismatchError) Unwrap() error { return ErrPaymentMismatch }

// NotFoundError reports an absent record by collection and id.
type NotFoundError struct {
	Collection string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Collection, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
