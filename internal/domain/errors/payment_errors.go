package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingPaymentType is returned when a create or update payload
	// carries no payment type at all.
	ErrMissingPaymentType = errors.New("payment type is required")

	// ErrPaymentMethodNotFound indicates that no payment method exists
	// under the requested ID.
	ErrPaymentMethodNotFound = errors.New("payment method not found")

	// ErrNotOwner is returned when a payment method exists but belongs to
	// a different user than the caller. Kept distinct from
	// ErrPaymentMethodNotFound so the HTTP layer can map 403 vs 404.
	ErrNotOwner = errors.New("not authorized to access this payment method")
)

// UnknownPaymentTypeError is returned for a payment type outside the
// supported set.
type UnknownPaymentTypeError struct {
	Type string
}

func (e *UnknownPaymentTypeError) Error() string {
	return fmt.Sprintf("unknown payment type: %q", e.Type)
}

// MissingFieldsError reports every required field that is absent or empty
// in a payload. The list is always complete, never just the first miss.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
