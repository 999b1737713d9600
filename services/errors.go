package services

import "errors"

// Typed failures surfaced to controllers; none are retried by the core.
var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrDelivererUnavailable = errors.New("deliverer not found or inactive")
	ErrAlreadyCanceled      = errors.New("order already canceled")
	ErrCancelClosed         = errors.New("order can no longer be canceled")
	ErrItemNotFound         = errors.New("item does not belong to this order")
	ErrLastItem             = errors.New("order must keep at least one item")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrPersistence          = errors.New("persistence failure")
)

// NoAddressError carries a remediation hint so the frontend can redirect
// the customer to address management.
type NoAddressError struct {
	Hint string
}

func (e *NoAddressError) Error() string {
	return "no shipping address on file"
}

func (e *NoAddressError) Is(target error) bool {
	_, ok := target.(*NoAddressError)
	return ok
}

var ErrNoAddress = &NoAddressError{}
