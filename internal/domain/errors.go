package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrEventNotFound    = fmt.Errorf("event %w", ErrNotFound)
	ErrBookingNotFound  = fmt.Errorf("booking %w", ErrNotFound)
	ErrProfileNotFound  = fmt.Errorf("profile %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
)

var (
	ErrEventNotBookable      = errors.New("event is not open for booking")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrAlreadyCancelled      = errors.New("booking is already cancelled")
	ErrBookingNotConfirmed   = errors.New("booking is not confirmed")
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrStorage        = errors.New("storage error")
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// InsufficientInventoryError carries the availability observed when a
// reservation was rejected.
type InsufficientInventoryError struct {
	EventID   string
	Requested int
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("%s: requested %d, only %d seats available",
		ErrInsufficientInventory, e.Requested, e.Available)
}

func (e *InsufficientInventoryError) Unwrap() error {
	return ErrInsufficientInventory
}
