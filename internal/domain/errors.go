package domain

import "errors"

// Validation failures surfaced by the engine. All are terminal for the
// attempted operation; none is retryable.
var (
	ErrInvalidEmail      = errors.New("hotel: invalid email format")
	ErrDuplicateCustomer = errors.New("hotel: customer already registered")
	ErrCustomerNotFound  = errors.New("hotel: customer not found")
	ErrNilRoom           = errors.New("hotel: room is nil")
	ErrEmptyRoomNumber   = errors.New("hotel: room number is empty")
	ErrInvalidRoomNumber = errors.New("hotel: room number format: 3 digits + optional uppercase letter")
	ErrNegativePrice     = errors.New("hotel: price cannot be negative")
	ErrDuplicateRoom     = errors.New("hotel: room number already registered")
	ErrUnknownRoom       = errors.New("hotel: room is not registered")
	ErrInvalidDateRange  = errors.New("hotel: check-out date must be after check-in date")
	ErrRoomUnavailable   = errors.New("hotel: room is not available for the requested dates")
	ErrUnknownStatus     = errors.New("hotel: unknown room status")
	ErrNotFound          = errors.New("hotel: not found")
)
