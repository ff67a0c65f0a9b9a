package booking

import "errors"

var (
	ErrNotFound         = errors.New("booking not found")
	ErrNotOwner         = errors.New("booking belongs to another user")
	ErrInvalidType      = errors.New("invalid booking type")
	ErrInvalidDates     = errors.New("end date must not be before start date")
	ErrItemNotFound     = errors.New("booked item not found")
	ErrItemUnavailable  = errors.New("booked item is not available")
	ErrCancelWindowPast = errors.New("booking can no longer be cancelled")
	ErrModifyWindowPast = errors.New("booking can no longer be modified")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)
