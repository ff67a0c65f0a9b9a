package payment

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotOwner         = errors.New("booking belongs to another user")
	ErrAlreadyPaid      = errors.New("booking is already paid")
	ErrNothingToRefund  = errors.New("booking has no completed payment")
	ErrInvalidSignature = errors.New("webhook signature verification failed")
)
