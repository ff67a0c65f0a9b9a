package booking

import (
	"time"

	"travelhub/internal/domain"
)

// Cut-offs ahead of the trip start. Cancellation closes a day out,
// modification two days out.
const (
	DefaultCancelWindow = 24 * time.Hour
	DefaultModifyWindow = 48 * time.Hour
)

// CanCancel reports whether a booking may still be cancelled at now.
// Cancelled and completed bookings never can; otherwise the trip start
// must be strictly more than window away.
func CanCancel(b *domain.Booking, now time.Time, window time.Duration) bool {
	if b.Status == domain.BookingCancelled || b.Status == domain.BookingCompleted {
		return false
	}
	return b.StartDate.Sub(now) > window
}

// CanModify is the same rule with the modification cut-off.
func CanModify(b *domain.Booking, now time.Time, window time.Duration) bool {
	if b.Status == domain.BookingCancelled || b.Status == domain.BookingCompleted {
		return false
	}
	return b.StartDate.Sub(now) > window
}
