package booking

import (
	"context"

	"travelhub/internal/domain"
	"travelhub/internal/repository"
)

// BookingRepository — only the methods the booking service uses
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, status, bookingType string, limit, offset int) ([]domain.Booking, int64, error)
	Update(ctx context.Context, b *domain.Booking) error
	StatsByUser(ctx context.Context, userID int64) (*repository.BookingStats, error)
}

type FlightReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type HotelReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

type CarReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

// Notifier delivers booking lifecycle notices. Implementations must not
// block the request path; failures are logged, not returned.
type Notifier interface {
	BookingCreated(ctx context.Context, user *domain.User, b *domain.Booking)
	BookingCancelled(ctx context.Context, user *domain.User, b *domain.Booking)
}

// Refunder reverses the charge behind a paid booking.
type Refunder interface {
	Refund(ctx context.Context, b *domain.Booking) error
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
