package inventory

import (
	"context"
	"time"

	"travelhub/internal/domain"
)

type FlightRepository interface {
	Search(ctx context.Context, from, to string, day time.Time) ([]domain.Flight, error)
	Deals(ctx context.Context, limit int) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type HotelRepository interface {
	SearchByCity(ctx context.Context, city string) ([]domain.Hotel, error)
	Deals(ctx context.Context, limit int) ([]domain.Hotel, error)
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

type CarRepository interface {
	SearchByCity(ctx context.Context, city, category string) ([]domain.Car, error)
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}
