package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"travelhub/internal/domain"
)

type FlightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// Search matches legs by departure/arrival city or airport code and the
// calendar day of departure.
func (r *FlightRepository) Search(ctx context.Context, from, to string, day time.Time) ([]domain.Flight, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var out []domain.Flight
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("(departure_city = ? OR departure_airport = ?)", from, from).
		Where("(arrival_city = ? OR arrival_airport = ?)", to, to).
		Where("departure_date_time >= ? AND departure_date_time < ?", dayStart, dayEnd).
		Order("departure_date_time ASC").
		Find(&out).Error
	return out, err
}

func (r *FlightRepository) Deals(ctx context.Context, limit int) ([]domain.Flight, error) {
	var out []domain.Flight
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price_economy ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *FlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	var f domain.Flight
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}
