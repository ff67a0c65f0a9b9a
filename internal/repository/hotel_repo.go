package repository

import (
	"context"

	"gorm.io/gorm"

	"travelhub/internal/domain"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) SearchByCity(ctx context.Context, city string) ([]domain.Hotel, error) {
	var out []domain.Hotel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("LOWER(location_city) = LOWER(?)", city).
		Order("rating DESC").
		Find(&out).Error
	return out, err
}

func (r *HotelRepository) Deals(ctx context.Context, limit int) ([]domain.Hotel, error) {
	var out []domain.Hotel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price_standard ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var h domain.Hotel
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}
