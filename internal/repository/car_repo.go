package repository

import (
	"context"

	"gorm.io/gorm"

	"travelhub/internal/domain"
)

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) SearchByCity(ctx context.Context, city, category string) ([]domain.Car, error) {
	q := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("LOWER(location_city) = LOWER(?)", city)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var out []domain.Car
	err := q.Order("price_per_day ASC").Find(&out).Error
	return out, err
}

func (r *CarRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	var c domain.Car
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
