package repository

import (
	"context"

	"gorm.io/gorm"

	"travelhub/internal/domain"
)

type DestinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

// ListActive returns the full active set; narrowing by search text,
// category and budget happens in the destination service.
func (r *DestinationRepository) ListActive(ctx context.Context) ([]domain.Destination, error) {
	var out []domain.Destination
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *DestinationRepository) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	var d domain.Destination
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DestinationRepository) Popular(ctx context.Context, limit int) ([]domain.Destination, error) {
	var out []domain.Destination
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("average_rating DESC, total_reviews DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *DestinationRepository) Create(ctx context.Context, d *domain.Destination) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DestinationRepository) Update(ctx context.Context, d *domain.Destination) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DestinationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Destination{}, id).Error
}
