package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"travelhub/internal/domain"
)

type ResetTokenRepository struct {
	db *gorm.DB
}

func NewResetTokenRepository(db *gorm.DB) *ResetTokenRepository {
	return &ResetTokenRepository{db: db}
}

func (r *ResetTokenRepository) Create(ctx context.Context, t *domain.PasswordResetToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ResetTokenRepository) GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	var t domain.PasswordResetToken
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *ResetTokenRepository) MarkUsed(ctx context.Context, id int64, usedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.PasswordResetToken{}).
		Where("id = ?", id).
		Update("used_at", usedAt).Error
}

func (r *ResetTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at < ? OR used_at IS NOT NULL", now).
		Delete(&domain.PasswordResetToken{})
	return tx.RowsAffected, tx.Error
}
