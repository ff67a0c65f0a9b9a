package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"travelhub/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// BookingStats is the per-user aggregate the dashboard shows.
type BookingStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
	Completed int64 `json:"completed"`
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Flight").Preload("Hotel").Preload("Car").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByReference(ctx context.Context, ref string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Flight").Preload("Hotel").Preload("Car").
		Where("booking_reference = ?", ref).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByPaymentIntent(ctx context.Context, intentID string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Where("payment_intent_id = ?", intentID).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, status, bookingType string, limit, offset int) ([]domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if bookingType != "" {
		q = q.Where("type = ?", bookingType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Booking
	err := q.Preload("Flight").Preload("Hotel").Preload("Car").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, total, err
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("payment_status", status).Error
}

func (r *BookingRepository) StatsByUser(ctx context.Context, userID int64) (*BookingStats, error) {
	rows := []struct {
		Status string
		Cnt    int64
	}{}
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select("status, COUNT(1) AS cnt").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &BookingStats{}
	for _, row := range rows {
		stats.Total += row.Cnt
		switch domain.BookingStatus(row.Status) {
		case domain.BookingPending:
			stats.Pending = row.Cnt
		case domain.BookingConfirmed:
			stats.Confirmed = row.Cnt
		case domain.BookingCancelled:
			stats.Cancelled = row.Cnt
		case domain.BookingCompleted:
			stats.Completed = row.Cnt
		}
	}
	return stats, nil
}

func (r *BookingRepository) RecentByUser(ctx context.Context, userID int64, limit int) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Flight").Preload("Hotel").Preload("Car").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CompletePastBookings flips confirmed bookings whose end date passed to
// completed and reports how many rows changed.
func (r *BookingRepository) CompletePastBookings(ctx context.Context, now time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("status = ? AND end_date < ?", domain.BookingConfirmed, now).
		Update("status", domain.BookingCompleted)
	return tx.RowsAffected, tx.Error
}
