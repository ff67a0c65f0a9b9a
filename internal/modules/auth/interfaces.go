package auth

import (
	"context"
	"time"

	"travelhub/internal/domain"
	"travelhub/internal/repository"
)

// UserRepository — only the methods the auth service uses
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

type ResetTokenRepository interface {
	Create(ctx context.Context, t *domain.PasswordResetToken) error
	GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id int64, usedAt time.Time) error
}

// Mailer sends the password reset email. Delivery failures are logged by
// the caller, never surfaced to the requester.
type Mailer interface {
	SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error
}

// TokenRevoker puts an access token on the logout denylist until it
// would have expired anyway.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}

// BookingStatsReader feeds the dashboard variant of the profile endpoint.
type BookingStatsReader interface {
	StatsByUser(ctx context.Context, userID int64) (*repository.BookingStats, error)
	RecentByUser(ctx context.Context, userID int64, limit int) ([]domain.Booking, error)
}
