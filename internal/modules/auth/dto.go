package auth

import "travelhub/internal/domain"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateDetailsRequest struct {
	Name        *string             `json:"name" binding:"omitempty,min=2"`
	Phone       *string             `json:"phone"`
	Bio         *string             `json:"bio"`
	Preferences *domain.Preferences `json:"preferences"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// UserStats is the dashboard block of GET /auth/me?include_stats=true.
type UserStats struct {
	TotalBookings     int64 `json:"total_bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
	ConfirmedBookings int64 `json:"confirmed_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
	CancelledBookings int64 `json:"cancelled_bookings"`
}

type ProfileResponse struct {
	*domain.User
	Stats          *UserStats       `json:"stats,omitempty"`
	RecentBookings []domain.Booking `json:"recent_bookings,omitempty"`
}
