package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// NotificationPrefs are the per-channel opt-ins carried inside Preferences.
type NotificationPrefs struct {
	Email     bool `json:"email"`
	Push      bool `json:"push"`
	Marketing bool `json:"marketing"`
}

// Preferences is the user preference bag, stored as one JSON column.
type Preferences struct {
	Language      string            `json:"language"`
	Currency      string            `json:"currency"`
	Notifications NotificationPrefs `json:"notifications"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Language: "en",
		Currency: "USD",
		Notifications: NotificationPrefs{
			Email: true,
			Push:  true,
		},
	}
}

type User struct {
	ID           int64       `json:"id"`
	Email        string      `json:"email" validate:"required,email"`
	PasswordHash string      `json:"-"`
	Role         UserRole    `json:"role"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone,omitempty"`
	Bio          string      `json:"bio,omitempty"`
	ProfileImage string      `json:"profile_image,omitempty"`
	Preferences  Preferences `json:"preferences" gorm:"serializer:json"`
	IsVerified   bool        `json:"is_verified"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
