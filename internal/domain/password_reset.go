package domain

import "time"

// PasswordResetToken is a single-use token mailed to the user. UsedAt set
// or ExpiresAt in the past makes it invalid.
type PasswordResetToken struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Token     string     `json:"-" gorm:"uniqueIndex"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (t *PasswordResetToken) Valid(now time.Time) bool {
	return t.UsedAt == nil && t.ExpiresAt.After(now)
}
