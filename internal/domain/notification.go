package domain

import "time"

type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
	NotifyWarning NotificationLevel = "warning"
	NotifyInfo    NotificationLevel = "info"
)

// Notification is an ephemeral in-app message. A notification is visible
// from creation until it is dismissed, either explicitly or by its own
// expiry timer; Duration zero means it never expires on its own.
type Notification struct {
	ID          string            `json:"id"`
	UserID      int64             `json:"user_id"`
	Level       NotificationLevel `json:"level"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Duration    time.Duration     `json:"duration"`
	CreatedAt   time.Time         `json:"created_at"`
}
