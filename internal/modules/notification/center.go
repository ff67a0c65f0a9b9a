package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"travelhub/internal/domain"
)

// Default on-screen lifetimes. Errors stay up longer.
const (
	DefaultDuration      = 5 * time.Second
	DefaultErrorDuration = 7 * time.Second
)

// Center holds the visible notifications per user and expires them on
// their own timers. A notification moves from visible to dismissed
// exactly once, whether the timer fires, the user dismisses it, or a
// dismiss-all sweeps it; dismissed is terminal.
type Center struct {
	mu     sync.Mutex
	byUser map[int64][]domain.Notification
	timers map[string]*time.Timer

	onPush func(userID int64, n domain.Notification)
}

func NewCenter() *Center {
	return &Center{
		byUser: make(map[int64][]domain.Notification),
		timers: make(map[string]*time.Timer),
	}
}

// OnPush registers a hook invoked for every new notification, used to
// fan out over websocket. Must be set before the center is shared.
func (c *Center) OnPush(fn func(userID int64, n domain.Notification)) {
	c.onPush = fn
}

// Push adds a notification with the default lifetime for its level.
func (c *Center) Push(userID int64, level domain.NotificationLevel, title, description string) domain.Notification {
	duration := DefaultDuration
	if level == domain.NotifyError {
		duration = DefaultErrorDuration
	}
	return c.PushFor(userID, level, title, description, duration)
}

// PushFor adds a notification with an explicit lifetime and arms its
// expiry timer. A zero duration keeps it visible until dismissed.
func (c *Center) PushFor(userID int64, level domain.NotificationLevel, title, description string, duration time.Duration) domain.Notification {
	n := domain.Notification{
		ID:          uuid.NewString(),
		UserID:      userID,
		Level:       level,
		Title:       title,
		Description: description,
		Duration:    duration,
		CreatedAt:   time.Now(),
	}

	c.mu.Lock()
	c.byUser[userID] = append(c.byUser[userID], n)
	if duration > 0 {
		id := n.ID
		c.timers[id] = time.AfterFunc(duration, func() {
			c.Dismiss(userID, id)
		})
	}
	c.mu.Unlock()

	if c.onPush != nil {
		c.onPush(userID, n)
	}
	return n
}

// Dismiss removes exactly the notification with the given id. Dismissing
// an already-dismissed id is a no-op.
func (c *Center) Dismiss(userID int64, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}

	list := c.byUser[userID]
	for i, n := range list {
		if n.ID == id {
			c.byUser[userID] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// DismissAll clears every visible notification for the user.
func (c *Center) DismissAll(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.byUser[userID] {
		if t, ok := c.timers[n.ID]; ok {
			t.Stop()
			delete(c.timers, n.ID)
		}
	}
	delete(c.byUser, userID)
}

// List returns the user's visible notifications, oldest first.
func (c *Center) List(userID int64) []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Notification, len(c.byUser[userID]))
	copy(out, c.byUser[userID])
	return out
}
