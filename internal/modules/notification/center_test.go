package notification

import (
	"testing"
	"time"

	"travelhub/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCenter_PushAssignsIDAndDefaults(t *testing.T) {
	c := NewCenter()

	n := c.Push(1, domain.NotifySuccess, "Saved", "")

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, DefaultDuration, n.Duration)
	assert.Len(t, c.List(1), 1)
}

func TestCenter_ErrorsStayLonger(t *testing.T) {
	c := NewCenter()

	n := c.Push(1, domain.NotifyError, "Something broke", "")

	assert.Equal(t, DefaultErrorDuration, n.Duration)
}

func TestCenter_IDsAreUnique(t *testing.T) {
	c := NewCenter()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		n := c.PushFor(1, domain.NotifyInfo, "n", "", 0)
		assert.False(t, seen[n.ID])
		seen[n.ID] = true
	}
}

func TestCenter_DismissRemovesExactlyOne(t *testing.T) {
	c := NewCenter()

	a := c.PushFor(1, domain.NotifyInfo, "a", "", 0)
	b := c.PushFor(1, domain.NotifyInfo, "b", "", 0)

	assert.True(t, c.Dismiss(1, a.ID))

	left := c.List(1)
	assert.Len(t, left, 1)
	assert.Equal(t, b.ID, left[0].ID)
}

func TestCenter_DismissIsIdempotent(t *testing.T) {
	c := NewCenter()

	n := c.PushFor(1, domain.NotifyInfo, "once", "", 0)

	assert.True(t, c.Dismiss(1, n.ID))
	assert.False(t, c.Dismiss(1, n.ID))
	assert.Empty(t, c.List(1))
}

func TestCenter_DismissAll(t *testing.T) {
	c := NewCenter()

	c.PushFor(1, domain.NotifyInfo, "a", "", 0)
	c.PushFor(1, domain.NotifyInfo, "b", "", 0)
	c.PushFor(2, domain.NotifyInfo, "other user", "", 0)

	c.DismissAll(1)

	assert.Empty(t, c.List(1))
	assert.Len(t, c.List(2), 1)
}

func TestCenter_TimerExpiresNotification(t *testing.T) {
	c := NewCenter()

	c.PushFor(1, domain.NotifyInfo, "short lived", "", 20*time.Millisecond)

	assert.Len(t, c.List(1), 1)
	assert.Eventually(t, func() bool {
		return len(c.List(1)) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestCenter_ZeroDurationIsSticky(t *testing.T) {
	c := NewCenter()

	c.PushFor(1, domain.NotifyInfo, "sticky", "", 0)

	time.Sleep(50 * time.Millisecond)
	assert.Len(t, c.List(1), 1)
}

func TestCenter_ManualDismissBeatsTimer(t *testing.T) {
	c := NewCenter()

	n := c.PushFor(1, domain.NotifyInfo, "racer", "", 50*time.Millisecond)
	assert.True(t, c.Dismiss(1, n.ID))

	// the stopped timer must not touch anything pushed afterwards
	other := c.PushFor(1, domain.NotifyInfo, "survivor", "", 0)
	time.Sleep(80 * time.Millisecond)

	left := c.List(1)
	assert.Len(t, left, 1)
	assert.Equal(t, other.ID, left[0].ID)
}

func TestCenter_OnPushHook(t *testing.T) {
	c := NewCenter()

	var got []domain.Notification
	c.OnPush(func(userID int64, n domain.Notification) {
		got = append(got, n)
	})

	c.Push(1, domain.NotifySuccess, "hello", "")

	assert.Len(t, got, 1)
	assert.Equal(t, "hello", got[0].Title)
}

func TestCenter_ListReturnsCopy(t *testing.T) {
	c := NewCenter()

	c.PushFor(1, domain.NotifyInfo, "original", "", 0)

	list := c.List(1)
	list[0].Title = "mutated"

	assert.Equal(t, "original", c.List(1)[0].Title)
}
