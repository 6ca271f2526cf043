package session

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

// Default time-to-live per severity. Errors linger a little longer.
const (
	DefaultTTL = 4 * time.Second
	ErrorTTL   = 7 * time.Second
)

// Notification is one short-lived, dismissible message.
type Notification struct {
	ID       string
	Message  string
	Severity Severity
	Deadline time.Time
}

// Notifier is the queue of active notifications. Expiry is scan-based
// rather than timer-based: the owner calls Expire on its tick and overdue
// entries fall out. A manual Dismiss simply removes the entry, so there is
// no pending timer left to race a second removal.
type Notifier struct {
	items []Notification
	now   func() time.Time
}

// NewNotifier creates an empty queue using the wall clock.
func NewNotifier() *Notifier {
	return &Notifier{now: time.Now}
}

// Push enqueues a notification that expires after ttl unless dismissed
// earlier. Returns its ID. Concurrent notifications are independent;
// nothing is merged or suppressed.
func (n *Notifier) Push(message string, severity Severity, ttl time.Duration) string {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	item := Notification{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: severity,
		Deadline: n.now().Add(ttl),
	}
	n.items = append(n.items, item)
	return item.ID
}

// Dismiss removes the notification with the given ID. Dismissing an
// already-gone ID is a harmless no-op.
func (n *Notifier) Dismiss(id string) {
	next := n.items[:0]
	for _, item := range n.items {
		if item.ID != id {
			next = append(next, item)
		}
	}
	n.items = next
}

// Expire drops every notification whose deadline has passed and reports
// whether anything changed.
func (n *Notifier) Expire() bool {
	now := n.now()
	next := n.items[:0]
	for _, item := range n.items {
		if item.Deadline.After(now) {
			next = append(next, item)
		}
	}
	changed := len(next) != len(n.items)
	n.items = next
	return changed
}

// Active returns a snapshot of the live notifications, oldest first.
func (n *Notifier) Active() []Notification {
	return append([]Notification(nil), n.items...)
}
