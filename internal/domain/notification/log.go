package notification

import (
	"context"
	"time"
)

// Entry is one successfully delivered status notification.
// Corresponds to the 'sent_notifications' table.
type Entry struct {
	ID      int64
	ChatID  int64
	Message string
	SentAt  time.Time
}

// Log records delivered notifications for audit purposes. Recording is
// best-effort: failures are logged by the caller and never influence polling
// or dedup decisions.
type Log interface {
	Record(ctx context.Context, e *Entry) error
	// ListRecent returns up to limit entries, most recent first.
	ListRecent(ctx context.Context, limit int) ([]*Entry, error)
}
