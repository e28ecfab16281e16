package database

import (
	"context"
	"sync"

	"homework_status_bot/internal/domain/notification"
)

// MemoryNotificationLog keeps delivered notifications in memory. It backs
// deployments that run without DATABASE_URL, and tests.
type MemoryNotificationLog struct {
	mu      sync.Mutex
	nextID  int64
	entries []notification.Entry
}

func NewMemoryNotificationLog() *MemoryNotificationLog {
	return &MemoryNotificationLog{nextID: 1}
}

func (l *MemoryNotificationLog) Record(ctx context.Context, e *notification.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.ID = l.nextID
	l.nextID++
	l.entries = append(l.entries, *e)
	return nil
}

// ListRecent returns up to limit entries, most recent first.
func (l *MemoryNotificationLog) ListRecent(ctx context.Context, limit int) ([]*notification.Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if limit > len(l.entries) {
		limit = len(l.entries)
	}
	out := make([]*notification.Entry, 0, limit)
	for i := len(l.entries) - 1; i >= len(l.entries)-limit; i-- {
		e := l.entries[i]
		out = append(out, &e)
	}
	return out, nil
}
