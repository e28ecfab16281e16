// internal/infra/database/postgres_notification_log.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"homework_status_bot/internal/domain/notification"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresNotificationLog persists delivered notifications.
//
// Expected schema:
//
//	CREATE TABLE sent_notifications (
//	    id      BIGSERIAL PRIMARY KEY,
//	    chat_id BIGINT NOT NULL,
//	    message TEXT NOT NULL,
//	    sent_at TIMESTAMPTZ NOT NULL
//	);
type PostgresNotificationLog struct {
	db *sql.DB
}

func NewPostgresNotificationLog(db *sql.DB) *PostgresNotificationLog {
	return &PostgresNotificationLog{db: db}
}

// Record inserts one delivered notification and fills in its ID.
func (l *PostgresNotificationLog) Record(ctx context.Context, e *notification.Entry) error {
	query := `INSERT INTO sent_notifications (chat_id, message, sent_at)
               VALUES ($1, $2, $3)
               RETURNING id`
	if err := l.db.QueryRowContext(ctx, query, e.ChatID, e.Message, e.SentAt).Scan(&e.ID); err != nil {
		return fmt.Errorf("error recording sent notification: %w", err)
	}
	return nil
}

// ListRecent returns up to limit notifications, most recent first.
func (l *PostgresNotificationLog) ListRecent(ctx context.Context, limit int) ([]*notification.Entry, error) {
	query := `SELECT id, chat_id, message, sent_at
               FROM sent_notifications
               ORDER BY sent_at DESC, id DESC
               LIMIT $1`
	rows, err := l.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing sent notifications: %w", err)
	}
	defer rows.Close()

	var entries []*notification.Entry
	for rows.Next() {
		e := &notification.Entry{}
		if err := rows.Scan(&e.ID, &e.ChatID, &e.Message, &e.SentAt); err != nil {
			return nil, fmt.Errorf("error scanning sent notification: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sent notifications: %w", err)
	}
	return entries, nil
}
