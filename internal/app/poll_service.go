// internal/app/poll_service.go
package app

import (
	"context"
	"time"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/notification"
	domainTelegram "homework_status_bot/internal/domain/telegram"
	"homework_status_bot/internal/infra/practicum"

	"github.com/sirupsen/logrus"
)

// StatusFetcher is the part of the practicum client the poll service uses.
type StatusFetcher interface {
	Fetch(ctx context.Context, fromDate int64) (map[string]any, error)
}

// PollService runs one fetch->validate->translate->notify cycle at a time and
// owns the in-memory poll state. It is driven by a single scheduler goroutine
// and is not safe for concurrent use. State does not survive a restart.
type PollService struct {
	fetcher        StatusFetcher
	telegramClient domainTelegram.Client
	notifLog       notification.Log
	logger         *logrus.Entry
	chatID         int64

	// cursor is the server-supplied watermark: overwritten each successful
	// cycle with the response's current_date, never recomputed locally.
	cursor int64
	// candidate is the most recently computed message. It persists across
	// cycles so a failed send is re-attempted on the next cycle even if that
	// cycle's homework list comes back empty.
	candidate    string
	lastNotified string
}

func NewPollService(
	fetcher StatusFetcher,
	tc domainTelegram.Client,
	nl notification.Log,
	logger *logrus.Entry,
	chatID int64,
	startCursor int64,
) *PollService {
	return &PollService{
		fetcher:        fetcher,
		telegramClient: tc,
		notifLog:       nl,
		logger:         logger,
		chatID:         chatID,
		cursor:         startCursor,
	}
}

// RunCycle performs one poll cycle. Errors are returned for the driver to log
// and swallow; partial state changes (cursor, candidate) are kept so the next
// cycle resumes from the server watermark, while lastNotified only moves
// after a successful send.
func (s *PollService) RunCycle(ctx context.Context) error {
	raw, err := s.fetcher.Fetch(ctx, s.cursor)
	if err != nil {
		return err
	}

	page, err := practicum.CheckResponse(raw)
	if err != nil {
		return err
	}

	if len(page.Homeworks) > 0 {
		message, err := homework.ParseStatus(page.Homeworks[0])
		if err != nil {
			return err
		}
		s.candidate = message
	}
	s.cursor = page.CurrentDate

	if s.candidate == "" || s.candidate == s.lastNotified {
		s.logger.Debug("No homework status update")
		return nil
	}

	if err := s.telegramClient.SendMessage(s.chatID, s.candidate); err != nil {
		return err
	}
	s.lastNotified = s.candidate

	entry := &notification.Entry{ChatID: s.chatID, Message: s.candidate, SentAt: time.Now()}
	if err := s.notifLog.Record(ctx, entry); err != nil {
		// Audit only; never fails the cycle.
		s.logger.WithError(err).Error("Failed to record sent notification")
	}
	return nil
}

// Cursor returns the watermark the next cycle will poll from.
func (s *PollService) Cursor() int64 {
	return s.cursor
}
