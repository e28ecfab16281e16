package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/telegram"
	"homework_status_bot/internal/infra/practicum"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// CycleRunner is the poll service surface the scheduler drives.
type CycleRunner interface {
	RunCycle(ctx context.Context) error
}

// PollScheduler drives the poll cycle on a fixed interval. A cycle that
// outlives the interval is never overlapped; the colliding tick is skipped.
type PollScheduler struct {
	cronEngine *cron.Cron
	runner     CycleRunner
	logger     *logrus.Entry
	interval   time.Duration
	ctx        context.Context
}

func NewPollScheduler(runner CycleRunner, logger *logrus.Entry, interval time.Duration) *PollScheduler {
	return &PollScheduler{
		cronEngine: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(logger)))),
		runner:     runner,
		logger:     logger,
		interval:   interval,
	}
}

// Start runs one cycle immediately, then schedules subsequent cycles every
// interval. ctx is checked at the top of every run; once it is canceled no
// further cycle does any work.
func (s *PollScheduler) Start(ctx context.Context) error {
	s.ctx = ctx

	if _, err := s.cronEngine.AddFunc("@every "+s.interval.String(), s.runCycle); err != nil {
		return fmt.Errorf("could not schedule poll cycle: %w", err)
	}

	s.runCycle()
	s.cronEngine.Start()
	s.logger.WithField("interval", s.interval.String()).Info("Poll scheduler started")
	return nil
}

func (s *PollScheduler) runCycle() {
	if s.ctx.Err() != nil {
		return
	}
	if err := s.runner.RunCycle(s.ctx); err != nil {
		// Every kind is retryable: log and wait for the next tick.
		s.logger.WithField("error_kind", errorKind(err)).WithError(err).Error("Poll cycle failed")
	}
}

// errorKind names the cycle error for log filtering. The set is closed; an
// unmatched error still only costs the current cycle.
func errorKind(err error) string {
	var ue *practicum.UpstreamError
	switch {
	case errors.As(err, &ue):
		return "upstream_error"
	case errors.Is(err, practicum.ErrConnectionFailure):
		return "connection_failure"
	case errors.Is(err, practicum.ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, practicum.ErrIncorrectSchema):
		return "incorrect_schema"
	case errors.Is(err, homework.ErrUnknownStatus):
		return "unknown_status"
	case errors.Is(err, telegram.ErrSendFailure):
		return "delivery_send_failure"
	default:
		return "internal"
	}
}

// Stop halts scheduling and waits for an in-flight cycle to finish. Stopping
// takes effect at a cycle boundary; the current cycle is never interrupted.
func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.logger.Info("Poll scheduler stopped")
}
