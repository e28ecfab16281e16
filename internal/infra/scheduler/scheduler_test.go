package scheduler

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/telegram"
	"homework_status_bot/internal/infra/practicum"

	"github.com/sirupsen/logrus"
)

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type countingRunner struct {
	runs int
	err  error
}

func (r *countingRunner) RunCycle(context.Context) error {
	r.runs++
	return r.err
}

func TestStartRunsFirstCycleImmediately(t *testing.T) {
	runner := &countingRunner{}
	s := NewPollScheduler(runner, discardLogger(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	if runner.runs != 1 {
		t.Fatalf("runs = %d, want 1 immediate cycle", runner.runs)
	}
}

func TestCycleErrorIsSwallowed(t *testing.T) {
	runner := &countingRunner{err: fmt.Errorf("upstream down")}
	s := NewPollScheduler(runner, discardLogger(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start must not fail on a cycle error, got: %v", err)
	}
	defer s.Stop()

	// The loop stays alive: another tick still runs the cycle.
	s.runCycle()
	if runner.runs != 2 {
		t.Fatalf("runs = %d, want 2", runner.runs)
	}
}

func TestErrorKinds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "upstream", err: &practicum.UpstreamError{StatusCode: 404}, want: "upstream_error"},
		{name: "connection", err: fmt.Errorf("%w: refused", practicum.ErrConnectionFailure), want: "connection_failure"},
		{name: "malformed", err: practicum.ErrMalformedResponse, want: "malformed_response"},
		{name: "schema", err: practicum.ErrIncorrectSchema, want: "incorrect_schema"},
		{name: "status", err: fmt.Errorf("%w: %q", homework.ErrUnknownStatus, "archived"), want: "unknown_status"},
		{name: "delivery", err: telegram.ErrSendFailure, want: "delivery_send_failure"},
		{name: "other", err: fmt.Errorf("boom"), want: "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorKind(tt.err); got != tt.want {
				t.Fatalf("errorKind(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}

func TestNoCycleRunsAfterCancel(t *testing.T) {
	runner := &countingRunner{}
	s := NewPollScheduler(runner, discardLogger(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	cancel()
	s.runCycle()
	s.Stop()

	if runner.runs != 1 {
		t.Fatalf("runs = %d, want only the pre-cancel cycle", runner.runs)
	}
}
