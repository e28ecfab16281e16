package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const stopCommand = "s"

const prompt = `Please, press "s" to stop`

// StopListener reads operator commands from an input stream and triggers
// process shutdown. It is an input adapter over the coordinator's
// cancellation signal rather than a writer of shared run state.
type StopListener struct {
	in     io.Reader
	out    io.Writer
	cancel context.CancelFunc
	logger *logrus.Entry
}

func NewStopListener(in io.Reader, out io.Writer, cancel context.CancelFunc, logger *logrus.Entry) *StopListener {
	return &StopListener{in: in, out: out, cancel: cancel, logger: logger}
}

// Run blocks reading lines until the stop command arrives or the input
// stream ends. It is meant to run in its own goroutine; any other input is
// re-prompted and ignored.
func (l *StopListener) Run() {
	fmt.Fprintln(l.out, prompt)
	scanner := bufio.NewScanner(l.in)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == stopCommand {
			l.logger.Info("Stop requested from console")
			l.cancel()
			return
		}
		fmt.Fprintln(l.out, prompt)
	}
	if err := scanner.Err(); err != nil {
		l.logger.WithError(err).Warn("Console listener stopped reading input")
	}
}
