package runner

import (
	"io"
	"time"

	loggerpkg "github.com/minhyannv/agent-run-go/pkg/logger"
)

// Option configures optional runtime dependencies for Executor.
type Option func(*executorDeps)

type executorDeps struct {
	logger    loggerpkg.Logger
	completer Completer
	out       io.Writer
	now       func() time.Time
	newRunID  func() string
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *executorDeps) {
		d.logger = l
	}
}

// WithCompleter replaces the OpenAI client.
func WithCompleter(c Completer) Option {
	return func(d *executorDeps) {
		d.completer = c
	}
}

// WithOutput sets where the confirmation line is printed.
func WithOutput(w io.Writer) Option {
	return func(d *executorDeps) {
		d.out = w
	}
}

// WithClock sets the report timestamp source.
func WithClock(now func() time.Time) Option {
	return func(d *executorDeps) {
		d.now = now
	}
}

// WithRunID sets the run id generator used in log fields.
func WithRunID(newID func() string) Option {
	return func(d *executorDeps) {
		d.newRunID = newID
	}
}
