package form

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/formkit/pkg/scheduler"
)

// Option configures a Form.
type Option func(*Form)

// WithScheduler sets the loop the form's background work reports to.
func WithScheduler(s *scheduler.Scheduler) Option {
	return func(f *Form) {
		if s != nil {
			f.sched = s
		}
	}
}

// WithLogger sets the form logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithAsyncTimeout bounds ValidateAsync. Zero or negative disables the bound.
func WithAsyncTimeout(d time.Duration) Option {
	return func(f *Form) { f.asyncTimeout = d }
}
