package scheduler

import "log/slog"

// Option is a functional option for configuring a scheduler.
type Option func(*options)

type options struct {
	maxFlushTicks int
	logger        *slog.Logger
}

// WithLogger sets the logger used for recovered panics and runaway flushes.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxFlushTicks bounds how many ticks Flush runs before giving up.
func WithMaxFlushTicks(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxFlushTicks = n
		}
	}
}
