package scheduler

import "errors"

// ErrStopped is returned by Run after Stop was called.
var ErrStopped = errors.New("scheduler: stopped")
