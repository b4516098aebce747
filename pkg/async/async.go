package async

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext waits for completion or for ctx to be done, whichever happens first.
// The computation itself keeps running when ctx is done; only the wait is abandoned.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, errors.Join(ErrAbandoned, ctx.Err())
	}
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// If the timeout occurs before completion, returns ErrTimeout.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// Done returns a channel that is closed once the future settles.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func (f *Future[U]) settle(res U, err error) {
	f.once.Do(func() {
		f.result = res
		f.err = err
		close(f.done)
	})
}

// Resolved returns an already completed future. Static option lists and
// constant validator outcomes use it to share the code path of real async work.
func Resolved[U any](value U, err error) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}
	f.settle(value, err)
	return f
}

// Async executes a function asynchronously and returns a Future.
// The function accepts a context.Context and a parameter of any type T, and returns (U, error).
// A panic inside fn settles the future with ErrPanicked instead of crashing the process.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		var zero U

		// Early exit prevents goroutine leak when context is pre-canceled
		if err := ctx.Err(); err != nil {
			f.settle(zero, err)
			return
		}

		defer func() {
			if r := recover(); r != nil {
				f.settle(zero, &PanicError{Value: r})
			}
		}()

		res, err := fn(ctx, param)
		f.settle(res, err)
	}()

	return f
}

// WaitAll waits for every future to complete, regardless of failures, and
// returns all results in order. Errors of failed futures are joined.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	var errs []error

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			errs = append(errs, err)
		}
	}

	return results, errors.Join(errs...)
}
