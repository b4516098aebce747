package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Scheduler is an explicit event loop. Form state is only touched by tasks
// running on the loop, so one goroutine drives it through Tick, Flush, Wait or
// Run. Enqueueing (Schedule, ScheduleOnce, Post) is safe from any goroutine.
type Scheduler struct {
	mu       sync.Mutex
	queue    []task
	keys     map[any]struct{}
	inflight int
	stopped  bool
	wake     chan struct{}

	maxFlushTicks int
	logger        *slog.Logger
}

type task struct {
	key any
	fn  func()
}

// New creates a new scheduler.
func New(opts ...Option) *Scheduler {
	options := &options{
		maxFlushTicks: 1000,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Scheduler{
		keys:          make(map[any]struct{}),
		wake:          make(chan struct{}, 1),
		maxFlushTicks: options.maxFlushTicks,
		logger:        options.logger,
	}
}

var (
	defaultScheduler *Scheduler
	defaultOnce      sync.Once
)

// Default returns the process-wide scheduler used by fields and forms that
// were not given one explicitly.
func Default() *Scheduler {
	defaultOnce.Do(func() {
		defaultScheduler = New()
	})
	return defaultScheduler
}

// Schedule runs fn on the next tick.
func (s *Scheduler) Schedule(fn func()) {
	s.enqueue(task{fn: fn})
}

// ScheduleOnce runs fn on the next tick unless a task with the same key is
// already pending. Reports whether fn was queued.
func (s *Scheduler) ScheduleOnce(key any, fn func()) bool {
	return s.enqueue(task{key: key, fn: fn})
}

// Post enqueues fn from any goroutine. It is an alias of Schedule kept for
// readability at call sites that hand results back from background work.
func (s *Scheduler) Post(fn func()) {
	s.enqueue(task{fn: fn})
}

func (s *Scheduler) enqueue(t task) bool {
	if t.fn == nil {
		return false
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		s.logger.Debug("task dropped, scheduler stopped", logger.Component("scheduler"))
		return false
	}
	if t.key != nil {
		if _, pending := s.keys[t.key]; pending {
			s.mu.Unlock()
			return false
		}
		s.keys[t.key] = struct{}{}
	}
	s.queue = append(s.queue, t)
	s.mu.Unlock()

	s.signal()
	return true
}

// Tick runs the tasks queued before the call. Tasks enqueued while the tick
// is running wait for the next tick. Returns the number of tasks run.
func (s *Scheduler) Tick() int {
	s.mu.Lock()
	batch := s.queue
	s.queue = nil
	for _, t := range batch {
		if t.key != nil {
			delete(s.keys, t.key)
		}
	}
	s.mu.Unlock()

	for _, t := range batch {
		s.run(t)
	}
	return len(batch)
}

func (s *Scheduler) run(t task) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduled task panicked",
				logger.Component("scheduler"),
				logger.Panic(r))
		}
	}()
	t.fn()
}

// Flush ticks until the queue is empty. It does not wait for background work.
// Returns the number of tasks run.
func (s *Scheduler) Flush() int {
	total := 0
	for range s.maxFlushTicks {
		n := s.Tick()
		if n == 0 {
			return total
		}
		total += n
	}

	s.logger.Error("flush gave up, tasks keep rescheduling themselves",
		logger.Component("scheduler"),
		logger.Count(s.Len()))
	return total
}

// Len returns the number of queued tasks.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Idle reports whether nothing is queued and no background work is pending.
func (s *Scheduler) Idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue) == 0 && s.inflight == 0
}

// Wait drives the loop until it is idle: the queue is empty and every
// background job and timer has delivered its result.
func (s *Scheduler) Wait(ctx context.Context) error {
	for {
		s.Flush()
		if s.Idle() {
			return nil
		}

		select {
		case <-s.wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Run drives the loop until ctx is done or Stop is called.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		s.Flush()

		s.mu.Lock()
		stopped := s.stopped
		s.mu.Unlock()
		if stopped {
			return ErrStopped
		}

		select {
		case <-s.wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Stop makes every later enqueue a no-op and ends Run.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
	s.signal()
}

// AfterFunc posts fn to the loop once d has elapsed. The returned stop
// function cancels the timer and reports whether it was still pending.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) (stop func() bool) {
	s.begin()
	var once sync.Once
	timer := time.AfterFunc(d, func() {
		s.Post(fn)
		once.Do(s.end)
	})

	return func() bool {
		if timer.Stop() {
			once.Do(s.end)
			return true
		}
		return false
	}
}

func (s *Scheduler) begin() {
	s.mu.Lock()
	s.inflight++
	s.mu.Unlock()
}

func (s *Scheduler) end() {
	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
	s.signal()
}

func (s *Scheduler) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Go runs work in the background and delivers its outcome to done on the
// loop. done always runs, also when ctx was canceled before work finished.
func Go[T any](s *Scheduler, ctx context.Context, work func(context.Context) (T, error), done func(T, error)) *async.Future[T] {
	s.begin()
	future := async.Async(ctx, work, func(ctx context.Context, work func(context.Context) (T, error)) (T, error) {
		return work(ctx)
	})

	go func() {
		res, err := future.Await()
		if done != nil {
			s.Post(func() { done(res, err) })
		}
		s.end()
	}()

	return future
}
