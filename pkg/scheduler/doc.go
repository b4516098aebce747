// Package scheduler provides the explicit event loop formkit runs on.
//
// Fields and forms are not goroutine-safe. Instead of locking every control,
// all state changes happen on one loop: deferred work (cross-field
// revalidation, option-change continuations) is queued with Schedule or
// ScheduleOnce, and background work (asynchronous option loading, debounced
// search) runs through Go or AfterFunc and hands its result back with Post.
//
// # Ticks and coalescing
//
// Tick runs exactly the tasks queued before it started. A task that schedules
// more work pushes it to the next tick, which is what keeps a validator from
// re-entering validation of a sibling while it is still on the call stack.
// ScheduleOnce coalesces by key: the same control is revalidated at most once
// per tick no matter how many siblings asked for it.
//
// # Driving the loop
//
//	s := scheduler.New(scheduler.WithLogger(log))
//
//	// tests and request handlers: run until idle
//	if err := s.Wait(ctx); err != nil { ... }
//
//	// long-lived processes: run until ctx is done
//	go s.Run(ctx)
//
// Flush only drains the queue; Wait also waits for in-flight Go jobs and
// pending AfterFunc timers.
package scheduler
