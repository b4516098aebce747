// Package async provides simple, generic helpers for running computations asynchronously and
// waiting for their completion.
//
// The package is centred around the generic type Future that represents the eventual result of an
// asynchronous operation. A Future can be obtained by calling Async, which starts the supplied
// function in its own goroutine and immediately returns a *Future instance. The caller can then
// wait for completion with Await, AwaitContext or AwaitWithTimeout, select on Done, or poll the
// state with IsComplete.
//
// WaitAll implements join-all semantics: it never returns early, every future is awaited and the
// errors of the failed ones are joined. Form-level asynchronous validation relies on this.
//
// # Usage
//
//	future := async.Async(ctx, "john@example.com", func(ctx context.Context, email string) (bool, error) {
//	    return users.EmailTaken(ctx, email)
//	})
//
//	taken, err := future.Await()
//
// # Error Handling
//
// Functions return the error produced by the user callback. A panicking callback settles the
// future with a *PanicError (errors.Is(err, ErrPanicked) reports true). AwaitWithTimeout and
// AwaitContext return ErrTimeout and ErrAbandoned respectively when the wait ends first.
package async
