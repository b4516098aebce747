// Package control provides the reactive control tree that form fields bind to.
//
// A Control holds one value, a Group holds named children and an Array holds
// an ordered list. Each control carries errors, touched and dirty flags, a
// pending flag for background work and an enabled state. Status is derived
// on read: DISABLED, then PENDING, then INVALID when the control or any
// enabled child has errors, else VALID.
//
// Synchronous validators run on every UpdateValueAndValidity. Asynchronous
// validators never run implicitly; RunAsyncValidator executes them against a
// value snapshot and returns the merged errors for the caller to assign.
//
// Controls are not safe for concurrent use. Mutate them from a single
// goroutine, usually the one draining a scheduler.Scheduler.
//
//	g := control.NewGroup()
//	email := control.New("", control.WithValidators(requiredFn))
//	_ = g.Add("email", email)
//	email.SetValue("a@example.com")
//	g.Valid() // true
package control
