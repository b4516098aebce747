package control

import "slices"

type listener[T any] struct {
	id int
	fn func(T)
}

// Listeners is an ordered subscriber list that tolerates unsubscribing from
// inside a notification. The zero value is ready to use. Not safe for
// concurrent use.
type Listeners[T any] struct {
	seq     int
	entries []listener[T]
}

// Add subscribes fn and returns its unsubscribe function.
func (l *Listeners[T]) Add(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	l.seq++
	id := l.seq
	l.entries = append(l.entries, listener[T]{id: id, fn: fn})
	return func() { l.remove(id) }
}

func (l *Listeners[T]) remove(id int) {
	l.entries = slices.DeleteFunc(l.entries, func(e listener[T]) bool { return e.id == id })
}

func (l *Listeners[T]) active(id int) bool {
	return slices.ContainsFunc(l.entries, func(e listener[T]) bool { return e.id == id })
}

// Emit calls every subscriber registered before the call that is still subscribed.
func (l *Listeners[T]) Emit(v T) {
	for _, e := range slices.Clone(l.entries) {
		if l.active(e.id) {
			e.fn(v)
		}
	}
}

// Clear drops every subscriber.
func (l *Listeners[T]) Clear() {
	l.entries = nil
}

// Len returns the number of subscribers.
func (l *Listeners[T]) Len() int {
	return len(l.entries)
}
