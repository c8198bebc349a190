// Package memocache provides a time-bounded memoizing wrapper around a
// data-producing function. One Loader instance wraps one function and owns
// its own lock, stored value and configuration.
package memocache

import (
	"context"
	"sync"
	"time"
)

// LoadFunc produces a fresh value, typically by re-reading a source file.
type LoadFunc[T any] func(ctx context.Context) (T, error)

type Option[T any] func(*Loader[T])

// WithClone puts the loader into deep-copy mode: every Get returns an
// independent copy so callers may mutate their result without corrupting
// the cached value.
func WithClone[T any](clone func(T) T) Option[T] {
	return func(l *Loader[T]) {
		l.clone = clone
	}
}

// WithNow overrides the wall clock, for tests.
func WithNow[T any](now func() time.Time) Option[T] {
	return func(l *Loader[T]) {
		l.now = now
	}
}

// Loader memoizes the result of a LoadFunc for a fixed duration. A duration
// of zero or less means every Get recomputes. The mutex is held for the
// whole check-compute-store sequence, so a cold cache under contention
// performs exactly one physical load; misses are serialized rather than
// parallelized, which is the intended trade-off for cheap file reloads.
type Loader[T any] struct {
	mu       sync.Mutex
	load     LoadFunc[T]
	duration time.Duration
	clone    func(T) T
	now      func() time.Time

	value    T
	storedAt time.Time
	stored   bool
}

func NewLoader[T any](load LoadFunc[T], duration time.Duration, opts ...Option[T]) *Loader[T] {
	loader := &Loader[T]{
		load:     load,
		duration: duration,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(loader)
	}
	return loader
}

// Get returns the cached value, recomputing it first when no value is stored
// yet or the stored one has aged past the configured duration. A failed
// recompute surfaces the error and leaves any previously stored value and
// its timestamp untouched.
func (l *Loader[T]) Get(ctx context.Context) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stale := !l.stored || l.duration <= 0 || l.now().Sub(l.storedAt) >= l.duration
	if stale {
		value, err := l.load(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		l.value = value
		l.storedAt = l.now()
		l.stored = true
	}

	if l.clone != nil {
		return l.clone(l.value), nil
	}
	return l.value, nil
}
