// Package store provides a small observable state cell: a mutable value with
// subscriber notification on every write. It stands in for the reactive
// bindings a graphical console would use.
package store

import "sync"

// Store holds a single value of type T and notifies subscribers on writes.
// The zero value is not usable; construct with New.
type Store[T any] struct {
	mu       sync.RWMutex
	value    T
	initial  T
	nextID   int
	watchers map[int]func(T)
}

// New returns a store seeded with initial. Reset restores this value later.
func New[T any](initial T) *Store[T] {
	return &Store[T]{
		value:    initial,
		initial:  initial,
		watchers: make(map[int]func(T)),
	}
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the current value and notifies every subscriber.
func (s *Store[T]) Set(value T) {
	s.mu.Lock()
	s.value = value
	watchers := s.snapshot()
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(value)
	}
}

// Update applies fn to the current value and stores the result, notifying
// subscribers once.
func (s *Store[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.value = fn(s.value)
	value := s.value
	watchers := s.snapshot()
	s.mu.Unlock()

	for _, watch := range watchers {
		watch(value)
	}
}

// Subscribe registers fn to run on every subsequent write. It is invoked
// immediately with the current value, matching subscription semantics of
// reactive UI stores. The returned function cancels the subscription.
func (s *Store[T]) Subscribe(fn func(T)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	value := s.value
	s.mu.Unlock()

	fn(value)

	return func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}
}

// Reset restores the initial value and notifies subscribers. Intended for
// tests and for clearing process-wide state between logical sessions.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	s.value = s.initial
	value := s.value
	watchers := s.snapshot()
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(value)
	}
}

func (s *Store[T]) snapshot() []func(T) {
	watchers := make([]func(T), 0, len(s.watchers))
	for _, fn := range s.watchers {
		watchers = append(watchers, fn)
	}
	return watchers
}
