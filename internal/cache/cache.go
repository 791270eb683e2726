// Package cache provides a single-slot time-boxed memo: one value, one TTL,
// no keys. The clock is injected so expiry is testable without sleeping.
package cache

import (
	"sync"
	"time"
)

// Slot holds at most one value of type T for up to ttl after it was set.
type Slot[T any] struct {
	mu    sync.Mutex
	value T
	setAt time.Time
	held  bool

	ttl time.Duration
	now func() time.Time
}

// NewSlot creates an empty slot. If now is nil, time.Now is used.
func NewSlot[T any](ttl time.Duration, now func() time.Time) *Slot[T] {
	if now == nil {
		now = time.Now
	}
	return &Slot[T]{ttl: ttl, now: now}
}

// Get returns the held value and true while it is fresh. An expired value is
// dropped on access.
func (s *Slot[T]) Get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.held {
		var zero T
		return zero, false
	}
	if s.ttl > 0 && s.now().Sub(s.setAt) >= s.ttl {
		var zero T
		s.value = zero
		s.held = false
		return zero, false
	}
	return s.value, true
}

// Set stores v and restarts the TTL window.
func (s *Slot[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	s.setAt = s.now()
	s.held = true
}

// Invalidate drops the held value regardless of age.
func (s *Slot[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	s.value = zero
	s.held = false
}
