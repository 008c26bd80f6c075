package audit

import (
	"context"
	"sync"
)

// memoryCap bounds the in-memory event buffer; the oldest half is dropped
// when full so the process never grows without bound.
const memoryCap = 4096

// InMemoryStore keeps recent audit events in memory. Safe for concurrent use.
type InMemoryStore struct {
	mu     sync.Mutex
	events []Event
}

// NewInMemoryStore creates an empty in-memory audit store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Append records one event.
func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) >= memoryCap {
		s.events = append(s.events[:0], s.events[memoryCap/2:]...)
	}
	s.events = append(s.events, event)
	return nil
}

// List returns a copy of the stored events in append order.
func (s *InMemoryStore) List(_ context.Context) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out, nil
}
