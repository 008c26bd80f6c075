package audit

import (
	"context"
	"time"
)

// Publisher accepts audit events from domain logic and hands them to the
// background worker over a bounded channel. Emit never blocks: if the inbox
// is full the event is dropped, because observability must not stall claim
// processing.
type Publisher struct {
	inbox chan Event
}

// NewPublisher creates a publisher with the given inbox capacity.
func NewPublisher(buffer int) *Publisher {
	if buffer <= 0 {
		buffer = 1024
	}
	return &Publisher{inbox: make(chan Event, buffer)}
}

// Emit queues an event for the worker, stamping the time if unset.
func (p *Publisher) Emit(_ context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.inbox <- event:
	default:
	}
}

// Inbox exposes the receive side for the worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}
