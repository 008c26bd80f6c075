package audit

import "context"

// Store is an append-only sink for audit events. The in-memory store is the
// only implementation in this service; durable audit belongs to an external
// collaborator.
type Store interface {
	Append(ctx context.Context, event Event) error
	List(ctx context.Context) ([]Event, error)
}
