package audit

import (
	"context"
	"log/slog"
)

// Worker consumes audit events from the publisher inbox and appends them to
// the store. It runs until its context is canceled.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

// NewWorker wires a worker to its inbox and store.
func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run drains the inbox. Append failures are logged and skipped; a broken
// audit sink must not stop the drain loop.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				if w.logger != nil {
					w.logger.WarnContext(ctx, "failed to append audit event",
						"action", event.Action,
						"error", err,
					)
				}
			}
		}
	}
}
