package events

import (
	"context"
)

// TransactionalBus stages events during a unit of work and forwards them to
// the real bus only after the surrounding transaction commits. Rolled-back
// work never announces anything.
type TransactionalBus struct {
	real    *Bus
	pending []Event
}

// NewTransactionalBus creates a transactional wrapper around the given bus
func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

// Publish stages an event until Flush or Discard
func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Flush emits all staged events to the main bus. Called after a successful
// commit. Events are emitted with a background context so they outlive the
// transaction's context.
func (b *TransactionalBus) Flush() {
	eventCtx := context.Background()
	for _, ev := range b.pending {
		b.real.Publish(eventCtx, ev)
	}
	b.pending = nil
}

// Discard drops all staged events. Called after a rollback.
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
