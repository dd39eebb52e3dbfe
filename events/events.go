package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeDeckCreated      EventType = "deck_created"
	EventTypeDeckDeleted      EventType = "deck_deleted"
	EventTypeCardsTransferred EventType = "cards_transferred"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// TransferDirection indicates which way cards moved in a transfer.
type TransferDirection string

const (
	DirectionToDeck   TransferDirection = "to_deck"
	DirectionToPlayer TransferDirection = "to_player"
)

// DeckCreatedEvent represents a newly created (empty) deck
type DeckCreatedEvent struct {
	DiscordID int64
	DeckName  string
}

func (e DeckCreatedEvent) Type() EventType {
	return EventTypeDeckCreated
}

// DeckDeletedEvent represents a deck deletion, after its cards were
// returned to the owning player's collection
type DeckDeletedEvent struct {
	DiscordID     int64
	DeckName      string
	CardsReturned int
}

func (e DeckDeletedEvent) Type() EventType {
	return EventTypeDeckDeleted
}

// CardsTransferredEvent represents a committed transfer between a player's
// collection and one of their decks
type CardsTransferredEvent struct {
	DiscordID  int64
	DeckName   string
	Direction  TransferDirection
	CardsMoved int
	DeckTotal  int
}

func (e CardsTransferredEvent) Type() EventType {
	return EventTypeCardsTransferred
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Publish dispatches an event to all subscribed handlers.
// Handlers run synchronously in subscription order; a slow handler delays
// the publisher, not other commands.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := b.handlers[event.Type()]
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(ctx, event)
	}
}
