package service

import (
	"context"

	"poketcg/events"
	"poketcg/models"
)

// PlayerRepository defines the interface for player data access
type PlayerRepository interface {
	// GetByDiscordID retrieves a player by their Discord ID, nil if absent
	GetByDiscordID(ctx context.Context, discordID int64) (*models.Player, error)

	// GetByDiscordIDForUpdate retrieves a player and locks the row for the
	// enclosing transaction
	GetByDiscordIDForUpdate(ctx context.Context, discordID int64) (*models.Player, error)

	// Create creates a new player with an empty collection
	Create(ctx context.Context, discordID int64, username string) (*models.Player, error)

	// UpdateCards rewrites a player's full card mapping
	UpdateCards(ctx context.Context, discordID int64, cards map[string]int) error
}

// DeckRepository defines the interface for deck data access
type DeckRepository interface {
	// GetByName retrieves a deck by owner and lower-cased name, nil if absent
	GetByName(ctx context.Context, discordID int64, name string) (*models.Deck, error)

	// GetByNameForUpdate retrieves a deck and locks the row for the
	// enclosing transaction
	GetByNameForUpdate(ctx context.Context, discordID int64, name string) (*models.Deck, error)

	// ListByPlayer returns all of a player's decks
	ListByPlayer(ctx context.Context, discordID int64) ([]*models.Deck, error)

	// Create inserts a new empty deck, models.ErrDeckNameTaken on duplicate
	Create(ctx context.Context, discordID int64, name string) (*models.Deck, error)

	// UpdateCards rewrites a deck's full card mapping
	UpdateCards(ctx context.Context, deckID int64, cards map[string]int) error

	// SetDisplayCard sets the card shown when the deck is presented
	SetDisplayCard(ctx context.Context, deckID int64, cardID string) error

	// Delete removes a deck record
	Delete(ctx context.Context, deckID int64) error
}

// EventPublisher publishes events, deferred until the unit of work commits
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork represents a transactional boundary: every repository obtained
// from it runs on the same store transaction
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PlayerRepository() PlayerRepository
	DeckRepository() DeckRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// CardCatalog resolves card identifiers against the external catalog.
// Implemented by catalog.Client; consumers treat every call as fallible.
type CardCatalog interface {
	// Card resolves a single card by identifier
	Card(ctx context.Context, id string) (*models.Card, error)

	// CardsByID resolves a batch of identifiers, chunked per catalog limits
	CardsByID(ctx context.Context, ids []string) ([]*models.Card, error)

	// Search returns all cards matching a catalog query
	Search(ctx context.Context, query string) ([]*models.Card, error)
}

// PlayerService defines the interface for player operations
type PlayerService interface {
	// GetOrCreatePlayer retrieves an existing player or lazily creates one
	// with an empty collection on first interaction
	GetOrCreatePlayer(ctx context.Context, discordID int64, username string) (*models.Player, error)
}

// DeckService defines the interface for deck operations
type DeckService interface {
	// Create creates a new empty deck for the player
	Create(ctx context.Context, discordID int64, name string) (*models.Deck, error)

	// List returns all of the player's decks
	List(ctx context.Context, discordID int64) ([]*models.Deck, error)

	// Get returns a single deck by name
	Get(ctx context.Context, discordID int64, name string) (*models.Deck, error)

	// AddCards moves the cards named by rawSpec from the player's collection
	// into the deck. Rejected wholesale if the player lacks any quantity or
	// the addition breaks deck-composition rules.
	AddCards(ctx context.Context, discordID int64, deckName, rawSpec string) (*models.TransferResult, error)

	// RemoveCards moves the cards named by rawSpec from the deck back into
	// the player's collection. Rejected wholesale if the deck lacks any
	// requested quantity.
	RemoveCards(ctx context.Context, discordID int64, deckName, rawSpec string) (*models.TransferResult, error)

	// Delete returns all of the deck's cards to the player, then deletes the
	// deck. Reports how many cards were returned.
	Delete(ctx context.Context, discordID int64, name string) (int, error)

	// SetDisplayCard sets the deck's presentation card
	SetDisplayCard(ctx context.Context, discordID int64, name, cardID string) error
}
