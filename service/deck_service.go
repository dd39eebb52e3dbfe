package service

import (
	"context"
	"fmt"
	"strings"

	"poketcg/cardspec"
	"poketcg/events"
	"poketcg/models"
)

// deckService implements the DeckService interface. Card transfers between a
// player's collection and a deck run inside a single unit of work with both
// rows locked, so concurrent commands on the same records serialize instead
// of racing, and the two writes commit together or not at all.
type deckService struct {
	uowFactory UnitOfWorkFactory
}

// NewDeckService creates a new deck service
func NewDeckService(uowFactory UnitOfWorkFactory) DeckService {
	return &deckService{
		uowFactory: uowFactory,
	}
}

// NormalizeDeckName lower-cases and trims a player-supplied deck name.
func NormalizeDeckName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Create creates a new empty deck for the player
func (s *deckService) Create(ctx context.Context, discordID int64, name string) (*models.Deck, error) {
	name = NormalizeDeckName(name)
	if name == "" {
		return nil, models.ErrEmptyDeckName
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	deck, err := uow.DeckRepository().Create(ctx, discordID, name)
	if err != nil {
		return nil, err
	}

	uow.EventBus().Publish(events.DeckCreatedEvent{
		DiscordID: discordID,
		DeckName:  deck.Name,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return deck, nil
}

// List returns all of the player's decks
func (s *deckService) List(ctx context.Context, discordID int64) ([]*models.Deck, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	return uow.DeckRepository().ListByPlayer(ctx, discordID)
}

// Get returns a single deck by name
func (s *deckService) Get(ctx context.Context, discordID int64, name string) (*models.Deck, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	deck, err := uow.DeckRepository().GetByName(ctx, discordID, NormalizeDeckName(name))
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, fmt.Errorf("get deck %q: %w", name, models.ErrDeckNotFound)
	}

	return deck, nil
}

// AddCards moves cards from the player's collection into the deck
func (s *deckService) AddCards(ctx context.Context, discordID int64, deckName, rawSpec string) (*models.TransferResult, error) {
	spec, err := cardspec.Parse(rawSpec)
	if err != nil {
		return nil, err
	}
	return s.transfer(ctx, discordID, deckName, spec, events.DirectionToDeck)
}

// RemoveCards moves cards from the deck back into the player's collection
func (s *deckService) RemoveCards(ctx context.Context, discordID int64, deckName, rawSpec string) (*models.TransferResult, error) {
	spec, err := cardspec.Parse(rawSpec)
	if err != nil {
		return nil, err
	}
	return s.transfer(ctx, discordID, deckName, spec, events.DirectionToPlayer)
}

// transfer applies a parsed specification as a quantity delta between the
// player's collection and the named deck. All validation happens before any
// mutation; a specification either applies in full or not at all.
func (s *deckService) transfer(ctx context.Context, discordID int64, deckName string, spec []cardspec.Entry, direction events.TransferDirection) (*models.TransferResult, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	// Lock order is always player then deck to keep concurrent transfers
	// deadlock-free.
	player, err := uow.PlayerRepository().GetByDiscordIDForUpdate(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if player == nil {
		return nil, fmt.Errorf("transfer: %w (discord ID %d)", models.ErrPlayerNotFound, discordID)
	}

	deck, err := uow.DeckRepository().GetByNameForUpdate(ctx, discordID, NormalizeDeckName(deckName))
	if err != nil {
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}
	if deck == nil {
		return nil, fmt.Errorf("transfer to deck %q: %w", deckName, models.ErrDeckNotFound)
	}

	switch direction {
	case events.DirectionToDeck:
		if !cardspec.HasAll(player.Cards, spec) {
			return nil, fmt.Errorf("add to deck %q: %w", deck.Name, models.ErrInsufficientCards)
		}
		if !cardspec.ValidAddition(spec, deck) {
			return nil, fmt.Errorf("add to deck %q: %w", deck.Name, models.ErrDeckComposition)
		}
		applyDelta(player.Cards, deck.Cards, spec)
	case events.DirectionToPlayer:
		if !cardspec.HasAll(deck.Cards, spec) {
			return nil, fmt.Errorf("remove from deck %q: %w", deck.Name, models.ErrInsufficientCards)
		}
		applyDelta(deck.Cards, player.Cards, spec)
	default:
		return nil, fmt.Errorf("unknown transfer direction %q", direction)
	}

	if err := uow.PlayerRepository().UpdateCards(ctx, player.DiscordID, player.Cards); err != nil {
		return nil, fmt.Errorf("failed to persist player cards: %w", err)
	}
	if err := uow.DeckRepository().UpdateCards(ctx, deck.ID, deck.Cards); err != nil {
		return nil, fmt.Errorf("failed to persist deck cards: %w", err)
	}

	uow.EventBus().Publish(events.CardsTransferredEvent{
		DiscordID:  discordID,
		DeckName:   deck.Name,
		Direction:  direction,
		CardsMoved: cardspec.TotalQuantity(spec),
		DeckTotal:  deck.CardCount(),
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.TransferResult{
		Player:     player,
		Deck:       deck,
		CardsMoved: cardspec.TotalQuantity(spec),
	}, nil
}

// applyDelta moves each spec entry from one mapping to the other, in parser
// order, pruning entries that reach zero. Callers have already validated the
// source holds every requested quantity.
func applyDelta(from, to map[string]int, spec []cardspec.Entry) {
	for _, e := range spec {
		from[e.CardID] -= e.Quantity
		if from[e.CardID] <= 0 {
			delete(from, e.CardID)
		}
		to[e.CardID] += e.Quantity
	}
}

// Delete returns all of the deck's cards to the player and deletes the deck.
// A degenerate transfer: the deck's whole card mapping is the specification.
func (s *deckService) Delete(ctx context.Context, discordID int64, name string) (int, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	player, err := uow.PlayerRepository().GetByDiscordIDForUpdate(ctx, discordID)
	if err != nil {
		return 0, fmt.Errorf("failed to get player: %w", err)
	}
	if player == nil {
		return 0, fmt.Errorf("delete deck: %w (discord ID %d)", models.ErrPlayerNotFound, discordID)
	}

	deck, err := uow.DeckRepository().GetByNameForUpdate(ctx, discordID, NormalizeDeckName(name))
	if err != nil {
		return 0, fmt.Errorf("failed to get deck: %w", err)
	}
	if deck == nil {
		return 0, fmt.Errorf("delete deck %q: %w", name, models.ErrDeckNotFound)
	}

	returned := deck.CardCount()
	for cardID, qty := range deck.Cards {
		player.Cards[cardID] += qty
	}

	if err := uow.PlayerRepository().UpdateCards(ctx, player.DiscordID, player.Cards); err != nil {
		return 0, fmt.Errorf("failed to persist player cards: %w", err)
	}
	if err := uow.DeckRepository().Delete(ctx, deck.ID); err != nil {
		return 0, fmt.Errorf("failed to delete deck: %w", err)
	}

	uow.EventBus().Publish(events.DeckDeletedEvent{
		DiscordID:     discordID,
		DeckName:      deck.Name,
		CardsReturned: returned,
	})

	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return returned, nil
}

// SetDisplayCard sets the deck's presentation card. The display card is not
// constrained by deck-composition rules and need not be in the deck.
func (s *deckService) SetDisplayCard(ctx context.Context, discordID int64, name, cardID string) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	deck, err := uow.DeckRepository().GetByName(ctx, discordID, NormalizeDeckName(name))
	if err != nil {
		return err
	}
	if deck == nil {
		return fmt.Errorf("set display card on deck %q: %w", name, models.ErrDeckNotFound)
	}

	if err := uow.DeckRepository().SetDisplayCard(ctx, deck.ID, cardID); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
