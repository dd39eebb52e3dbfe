package models

import (
	"time"
)

// DeckSize is the number of cards a complete deck must contain.
const DeckSize = 60

// MaxCopiesPerCard is the maximum number of copies of a single card a deck may hold.
const MaxCopiesPerCard = 4

// Deck represents a named, per-player deck of cards
type Deck struct {
	ID          int64          `db:"id"`
	DiscordID   int64          `db:"discord_id"`
	Name        string         `db:"name"` // lower-cased, unique per player
	Cards       map[string]int `db:"cards"` // card ID -> included quantity, 1..4, no zero entries
	DisplayCard string         `db:"display_card"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// CardCount returns the total number of cards currently in the deck.
func (d *Deck) CardCount() int {
	total := 0
	for _, qty := range d.Cards {
		total += qty
	}
	return total
}

// IsComplete reports whether the deck holds exactly DeckSize cards.
// Incomplete decks are allowed to exist; only complete decks are playable.
func (d *Deck) IsComplete() bool {
	return d.CardCount() == DeckSize
}

// Quantity returns the deck's quantity for a card, 0 if absent.
func (d *Deck) Quantity(cardID string) int {
	return d.Cards[cardID]
}
