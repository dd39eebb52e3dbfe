package models

import (
	"time"
)

// Player represents a Discord user and their card collection
type Player struct {
	DiscordID int64          `db:"discord_id"`
	Username  string         `db:"username"`
	Cards     map[string]int `db:"cards"` // card ID -> owned quantity, no zero entries
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// CardCount returns the total number of cards in the player's collection.
func (p *Player) CardCount() int {
	total := 0
	for _, qty := range p.Cards {
		total += qty
	}
	return total
}

// Quantity returns the owned quantity for a card, 0 if the player has none.
func (p *Player) Quantity(cardID string) int {
	return p.Cards[cardID]
}
