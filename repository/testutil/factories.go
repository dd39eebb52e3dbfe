package testutil

import (
	"context"
	"testing"

	"poketcg/database"
	"poketcg/models"

	"github.com/stretchr/testify/require"
)

// CreatePlayer inserts a player row with the given collection
func CreatePlayer(t *testing.T, db *database.DB, discordID int64, username string, cards map[string]int) *models.Player {
	t.Helper()

	if cards == nil {
		cards = map[string]int{}
	}

	var player models.Player
	err := db.QueryRow(context.Background(), `
		INSERT INTO players (discord_id, username, cards)
		VALUES ($1, $2, $3)
		RETURNING discord_id, username, cards, created_at, updated_at
	`, discordID, username, cards).Scan(
		&player.DiscordID,
		&player.Username,
		&player.Cards,
		&player.CreatedAt,
		&player.UpdatedAt,
	)
	require.NoError(t, err)

	return &player
}

// CreateDeck inserts a deck row with the given cards
func CreateDeck(t *testing.T, db *database.DB, discordID int64, name string, cards map[string]int) *models.Deck {
	t.Helper()

	if cards == nil {
		cards = map[string]int{}
	}

	var deck models.Deck
	err := db.QueryRow(context.Background(), `
		INSERT INTO decks (discord_id, name, cards)
		VALUES ($1, $2, $3)
		RETURNING id, discord_id, name, cards, display_card, created_at, updated_at
	`, discordID, name, cards).Scan(
		&deck.ID,
		&deck.DiscordID,
		&deck.Name,
		&deck.Cards,
		&deck.DisplayCard,
		&deck.CreatedAt,
		&deck.UpdatedAt,
	)
	require.NoError(t, err)

	return &deck
}
