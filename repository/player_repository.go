package repository

import (
	"context"
	"fmt"

	"poketcg/database"
	"poketcg/models"

	"github.com/jackc/pgx/v5"
)

// PlayerRepository implements the service.PlayerRepository interface
type PlayerRepository struct {
	q queryable
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *database.DB) *PlayerRepository {
	return &PlayerRepository{q: db.Pool}
}

// newPlayerRepositoryWithTx creates a new player repository bound to a transaction
func newPlayerRepositoryWithTx(tx queryable) *PlayerRepository {
	return &PlayerRepository{q: tx}
}

// GetByDiscordID retrieves a player by their Discord ID
func (r *PlayerRepository) GetByDiscordID(ctx context.Context, discordID int64) (*models.Player, error) {
	return r.get(ctx, discordID, false)
}

// GetByDiscordIDForUpdate retrieves a player and takes a row lock for the
// duration of the enclosing transaction. Concurrent transfers touching the
// same player serialize on this lock.
func (r *PlayerRepository) GetByDiscordIDForUpdate(ctx context.Context, discordID int64) (*models.Player, error) {
	return r.get(ctx, discordID, true)
}

func (r *PlayerRepository) get(ctx context.Context, discordID int64, forUpdate bool) (*models.Player, error) {
	query := `
		SELECT discord_id, username, cards, created_at, updated_at
		FROM players
		WHERE discord_id = $1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var player models.Player
	err := r.q.QueryRow(ctx, query, discordID).Scan(
		&player.DiscordID,
		&player.Username,
		&player.Cards,
		&player.CreatedAt,
		&player.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player by discord ID %d: %w", discordID, err)
	}

	if player.Cards == nil {
		player.Cards = make(map[string]int)
	}

	return &player, nil
}

// Create creates a new player with an empty collection
func (r *PlayerRepository) Create(ctx context.Context, discordID int64, username string) (*models.Player, error) {
	query := `
		INSERT INTO players (discord_id, username)
		VALUES ($1, $2)
		RETURNING discord_id, username, cards, created_at, updated_at
	`

	var player models.Player
	err := r.q.QueryRow(ctx, query, discordID, username).Scan(
		&player.DiscordID,
		&player.Username,
		&player.Cards,
		&player.CreatedAt,
		&player.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create player with discord ID %d: %w", discordID, err)
	}

	if player.Cards == nil {
		player.Cards = make(map[string]int)
	}

	return &player, nil
}

// UpdateCards rewrites a player's full card mapping
func (r *PlayerRepository) UpdateCards(ctx context.Context, discordID int64, cards map[string]int) error {
	if cards == nil {
		cards = map[string]int{}
	}

	query := `
		UPDATE players
		SET cards = $1, updated_at = NOW()
		WHERE discord_id = $2
	`

	result, err := r.q.Exec(ctx, query, cards, discordID)
	if err != nil {
		return fmt.Errorf("failed to update cards for player %d: %w", discordID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update cards: %w (discord ID %d)", models.ErrPlayerNotFound, discordID)
	}

	return nil
}
