package repository

import (
	"context"
	"errors"
	"fmt"

	"poketcg/database"
	"poketcg/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DeckRepository implements the service.DeckRepository interface
type DeckRepository struct {
	q queryable
}

// NewDeckRepository creates a new deck repository
func NewDeckRepository(db *database.DB) *DeckRepository {
	return &DeckRepository{q: db.Pool}
}

// newDeckRepositoryWithTx creates a new deck repository bound to a transaction
func newDeckRepositoryWithTx(tx queryable) *DeckRepository {
	return &DeckRepository{q: tx}
}

const deckColumns = "id, discord_id, name, cards, display_card, created_at, updated_at"

func scanDeck(row pgx.Row) (*models.Deck, error) {
	var deck models.Deck
	err := row.Scan(
		&deck.ID,
		&deck.DiscordID,
		&deck.Name,
		&deck.Cards,
		&deck.DisplayCard,
		&deck.CreatedAt,
		&deck.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if deck.Cards == nil {
		deck.Cards = make(map[string]int)
	}
	return &deck, nil
}

// GetByName retrieves a deck by its owner and name. Names are stored
// lower-cased; callers normalize before lookup.
func (r *DeckRepository) GetByName(ctx context.Context, discordID int64, name string) (*models.Deck, error) {
	return r.getByName(ctx, discordID, name, false)
}

// GetByNameForUpdate retrieves a deck and takes a row lock for the duration
// of the enclosing transaction.
func (r *DeckRepository) GetByNameForUpdate(ctx context.Context, discordID int64, name string) (*models.Deck, error) {
	return r.getByName(ctx, discordID, name, true)
}

func (r *DeckRepository) getByName(ctx context.Context, discordID int64, name string, forUpdate bool) (*models.Deck, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM decks
		WHERE discord_id = $1 AND name = $2
	`, deckColumns)
	if forUpdate {
		query += " FOR UPDATE"
	}

	deck, err := scanDeck(r.q.QueryRow(ctx, query, discordID, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deck %q for player %d: %w", name, discordID, err)
	}

	return deck, nil
}

// ListByPlayer returns all of a player's decks ordered by name
func (r *DeckRepository) ListByPlayer(ctx context.Context, discordID int64) ([]*models.Deck, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM decks
		WHERE discord_id = $1
		ORDER BY name
	`, deckColumns)

	rows, err := r.q.Query(ctx, query, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks for player %d: %w", discordID, err)
	}
	defer rows.Close()

	var decks []*models.Deck
	for rows.Next() {
		deck, err := scanDeck(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deck: %w", err)
		}
		decks = append(decks, deck)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate decks: %w", err)
	}

	return decks, nil
}

// Create inserts a new empty deck. Returns models.ErrDeckNameTaken if the
// player already has a deck with that name.
func (r *DeckRepository) Create(ctx context.Context, discordID int64, name string) (*models.Deck, error) {
	query := fmt.Sprintf(`
		INSERT INTO decks (discord_id, name)
		VALUES ($1, $2)
		RETURNING %s
	`, deckColumns)

	deck, err := scanDeck(r.q.QueryRow(ctx, query, discordID, name))
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation on (discord_id, name)
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("create deck %q: %w", name, models.ErrDeckNameTaken)
		}
		return nil, fmt.Errorf("failed to create deck %q for player %d: %w", name, discordID, err)
	}

	return deck, nil
}

// UpdateCards rewrites a deck's full card mapping
func (r *DeckRepository) UpdateCards(ctx context.Context, deckID int64, cards map[string]int) error {
	if cards == nil {
		cards = map[string]int{}
	}

	query := `
		UPDATE decks
		SET cards = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.q.Exec(ctx, query, cards, deckID)
	if err != nil {
		return fmt.Errorf("failed to update cards for deck %d: %w", deckID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update cards: %w (deck ID %d)", models.ErrDeckNotFound, deckID)
	}

	return nil
}

// SetDisplayCard sets the card shown when the deck is presented
func (r *DeckRepository) SetDisplayCard(ctx context.Context, deckID int64, cardID string) error {
	query := `
		UPDATE decks
		SET display_card = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.q.Exec(ctx, query, cardID, deckID)
	if err != nil {
		return fmt.Errorf("failed to set display card for deck %d: %w", deckID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("set display card: %w (deck ID %d)", models.ErrDeckNotFound, deckID)
	}

	return nil
}

// Delete removes a deck record by ID
func (r *DeckRepository) Delete(ctx context.Context, deckID int64) error {
	result, err := r.q.Exec(ctx, `DELETE FROM decks WHERE id = $1`, deckID)
	if err != nil {
		return fmt.Errorf("failed to delete deck %d: %w", deckID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete: %w (deck ID %d)", models.ErrDeckNotFound, deckID)
	}

	return nil
}
