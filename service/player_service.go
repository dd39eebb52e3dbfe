package service

import (
	"context"
	"fmt"

	"poketcg/models"
)

// playerService implements the PlayerService interface
type playerService struct {
	uowFactory UnitOfWorkFactory
}

// NewPlayerService creates a new player service
func NewPlayerService(uowFactory UnitOfWorkFactory) PlayerService {
	return &playerService{
		uowFactory: uowFactory,
	}
}

// GetOrCreatePlayer retrieves an existing player or creates a new one with
// an empty collection. Players are created on first interaction and never
// deleted.
func (s *playerService) GetOrCreatePlayer(ctx context.Context, discordID int64, username string) (*models.Player, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	player, err := uow.PlayerRepository().GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing player: %w", err)
	}

	if player != nil {
		return player, nil
	}

	// Unique constraint on discord_id prevents duplicate players
	player, err = uow.PlayerRepository().Create(ctx, discordID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return player, nil
}
