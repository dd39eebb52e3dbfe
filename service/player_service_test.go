package service

import (
	"context"
	"errors"
	"testing"

	"poketcg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerService_GetOrCreatePlayer_Existing(t *testing.T) {
	ctx := context.Background()

	mockFactory, mockUoW, mockPlayerRepo, _ := newDeckServiceMocks(t)
	service := NewPlayerService(mockFactory)

	existing := &models.Player{DiscordID: 123456, Username: "ash", Cards: map[string]int{"A": 2}}

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	// No Commit expected: nothing changed.
	mockPlayerRepo.On("GetByDiscordID", ctx, int64(123456)).Return(existing, nil)

	player, err := service.GetOrCreatePlayer(ctx, 123456, "ash")

	require.NoError(t, err)
	assert.Equal(t, existing, player)

	mockUoW.AssertNotCalled(t, "Commit")
	mockPlayerRepo.AssertExpectations(t)
}

func TestPlayerService_GetOrCreatePlayer_New(t *testing.T) {
	ctx := context.Background()

	mockFactory, mockUoW, mockPlayerRepo, _ := newDeckServiceMocks(t)
	service := NewPlayerService(mockFactory)

	created := &models.Player{DiscordID: 123456, Username: "misty", Cards: map[string]int{}}

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockPlayerRepo.On("GetByDiscordID", ctx, int64(123456)).Return(nil, nil)
	mockPlayerRepo.On("Create", ctx, int64(123456), "misty").Return(created, nil)

	player, err := service.GetOrCreatePlayer(ctx, 123456, "misty")

	require.NoError(t, err)
	assert.Equal(t, created, player)
	assert.Empty(t, player.Cards)

	mockUoW.AssertExpectations(t)
	mockPlayerRepo.AssertExpectations(t)
}

func TestPlayerService_GetOrCreatePlayer_CreateError(t *testing.T) {
	ctx := context.Background()

	mockFactory, mockUoW, mockPlayerRepo, _ := newDeckServiceMocks(t)
	service := NewPlayerService(mockFactory)

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockPlayerRepo.On("GetByDiscordID", ctx, int64(123456)).Return(nil, nil)
	mockPlayerRepo.On("Create", ctx, int64(123456), "brock").Return(nil, errors.New("database error"))

	player, err := service.GetOrCreatePlayer(ctx, 123456, "brock")

	assert.Error(t, err)
	assert.Nil(t, player)
	assert.Contains(t, err.Error(), "failed to create player")
	mockUoW.AssertNotCalled(t, "Commit")
}
