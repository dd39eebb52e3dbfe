package repository

import (
	"context"
	"testing"

	"poketcg/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepository_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewPlayerRepository(testDB.DB)
	ctx := context.Background()

	created, err := repo.Create(ctx, 123456, "ash")
	require.NoError(t, err)
	assert.Equal(t, int64(123456), created.DiscordID)
	assert.Equal(t, "ash", created.Username)
	assert.Empty(t, created.Cards)

	fetched, err := repo.GetByDiscordID(ctx, 123456)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, created.DiscordID, fetched.DiscordID)
	assert.NotNil(t, fetched.Cards)
}

func TestPlayerRepository_GetMissingReturnsNil(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewPlayerRepository(testDB.DB)

	player, err := repo.GetByDiscordID(context.Background(), 999999)
	require.NoError(t, err)
	assert.Nil(t, player)
}

func TestPlayerRepository_UpdateCards(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewPlayerRepository(testDB.DB)
	ctx := context.Background()

	testutil.CreatePlayer(t, testDB.DB, 123456, "ash", map[string]int{"base1-4": 2})

	err := repo.UpdateCards(ctx, 123456, map[string]int{"base1-4": 1, "base1-58": 3})
	require.NoError(t, err)

	player, err := repo.GetByDiscordID(ctx, 123456)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"base1-4": 1, "base1-58": 3}, player.Cards)
}

func TestPlayerRepository_UpdateCards_MissingPlayer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewPlayerRepository(testDB.DB)

	err := repo.UpdateCards(context.Background(), 999999, map[string]int{"base1-4": 1})
	assert.Error(t, err)
}
