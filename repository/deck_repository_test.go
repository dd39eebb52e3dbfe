package repository

import (
	"context"
	"testing"

	"poketcg/models"
	"poketcg/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckRepository_CreateAndGetByName(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewDeckRepository(testDB.DB)
	ctx := context.Background()

	testutil.CreatePlayer(t, testDB.DB, 123456, "ash", nil)

	created, err := repo.Create(ctx, 123456, "fire")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "fire", created.Name)
	assert.Empty(t, created.Cards)

	fetched, err := repo.GetByName(ctx, 123456, "fire")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestDeckRepository_Create_DuplicateName(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewDeckRepository(testDB.DB)
	ctx := context.Background()

	testutil.CreatePlayer(t, testDB.DB, 123456, "ash", nil)

	_, err := repo.Create(ctx, 123456, "fire")
	require.NoError(t, err)

	_, err = repo.Create(ctx, 123456, "fire")
	assert.ErrorIs(t, err, models.ErrDeckNameTaken)

	// A different player can reuse the name.
	testutil.CreatePlayer(t, testDB.DB, 654321, "misty", nil)
	_, err = repo.Create(ctx, 654321, "fire")
	assert.NoError(t, err)
}

func TestDeckRepository_ListByPlayer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewDeckRepository(testDB.DB)
	ctx := context.Background()

	testutil.CreatePlayer(t, testDB.DB, 123456, "ash", nil)
	testutil.CreateDeck(t, testDB.DB, 123456, "water", map[string]int{"base1-2": 1})
	testutil.CreateDeck(t, testDB.DB, 123456, "fire", nil)

	decks, err := repo.ListByPlayer(ctx, 123456)
	require.NoError(t, err)
	require.Len(t, decks, 2)
	assert.Equal(t, "fire", decks[0].Name)
	assert.Equal(t, "water", decks[1].Name)

	decks, err = repo.ListByPlayer(ctx, 999999)
	require.NoError(t, err)
	assert.Empty(t, decks)
}

func TestDeckRepository_UpdateCardsAndDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewDeckRepository(testDB.DB)
	ctx := context.Background()

	testutil.CreatePlayer(t, testDB.DB, 123456, "ash", nil)
	deck := testutil.CreateDeck(t, testDB.DB, 123456, "fire", map[string]int{"base1-4": 2})

	err := repo.UpdateCards(ctx, deck.ID, map[string]int{"base1-4": 4, "base1-23": 1})
	require.NoError(t, err)

	fetched, err := repo.GetByName(ctx, 123456, "fire")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"base1-4": 4, "base1-23": 1}, fetched.Cards)

	require.NoError(t, repo.Delete(ctx, deck.ID))

	fetched, err = repo.GetByName(ctx, 123456, "fire")
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestDeckRepository_SetDisplayCard(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewDeckRepository(testDB.DB)
	ctx := context.Background()

	testutil.CreatePlayer(t, testDB.DB, 123456, "ash", nil)
	deck := testutil.CreateDeck(t, testDB.DB, 123456, "fire", nil)

	require.NoError(t, repo.SetDisplayCard(ctx, deck.ID, "base1-4"))

	fetched, err := repo.GetByName(ctx, 123456, "fire")
	require.NoError(t, err)
	assert.Equal(t, "base1-4", fetched.DisplayCard)
}
