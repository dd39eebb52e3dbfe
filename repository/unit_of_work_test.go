package repository

import (
	"context"
	"testing"

	"poketcg/events"
	"poketcg/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_CommitAppliesBothWrites(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	testutil.CreatePlayer(t, testDB.DB, 123456, "ash", map[string]int{"base1-4": 3})
	deck := testutil.CreateDeck(t, testDB.DB, 123456, "fire", nil)

	bus := events.NewBus()
	var received []events.Event
	bus.Subscribe(events.EventTypeCardsTransferred, func(ctx context.Context, e events.Event) {
		received = append(received, e)
	})

	factory := NewUnitOfWorkFactory(testDB.DB, bus)
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	require.NoError(t, uow.PlayerRepository().UpdateCards(ctx, 123456, map[string]int{"base1-4": 1}))
	require.NoError(t, uow.DeckRepository().UpdateCards(ctx, deck.ID, map[string]int{"base1-4": 2}))
	uow.EventBus().Publish(events.CardsTransferredEvent{
		DiscordID: 123456,
		DeckName:  "fire",
		Direction: events.DirectionToDeck,
	})
	require.NoError(t, uow.Commit())

	repo := NewPlayerRepository(testDB.DB)
	player, err := repo.GetByDiscordID(ctx, 123456)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"base1-4": 1}, player.Cards)

	decks := NewDeckRepository(testDB.DB)
	fetched, err := decks.GetByName(ctx, 123456, "fire")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"base1-4": 2}, fetched.Cards)

	require.Len(t, received, 1, "staged event should be flushed on commit")
}

func TestUnitOfWork_RollbackLeavesStateUntouched(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	testutil.CreatePlayer(t, testDB.DB, 123456, "ash", map[string]int{"base1-4": 3})
	deck := testutil.CreateDeck(t, testDB.DB, 123456, "fire", nil)

	bus := events.NewBus()
	var received []events.Event
	bus.Subscribe(events.EventTypeCardsTransferred, func(ctx context.Context, e events.Event) {
		received = append(received, e)
	})

	factory := NewUnitOfWorkFactory(testDB.DB, bus)
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	require.NoError(t, uow.PlayerRepository().UpdateCards(ctx, 123456, map[string]int{}))
	require.NoError(t, uow.DeckRepository().UpdateCards(ctx, deck.ID, map[string]int{"base1-4": 3}))
	uow.EventBus().Publish(events.CardsTransferredEvent{
		DiscordID: 123456,
		DeckName:  "fire",
		Direction: events.DirectionToDeck,
	})
	require.NoError(t, uow.Rollback())

	repo := NewPlayerRepository(testDB.DB)
	player, err := repo.GetByDiscordID(ctx, 123456)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"base1-4": 3}, player.Cards, "player collection must be unchanged after rollback")

	decks := NewDeckRepository(testDB.DB)
	fetched, err := decks.GetByName(ctx, 123456, "fire")
	require.NoError(t, err)
	assert.Empty(t, fetched.Cards, "deck must be unchanged after rollback")

	assert.Empty(t, received, "staged events must be discarded on rollback")
}

func TestUnitOfWork_RollbackAfterCommitIsNoop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	testutil.CreatePlayer(t, testDB.DB, 123456, "ash", nil)

	factory := NewUnitOfWorkFactory(testDB.DB, events.NewBus())
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.PlayerRepository().UpdateCards(ctx, 123456, map[string]int{"base1-4": 1}))
	require.NoError(t, uow.Commit())
	require.NoError(t, uow.Rollback())
}
