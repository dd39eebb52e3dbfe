package service

import (
	"context"

	"poketcg/events"
	"poketcg/models"

	"github.com/stretchr/testify/mock"
)

// MockPlayerRepository is a mock implementation of PlayerRepository
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) GetByDiscordID(ctx context.Context, discordID int64) (*models.Player, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockPlayerRepository) GetByDiscordIDForUpdate(ctx context.Context, discordID int64) (*models.Player, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockPlayerRepository) Create(ctx context.Context, discordID int64, username string) (*models.Player, error) {
	args := m.Called(ctx, discordID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockPlayerRepository) UpdateCards(ctx context.Context, discordID int64, cards map[string]int) error {
	args := m.Called(ctx, discordID, cards)
	return args.Error(0)
}

// MockDeckRepository is a mock implementation of DeckRepository
type MockDeckRepository struct {
	mock.Mock
}

func (m *MockDeckRepository) GetByName(ctx context.Context, discordID int64, name string) (*models.Deck, error) {
	args := m.Called(ctx, discordID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deck), args.Error(1)
}

func (m *MockDeckRepository) GetByNameForUpdate(ctx context.Context, discordID int64, name string) (*models.Deck, error) {
	args := m.Called(ctx, discordID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deck), args.Error(1)
}

func (m *MockDeckRepository) ListByPlayer(ctx context.Context, discordID int64) ([]*models.Deck, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Deck), args.Error(1)
}

func (m *MockDeckRepository) Create(ctx context.Context, discordID int64, name string) (*models.Deck, error) {
	args := m.Called(ctx, discordID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deck), args.Error(1)
}

func (m *MockDeckRepository) UpdateCards(ctx context.Context, deckID int64, cards map[string]int) error {
	args := m.Called(ctx, deckID, cards)
	return args.Error(0)
}

func (m *MockDeckRepository) SetDisplayCard(ctx context.Context, deckID int64, cardID string) error {
	args := m.Called(ctx, deckID, cardID)
	return args.Error(0)
}

func (m *MockDeckRepository) Delete(ctx context.Context, deckID int64) error {
	args := m.Called(ctx, deckID)
	return args.Error(0)
}

// MockEventPublisher records published events for assertions
type MockEventPublisher struct {
	Published []events.Event
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Published = append(m.Published, event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	playerRepo PlayerRepository
	deckRepo   DeckRepository
	eventBus   *MockEventPublisher
}

// SetRepositories configures which repositories the unit of work hands out
func (m *MockUnitOfWork) SetRepositories(playerRepo PlayerRepository, deckRepo DeckRepository) {
	m.playerRepo = playerRepo
	m.deckRepo = deckRepo
	m.eventBus = &MockEventPublisher{}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) PlayerRepository() PlayerRepository {
	return m.playerRepo
}

func (m *MockUnitOfWork) DeckRepository() DeckRepository {
	return m.deckRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.eventBus
}

// PublishedEvents returns the events staged on this unit of work
func (m *MockUnitOfWork) PublishedEvents() []events.Event {
	return m.eventBus.Published
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
