package bot

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"poketcg/bot/features/cards"
	"poketcg/bot/features/collection"
	"poketcg/bot/features/decks"
	"poketcg/events"
	"poketcg/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token                 string
	GuildID               string
	DeckAnnounceChannelID string
}

// Bot owns the Discord session and routes interactions to feature handlers.
// All collaborators are injected; the bot holds no storage state of its own.
type Bot struct {
	config   Config
	session  *discordgo.Session
	eventBus *events.Bus

	decksFeature      *decks.Feature
	collectionFeature *collection.Feature
	cardsFeature      *cards.Feature
}

// New creates the bot, connects the session and registers slash commands
func New(config Config, playerService service.PlayerService, deckService service.DeckService, catalog service.CardCatalog, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:            config,
		session:           dg,
		eventBus:          eventBus,
		decksFeature:      decks.New(deckService, playerService, catalog),
		collectionFeature: collection.New(playerService, catalog),
		cardsFeature:      cards.New(catalog),
	}

	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleComponentInteractions)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Announce completed decks when transfers fill one up.
	if config.DeckAnnounceChannelID != "" {
		eventBus.Subscribe(events.EventTypeCardsTransferred,
			bot.decksFeature.HandleEvent(dg, config.DeckAnnounceChannelID))
		log.Info("Completed-deck announcements enabled")
	}

	return bot, nil
}

// Close shuts down the Discord session
func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "deck":
		b.decksFeature.HandleCommand(s, i)
	case "collection":
		b.collectionFeature.HandleCommand(s, i)
	case "card", "search":
		b.cardsFeature.HandleCommand(s, i)
	}
}

func (b *Bot) handleComponentInteractions(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	if strings.HasPrefix(i.MessageComponentData().CustomID, "deck_delete_") {
		b.decksFeature.HandleComponent(s, i)
	}
}
