package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"poketcg/bot"
	"poketcg/catalog"
	"poketcg/config"
	"poketcg/database"
	"poketcg/events"
	"poketcg/repository"
	"poketcg/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting poketcg bot...")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.Info("Connecting to record store...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	eventBus := events.NewBus()
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	playerService := service.NewPlayerService(uowFactory)
	deckService := service.NewDeckService(uowFactory)
	catalogClient := catalog.New(cfg.CatalogBaseURL, cfg.CatalogAPIKey)

	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:                 cfg.DiscordToken,
		GuildID:               cfg.DiscordGuildID,
		DeckAnnounceChannelID: cfg.DeckAnnounceChannelID,
	}
	discordBot, err := bot.New(botConfig, playerService, deckService, catalogClient, eventBus)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}
