package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Record store configuration
	DatabaseURL string

	// Card catalog configuration
	CatalogBaseURL string
	CatalogAPIKey  string

	// Channel where completed decks are announced; empty disables the feature
	DeckAnnounceChannelID string

	// Environment: "development", "production" or "test"
	Environment string
}

// Load reads configuration from environment variables. The returned config
// is passed explicitly through cmd.Run; there is no package-level instance.
func Load() (*Config, error) {
	config := &Config{
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		CatalogBaseURL: os.Getenv("CATALOG_BASE_URL"),
		CatalogAPIKey:  os.Getenv("CATALOG_API_KEY"),

		DeckAnnounceChannelID: os.Getenv("DECK_ANNOUNCE_CHANNEL_ID"),

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}
