package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	deckNameOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "name",
		Description: "Deck name",
		Required:    true,
	}
	cardSpecOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "cards",
		Description: "Card list as id:qty/id:qty, e.g. base1-4:2/base1-58",
		Required:    true,
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "deck",
			Description: "Create and manage your decks",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a new empty deck",
					Options:     []*discordgo.ApplicationCommandOption{deckNameOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "delete",
					Description: "Delete a deck and return its cards to your collection",
					Options:     []*discordgo.ApplicationCommandOption{deckNameOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Move cards from your collection into a deck",
					Options:     []*discordgo.ApplicationCommandOption{deckNameOption, cardSpecOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Move cards from a deck back to your collection",
					Options:     []*discordgo.ApplicationCommandOption{deckNameOption, cardSpecOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List your decks",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "view",
					Description: "Show a deck's contents and value",
					Options:     []*discordgo.ApplicationCommandOption{deckNameOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "display",
					Description: "Set the card shown when the deck is displayed",
					Options: []*discordgo.ApplicationCommandOption{
						deckNameOption,
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "card",
							Description: "Card ID to display",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name:        "collection",
			Description: "Show your card collection",
		},
		{
			Name:        "card",
			Description: "Look up a card in the catalog",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "id",
					Description: "Card ID, e.g. base1-4",
					Required:    true,
				},
			},
		},
		{
			Name:        "search",
			Description: "Search the card catalog by name",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "query",
					Description: "Card name to search for",
					Required:    true,
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}
