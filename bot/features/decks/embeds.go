package decks

import (
	"fmt"

	"poketcg/bot/common"
	"poketcg/models"

	"github.com/bwmarrin/discordgo"
)

const embedColor = 0xFF3214

func buildDeckEmbed(deck *models.Deck, value float64, imageURL string) *discordgo.MessageEmbed {
	status := "incomplete"
	if deck.IsComplete() {
		status = "ready to play"
	}

	embed := &discordgo.MessageEmbed{
		Title: deck.Name,
		Description: fmt.Sprintf("**Cards:** %d/%d (%s)\n**Value:** %s\n\n%s",
			deck.CardCount(), models.DeckSize, status,
			common.FormatPrice(value), common.FormatCardMapping(deck.Cards)),
		Color: embedColor,
	}

	if imageURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: imageURL}
	}

	return embed
}

func buildDeckListEmbed(username string, decks []*models.Deck) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(decks))
	for _, deck := range decks {
		status := "incomplete"
		if deck.IsComplete() {
			status = "complete"
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   deck.Name,
			Value:  fmt.Sprintf("%d/%d cards (%s)", deck.CardCount(), models.DeckSize, status),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("%s's decks", username),
		Fields: fields,
		Color:  embedColor,
	}
}
