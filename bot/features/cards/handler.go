package cards

import (
	"context"
	"fmt"
	"strings"

	"poketcg/bot/common"
	"poketcg/models"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const embedColor = 0xFF3214

func (f *Feature) handleCard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "You didn't provide a card ID.")
		return
	}
	cardID := options[0].StringValue()

	if err := common.DeferResponse(s, i); err != nil {
		log.Errorf("Error deferring card response: %v", err)
		return
	}

	card, err := f.catalog.Card(context.Background(), cardID)
	if err != nil {
		log.Errorf("Error fetching card %q: %v", cardID, err)
		common.FollowUpWithError(s, i, "Couldn't reach the card catalog. Please try again later.")
		return
	}

	common.FollowUpWithEmbed(s, i, buildCardEmbed(card))
}

func (f *Feature) handleSearch(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "You didn't provide a search term.")
		return
	}
	term := options[0].StringValue()

	if err := common.DeferResponse(s, i); err != nil {
		log.Errorf("Error deferring search response: %v", err)
		return
	}

	results, err := f.catalog.Search(context.Background(), fmt.Sprintf("name:%q", term))
	if err != nil {
		log.Errorf("Error searching cards for %q: %v", term, err)
		common.FollowUpWithError(s, i, "Couldn't reach the card catalog. Please try again later.")
		return
	}

	if len(results) == 0 {
		common.FollowUpWithContent(s, i, fmt.Sprintf("No cards found matching **%s**.", term))
		return
	}

	common.FollowUpWithEmbed(s, i, buildSearchEmbed(term, results))
}

func buildCardEmbed(card *models.Card) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: card.Name,
		Description: fmt.Sprintf("**ID:** %s\n**Set:** %s #%s\n**Rarity:** %s\n**Price:** %s",
			card.ID, card.Set.Name, card.Number, card.Rarity, common.FormatPrice(card.Price)),
		Color: embedColor,
		Image: &discordgo.MessageEmbedImage{URL: card.Image},
	}
}

func buildSearchEmbed(term string, results []*models.Card) *discordgo.MessageEmbed {
	const maxListed = 20

	var b strings.Builder
	for idx, card := range results {
		if idx == maxListed {
			fmt.Fprintf(&b, "…and %d more", len(results)-maxListed)
			break
		}
		fmt.Fprintf(&b, "`%s` %s (%s)\n", card.ID, card.Name, common.FormatPrice(card.Price))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Cards matching \"%s\"", term),
		Description: b.String(),
		Color:       embedColor,
	}
}
