package common

import (
	"errors"
	"fmt"

	"poketcg/models"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// UserMessage maps a service error to the reply shown to the player.
// Domain sentinels get specific messages; anything else is an infrastructure
// failure and gets a generic transient-failure reply, with the detail kept
// in the logs.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrPlayerNotFound):
		return "You don't have a collection yet. Open a pack first!"
	case errors.Is(err, models.ErrDeckNotFound):
		return "You don't have a deck with that name."
	case errors.Is(err, models.ErrDeckNameTaken):
		return "You already have a deck with that name!"
	case errors.Is(err, models.ErrInsufficientCards):
		return "You don't have enough of those cards."
	case errors.Is(err, models.ErrDeckComposition):
		return fmt.Sprintf("That would break the deck rules: at most %d cards total and %d copies of any card.",
			models.DeckSize, models.MaxCopiesPerCard)
	case errors.Is(err, models.ErrEmptySpec):
		return "I couldn't read any cards from that list. Use `id:qty/id:qty`, e.g. `base1-4:2/base1-58`."
	case errors.Is(err, models.ErrEmptyDeckName):
		return "You didn't provide a deck name."
	default:
		return "Something went wrong. Please try again later."
	}
}

// RespondWithError sends an ephemeral error message as an interaction response
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("❌ %s", message),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

// FollowUpWithError sends an ephemeral error as a follow-up to a deferred interaction
func FollowUpWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	_, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Content: fmt.Sprintf("❌ %s", message),
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Errorf("Error sending follow-up error message: %v", err)
	}
}
