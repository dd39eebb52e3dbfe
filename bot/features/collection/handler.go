package collection

import (
	"context"
	"fmt"
	"strconv"

	"poketcg/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleCommand shows the caller's collection with its catalog value
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	player, err := f.playerService.GetOrCreatePlayer(ctx, discordID, i.Member.User.Username)
	if err != nil {
		log.Errorf("Error getting player %d: %v", discordID, err)
		common.RespondWithError(s, i, common.UserMessage(err))
		return
	}

	if len(player.Cards) == 0 {
		common.RespondWithContent(s, i, "Your collection is empty.")
		return
	}

	if err := common.DeferResponse(s, i); err != nil {
		log.Errorf("Error deferring collection response: %v", err)
		return
	}

	ids := make([]string, 0, len(player.Cards))
	for id := range player.Cards {
		ids = append(ids, id)
	}

	// Collection value is best-effort; the listing renders without it.
	value := 0.0
	if cards, err := f.catalog.CardsByID(ctx, ids); err != nil {
		log.Errorf("Error pricing collection for %d: %v", discordID, err)
	} else {
		for _, card := range cards {
			value += card.Price * float64(player.Cards[card.ID])
		}
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's collection", i.Member.User.Username),
		Description: fmt.Sprintf("**Cards:** %d (%d unique)\n**Value:** %s\n\n%s",
			player.CardCount(), len(player.Cards),
			common.FormatPrice(value), common.FormatCardMapping(player.Cards)),
		Color: 0xFF3214,
	}
	common.FollowUpWithEmbed(s, i, embed)
}
