package decks

import (
	"context"
	"fmt"
	"strconv"

	"poketcg/bot/common"
	"poketcg/events"
	"poketcg/models"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func callerDiscordID(i *discordgo.InteractionCreate) (int64, error) {
	return strconv.ParseInt(i.Member.User.ID, 10, 64)
}

// ensurePlayer lazily creates the caller's player record on first interaction
func (f *Feature) ensurePlayer(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) (int64, bool) {
	discordID, err := callerDiscordID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return 0, false
	}

	if _, err := f.playerService.GetOrCreatePlayer(ctx, discordID, i.Member.User.Username); err != nil {
		log.Errorf("Error ensuring player %d: %v", discordID, err)
		common.RespondWithError(s, i, common.UserMessage(err))
		return 0, false
	}

	return discordID, true
}

func optionValue(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func (f *Feature) handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	discordID, ok := f.ensurePlayer(ctx, s, i)
	if !ok {
		return
	}

	deck, err := f.deckService.Create(ctx, discordID, optionValue(options, "name"))
	if err != nil {
		log.Errorf("Error creating deck for %d: %v", discordID, err)
		common.RespondWithError(s, i, common.UserMessage(err))
		return
	}

	common.RespondWithContent(s, i, fmt.Sprintf("You created the deck **%s**.", deck.Name))
}

func (f *Feature) handleAdd(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	discordID, ok := f.ensurePlayer(ctx, s, i)
	if !ok {
		return
	}

	name := optionValue(options, "name")
	result, err := f.deckService.AddCards(ctx, discordID, name, optionValue(options, "cards"))
	if err != nil {
		log.Errorf("Error adding cards to deck %q for %d: %v", name, discordID, err)
		common.RespondWithError(s, i, common.UserMessage(err))
		return
	}

	common.RespondWithContent(s, i, fmt.Sprintf("Added **%d** card(s) to **%s** (%d/%d).",
		result.CardsMoved, result.Deck.Name, result.Deck.CardCount(), models.DeckSize))
}

func (f *Feature) handleRemove(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	discordID, ok := f.ensurePlayer(ctx, s, i)
	if !ok {
		return
	}

	name := optionValue(options, "name")
	result, err := f.deckService.RemoveCards(ctx, discordID, name, optionValue(options, "cards"))
	if err != nil {
		log.Errorf("Error removing cards from deck %q for %d: %v", name, discordID, err)
		common.RespondWithError(s, i, common.UserMessage(err))
		return
	}

	common.RespondWithContent(s, i, fmt.Sprintf("Returned **%d** card(s) from **%s** to your collection (%d/%d).",
		result.CardsMoved, result.Deck.Name, result.Deck.CardCount(), models.DeckSize))
}

func (f *Feature) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, ok := f.ensurePlayer(ctx, s, i)
	if !ok {
		return
	}

	decks, err := f.deckService.List(ctx, discordID)
	if err != nil {
		log.Errorf("Error listing decks for %d: %v", discordID, err)
		common.RespondWithError(s, i, common.UserMessage(err))
		return
	}

	if len(decks) == 0 {
		common.RespondWithContent(s, i, "You don't have any decks! Use **/deck create** to create one!")
		return
	}

	common.RespondWithEmbed(s, i, buildDeckListEmbed(i.Member.User.Username, decks))
}

func (f *Feature) handleView(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	discordID, ok := f.ensurePlayer(ctx, s, i)
	if !ok {
		return
	}

	deck, err := f.deckService.Get(ctx, discordID, optionValue(options, "name"))
	if err != nil {
		common.RespondWithError(s, i, common.UserMessage(err))
		return
	}

	// Catalog pricing is best-effort; the deck still renders without it.
	if err := common.DeferResponse(s, i); err != nil {
		log.Errorf("Error deferring deck view response: %v", err)
		return
	}

	embed := buildDeckEmbed(deck, f.deckValue(ctx, deck), f.displayImage(ctx, deck))
	common.FollowUpWithEmbed(s, i, embed)
}

// deckValue sums catalog prices over the deck, 0 when the catalog is down
func (f *Feature) deckValue(ctx context.Context, deck *models.Deck) float64 {
	ids := make([]string, 0, len(deck.Cards))
	for id := range deck.Cards {
		ids = append(ids, id)
	}

	cards, err := f.catalog.CardsByID(ctx, ids)
	if err != nil {
		log.Errorf("Error pricing deck %q: %v", deck.Name, err)
		return 0
	}

	total := 0.0
	for _, card := range cards {
		total += card.Price * float64(deck.Cards[card.ID])
	}
	return total
}

func (f *Feature) displayImage(ctx context.Context, deck *models.Deck) string {
	if deck.DisplayCard == "" {
		return ""
	}

	card, err := f.catalog.Card(ctx, deck.DisplayCard)
	if err != nil {
		log.Errorf("Error fetching display card %q: %v", deck.DisplayCard, err)
		return ""
	}
	return card.Image
}

func (f *Feature) handleDisplay(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	discordID, ok := f.ensurePlayer(ctx, s, i)
	if !ok {
		return
	}

	name := optionValue(options, "name")
	cardID := optionValue(options, "card")

	if err := f.deckService.SetDisplayCard(ctx, discordID, name, cardID); err != nil {
		common.RespondWithError(s, i, common.UserMessage(err))
		return
	}

	common.RespondWithContent(s, i, fmt.Sprintf("**%s** now shows `%s`.", name, cardID))
}

// HandleEvent announces completed decks when transfers push a deck to
// exactly the full size
func (f *Feature) HandleEvent(s *discordgo.Session, announceChannelID string) events.Handler {
	return func(ctx context.Context, event events.Event) {
		transferred, ok := event.(events.CardsTransferredEvent)
		if !ok || announceChannelID == "" {
			return
		}

		if transferred.Direction != events.DirectionToDeck || transferred.DeckTotal != models.DeckSize {
			return
		}

		message := fmt.Sprintf("🎉 <@%d> completed the deck **%s**!", transferred.DiscordID, transferred.DeckName)
		if _, err := s.ChannelMessageSend(announceChannelID, message); err != nil {
			log.Errorf("Error announcing completed deck: %v", err)
		}
	}
}
