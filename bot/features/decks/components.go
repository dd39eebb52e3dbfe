package decks

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"poketcg/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// confirmTimeout is how long a deck deletion waits for confirmation before
// being treated as declined.
const confirmTimeout = 30 * time.Second

// pendingDelete tracks a deck deletion awaiting confirmation
type pendingDelete struct {
	discordID int64
	deckName  string
	timer     *time.Timer
}

type pendingDeletes struct {
	mu      sync.Mutex
	pending map[string]*pendingDelete
}

func newPendingDeletes() *pendingDeletes {
	return &pendingDeletes{pending: make(map[string]*pendingDelete)}
}

func (p *pendingDeletes) put(token string, del *pendingDelete) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending[token] = del
}

// takeFor removes and returns the pending deletion if discordID owns it,
// stopping its timeout timer. Returns found=true whenever the token is still
// pending, even for a non-owner, so callers can tell expiry apart from a
// wrong-user click without disturbing the pending state.
func (p *pendingDeletes) takeFor(token string, discordID int64) (*pendingDelete, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	del, ok := p.pending[token]
	if !ok {
		return nil, false
	}
	if del.discordID != discordID {
		return nil, true
	}
	delete(p.pending, token)
	del.timer.Stop()
	return del, true
}

func (p *pendingDeletes) expire(token string) *pendingDelete {
	p.mu.Lock()
	defer p.mu.Unlock()

	del, ok := p.pending[token]
	if !ok {
		return nil
	}
	delete(p.pending, token)
	return del
}

func (f *Feature) handleDelete(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	discordID, ok := f.ensurePlayer(ctx, s, i)
	if !ok {
		return
	}

	name := optionValue(options, "name")
	deck, err := f.deckService.Get(ctx, discordID, name)
	if err != nil {
		common.RespondWithError(s, i, common.UserMessage(err))
		return
	}

	token := i.ID
	del := &pendingDelete{discordID: discordID, deckName: deck.Name}
	// Timeout counts as declined: the deck is left untouched.
	del.timer = time.AfterFunc(confirmTimeout, func() {
		if f.pendingDeletes.expire(token) == nil {
			return
		}
		content := fmt.Sprintf("Deletion of **%s** timed out. Your deck is safe.", deck.Name)
		if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Content:    &content,
			Components: &[]discordgo.MessageComponent{},
		}); err != nil {
			log.Errorf("Error editing timed-out delete prompt: %v", err)
		}
	})
	f.pendingDeletes.put(token, del)

	prompt := fmt.Sprintf("Delete **%s**? Its %d card(s) will be returned to your collection.", deck.Name, deck.CardCount())
	common.RespondWithComponents(s, i, prompt, buildDeleteConfirmComponents(token))
}

func buildDeleteConfirmComponents(token string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "✅ Delete",
					Style:    discordgo.DangerButton,
					CustomID: "deck_delete_confirm_" + token,
				},
				discordgo.Button{
					Label:    "❌ Keep",
					Style:    discordgo.SecondaryButton,
					CustomID: "deck_delete_cancel_" + token,
				},
			},
		},
	}
}

// HandleComponent processes delete confirmation button presses
func (f *Feature) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	var token string
	var confirmed bool
	switch {
	case strings.HasPrefix(customID, "deck_delete_confirm_"):
		token = strings.TrimPrefix(customID, "deck_delete_confirm_")
		confirmed = true
	case strings.HasPrefix(customID, "deck_delete_cancel_"):
		token = strings.TrimPrefix(customID, "deck_delete_cancel_")
	default:
		return
	}

	discordID, err := callerDiscordID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		return
	}

	del, found := f.pendingDeletes.takeFor(token, discordID)
	if !found {
		common.UpdateComponentMessage(s, i, "That confirmation has expired.")
		return
	}
	if del == nil {
		common.RespondWithError(s, i, "Only the deck's owner can confirm this.")
		return
	}

	if !confirmed {
		common.UpdateComponentMessage(s, i, fmt.Sprintf("Kept **%s**.", del.deckName))
		return
	}

	returned, err := f.deckService.Delete(context.Background(), del.discordID, del.deckName)
	if err != nil {
		log.Errorf("Error deleting deck %q for %d: %v", del.deckName, del.discordID, err)
		common.UpdateComponentMessage(s, i, "❌ "+common.UserMessage(err))
		return
	}

	common.UpdateComponentMessage(s, i,
		fmt.Sprintf("Deleted **%s** and returned %d card(s) to your collection.", del.deckName, returned))
}
