package decks

import (
	"poketcg/service"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the /deck command group
type Feature struct {
	deckService   service.DeckService
	playerService service.PlayerService
	catalog       service.CardCatalog

	pendingDeletes *pendingDeletes
}

// New creates the decks feature
func New(deckService service.DeckService, playerService service.PlayerService, catalog service.CardCatalog) *Feature {
	return &Feature{
		deckService:    deckService,
		playerService:  playerService,
		catalog:        catalog,
		pendingDeletes: newPendingDeletes(),
	}
}

// HandleCommand dispatches /deck subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "create":
		f.handleCreate(s, i, options[0].Options)
	case "delete":
		f.handleDelete(s, i, options[0].Options)
	case "add":
		f.handleAdd(s, i, options[0].Options)
	case "remove":
		f.handleRemove(s, i, options[0].Options)
	case "list":
		f.handleList(s, i)
	case "view":
		f.handleView(s, i, options[0].Options)
	case "display":
		f.handleDisplay(s, i, options[0].Options)
	}
}
