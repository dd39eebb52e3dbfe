package cards

import (
	"poketcg/service"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the /card and /search catalog lookups
type Feature struct {
	catalog service.CardCatalog
}

// New creates the cards feature
func New(catalog service.CardCatalog) *Feature {
	return &Feature{catalog: catalog}
}

// HandleCommand dispatches catalog lookup commands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "card":
		f.handleCard(s, i)
	case "search":
		f.handleSearch(s, i)
	}
}
