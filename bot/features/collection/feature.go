package collection

import (
	"poketcg/service"
)

// Feature handles the /collection command
type Feature struct {
	playerService service.PlayerService
	catalog       service.CardCatalog
}

// New creates the collection feature
func New(playerService service.PlayerService, catalog service.CardCatalog) *Feature {
	return &Feature{
		playerService: playerService,
		catalog:       catalog,
	}
}
