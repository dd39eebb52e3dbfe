package catalog

import (
	"poketcg/models"
)

// fallbackPrice is the nominal floor used when no pricing source carries a
// value for a card.
const fallbackPrice = 0.01

// cardPayload is the catalog's wire representation of a card
type cardPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
	Rarity string `json:"rarity"`
	Set    struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"set"`
	Images struct {
		Large string `json:"large"`
	} `json:"images"`
	TCGPlayer struct {
		Prices struct {
			Normal             *priceRange `json:"normal"`
			Holofoil           *priceRange `json:"holofoil"`
			ReverseHolofoil    *priceRange `json:"reverseHolofoil"`
			FirstEditionNormal *priceRange `json:"1stEditionNormal"`
		} `json:"prices"`
	} `json:"tcgplayer"`
	CardMarket struct {
		Prices struct {
			AverageSellPrice *float64 `json:"averageSellPrice"`
		} `json:"prices"`
	} `json:"cardmarket"`
}

type priceRange struct {
	Market *float64 `json:"market"`
	Mid    *float64 `json:"mid"`
}

func (p cardPayload) toModel() *models.Card {
	rarity := p.Rarity
	if rarity == "" {
		rarity = "Unknown"
	}

	return &models.Card{
		ID:     p.ID,
		Name:   p.Name,
		Set:    models.Set{ID: p.Set.ID, Name: p.Set.Name},
		Number: p.Number,
		Price:  p.price(),
		Image:  p.Images.Large,
		Rarity: rarity,
	}
}

// price resolves a card's price by trying each pricing field in fixed
// priority order; the first present value wins.
func (p cardPayload) price() float64 {
	tcg := p.TCGPlayer.Prices
	candidates := []*float64{
		tcg.Normal.market(),
		tcg.Normal.mid(),
		tcg.Holofoil.market(),
		tcg.Holofoil.mid(),
		tcg.ReverseHolofoil.market(),
		tcg.ReverseHolofoil.mid(),
		tcg.FirstEditionNormal.market(),
		p.CardMarket.Prices.AverageSellPrice,
	}

	for _, candidate := range candidates {
		if candidate != nil {
			return *candidate
		}
	}
	return fallbackPrice
}

func (r *priceRange) market() *float64 {
	if r == nil {
		return nil
	}
	return r.Market
}

func (r *priceRange) mid() *float64 {
	if r == nil {
		return nil
	}
	return r.Mid
}
