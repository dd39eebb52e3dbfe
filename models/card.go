package models

// Card is a catalog entry for a single printed card.
// Resolved from the external card catalog, never stored locally.
type Card struct {
	ID     string
	Name   string
	Set    Set
	Number string
	Price  float64
	Image  string
	Rarity string
}

// Set identifies the expansion a card was printed in.
type Set struct {
	ID   string
	Name string
}
