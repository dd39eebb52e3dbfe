package models

// TransferResult describes a committed card transfer between a player's
// collection and one of their decks
type TransferResult struct {
	Player     *Player
	Deck       *Deck
	CardsMoved int
}
