package models

import "errors"

// Domain errors surfaced to players. Services return these (possibly
// wrapped); the bot layer maps them to replies with errors.Is. Anything
// else is treated as an infrastructure failure.
var (
	// ErrPlayerNotFound indicates the referenced player record is absent.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrDeckNotFound indicates no deck with that name exists for the player.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrDeckNameTaken indicates the player already has a deck with that name.
	ErrDeckNameTaken = errors.New("deck name already taken")

	// ErrInsufficientCards indicates the player or deck lacks the quantity
	// required for a removal. The whole operation is rejected.
	ErrInsufficientCards = errors.New("insufficient cards")

	// ErrDeckComposition indicates an addition would exceed the 60-card
	// deck cap or the 4-per-card cap. The whole operation is rejected.
	ErrDeckComposition = errors.New("invalid deck composition")

	// ErrEmptySpec indicates the card specification parsed to nothing.
	ErrEmptySpec = errors.New("empty card specification")

	// ErrEmptyDeckName indicates a blank deck name was supplied.
	ErrEmptyDeckName = errors.New("empty deck name")
)
