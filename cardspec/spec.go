// Package cardspec parses player-supplied card specifications and validates
// them against collection ownership and deck-composition rules.
//
// A specification is a list of `id[:qty]` segments joined by `/`, e.g.
// "base1-4:2/base1-58". Quantity defaults to 1 and is clamped to [1,4];
// duplicate card IDs are preserved as separate entries and summed by the
// validators, not by the parser.
package cardspec

import (
	"strconv"
	"strings"

	"poketcg/models"
)

// Entry is a single (card ID, quantity) pair of a parsed specification.
type Entry struct {
	CardID   string
	Quantity int
}

const (
	segmentSeparator  = "/"
	quantityDelimiter = ":"
)

// Parse normalizes a raw specification string into an ordered list of
// entries. Unparsable or missing quantities default to 1; requests above
// models.MaxCopiesPerCard are silently clamped down to it.
func Parse(raw string) ([]Entry, error) {
	var entries []Entry
	for _, segment := range strings.Split(raw, segmentSeparator) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		cardID := segment
		quantity := 1
		if idx := strings.Index(segment, quantityDelimiter); idx >= 0 {
			cardID = strings.TrimSpace(segment[:idx])
			if cardID == "" {
				continue
			}
			if parsed, err := strconv.Atoi(strings.TrimSpace(segment[idx+1:])); err == nil {
				quantity = parsed
			}
		}

		if quantity < 1 {
			quantity = 1
		}
		if quantity > models.MaxCopiesPerCard {
			quantity = models.MaxCopiesPerCard
		}

		entries = append(entries, Entry{CardID: cardID, Quantity: quantity})
	}

	if len(entries) == 0 {
		return nil, models.ErrEmptySpec
	}
	return entries, nil
}

// TotalQuantity returns the sum of all requested quantities in the spec.
func TotalQuantity(spec []Entry) int {
	total := 0
	for _, e := range spec {
		total += e.Quantity
	}
	return total
}

// HasAll reports whether the owned mapping holds at least the requested
// quantity for every entry of the spec. Duplicate entries for the same
// card are summed before the check. Absent cards count as 0.
func HasAll(owned map[string]int, spec []Entry) bool {
	required := make(map[string]int, len(spec))
	for _, e := range spec {
		required[e.CardID] += e.Quantity
	}
	for cardID, qty := range required {
		if owned[cardID] < qty {
			return false
		}
	}
	return true
}

// ValidAddition reports whether adding the spec to the deck keeps it within
// deck-building limits: the resulting total must not exceed models.DeckSize,
// and no single card may end up above models.MaxCopiesPerCard copies.
func ValidAddition(spec []Entry, deck *models.Deck) bool {
	if deck.CardCount()+TotalQuantity(spec) > models.DeckSize {
		return false
	}

	requested := make(map[string]int, len(spec))
	for _, e := range spec {
		requested[e.CardID] += e.Quantity
	}
	for cardID, qty := range requested {
		if deck.Quantity(cardID)+qty > models.MaxCopiesPerCard {
			return false
		}
	}
	return true
}
