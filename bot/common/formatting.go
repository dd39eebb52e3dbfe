package common

import (
	"fmt"
	"sort"
	"strings"
)

// FormatPrice formats a card price in dollars
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// FormatCardMapping renders a card-ID -> quantity mapping as sorted
// "Nx card-id" lines
func FormatCardMapping(cards map[string]int) string {
	if len(cards) == 0 {
		return "*empty*"
	}

	ids := make([]string, 0, len(cards))
	for id := range cards {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&b, "%dx `%s`\n", cards[id], id)
	}
	return b.String()
}
