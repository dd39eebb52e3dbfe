package cardspec

import (
	"testing"

	"poketcg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []Entry
	}{
		{
			name:     "single card without quantity",
			raw:      "base1-4",
			expected: []Entry{{CardID: "base1-4", Quantity: 1}},
		},
		{
			name:     "single card with quantity",
			raw:      "base1-4:3",
			expected: []Entry{{CardID: "base1-4", Quantity: 3}},
		},
		{
			name: "multiple segments",
			raw:  "base1-4:2/base1-58/xy7-54:4",
			expected: []Entry{
				{CardID: "base1-4", Quantity: 2},
				{CardID: "base1-58", Quantity: 1},
				{CardID: "xy7-54", Quantity: 4},
			},
		},
		{
			name:     "oversized quantity clamps to four",
			raw:      "base1-4:9",
			expected: []Entry{{CardID: "base1-4", Quantity: 4}},
		},
		{
			name:     "zero and negative quantities clamp to one",
			raw:      "base1-4:0/base1-58:-2",
			expected: []Entry{{CardID: "base1-4", Quantity: 1}, {CardID: "base1-58", Quantity: 1}},
		},
		{
			name:     "unparsable quantity defaults to one",
			raw:      "base1-4:lots",
			expected: []Entry{{CardID: "base1-4", Quantity: 1}},
		},
		{
			name: "duplicate cards are not merged",
			raw:  "base1-4:2/base1-4:2",
			expected: []Entry{
				{CardID: "base1-4", Quantity: 2},
				{CardID: "base1-4", Quantity: 2},
			},
		},
		{
			name:     "surrounding whitespace is trimmed",
			raw:      " base1-4 : 2 / base1-58 ",
			expected: []Entry{{CardID: "base1-4", Quantity: 2}, {CardID: "base1-58", Quantity: 1}},
		},
		{
			name:     "empty segments are skipped",
			raw:      "base1-4//base1-58",
			expected: []Entry{{CardID: "base1-4", Quantity: 1}, {CardID: "base1-58", Quantity: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, entries)
		})
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "/", "//", ":3"} {
		entries, err := Parse(raw)
		assert.ErrorIs(t, err, models.ErrEmptySpec, "raw=%q", raw)
		assert.Nil(t, entries)
	}
}

func TestHasAll(t *testing.T) {
	owned := map[string]int{"a": 5, "b": 2}

	assert.True(t, HasAll(owned, []Entry{{CardID: "a", Quantity: 3}}))
	assert.True(t, HasAll(owned, []Entry{{CardID: "a", Quantity: 3}, {CardID: "b", Quantity: 2}}))

	// One unsatisfiable entry fails the whole spec even if others pass.
	assert.False(t, HasAll(owned, []Entry{{CardID: "a", Quantity: 1}, {CardID: "b", Quantity: 3}}))

	// Absent cards count as zero.
	assert.False(t, HasAll(owned, []Entry{{CardID: "c", Quantity: 1}}))

	// Duplicate entries are summed before the check.
	assert.False(t, HasAll(owned, []Entry{{CardID: "b", Quantity: 2}, {CardID: "b", Quantity: 1}}))
	assert.True(t, HasAll(owned, []Entry{{CardID: "a", Quantity: 2}, {CardID: "a", Quantity: 3}}))
}

func TestValidAddition_CapacityCap(t *testing.T) {
	deck := &models.Deck{Cards: map[string]int{}}
	for i := 0; i < 14; i++ {
		deck.Cards[string(rune('a'+i))] = 4
	}
	deck.Cards["o"] = 2 // total 58

	require.Equal(t, 58, deck.CardCount())

	assert.True(t, ValidAddition([]Entry{{CardID: "p", Quantity: 2}}, deck))
	assert.False(t, ValidAddition([]Entry{{CardID: "p", Quantity: 3}}, deck))
}

func TestValidAddition_PerCardCap(t *testing.T) {
	deck := &models.Deck{Cards: map[string]int{"a": 4, "b": 3}}

	assert.False(t, ValidAddition([]Entry{{CardID: "a", Quantity: 1}}, deck))
	assert.True(t, ValidAddition([]Entry{{CardID: "b", Quantity: 1}}, deck))
	assert.False(t, ValidAddition([]Entry{{CardID: "b", Quantity: 2}}, deck))

	// Duplicate spec entries count against the same card.
	assert.False(t, ValidAddition([]Entry{{CardID: "c", Quantity: 3}, {CardID: "c", Quantity: 2}}, deck))
}

func TestValidAddition_EmptyDeck(t *testing.T) {
	deck := &models.Deck{Cards: map[string]int{}}

	assert.True(t, ValidAddition([]Entry{{CardID: "a", Quantity: 4}}, deck))

	// 15 distinct cards at 4 copies fills the deck exactly.
	var spec []Entry
	for i := 0; i < 15; i++ {
		spec = append(spec, Entry{CardID: string(rune('a' + i)), Quantity: 4})
	}
	assert.True(t, ValidAddition(spec, deck))

	spec = append(spec, Entry{CardID: "p", Quantity: 1})
	assert.False(t, ValidAddition(spec, deck))
}

func TestTotalQuantity(t *testing.T) {
	assert.Equal(t, 0, TotalQuantity(nil))
	assert.Equal(t, 7, TotalQuantity([]Entry{
		{CardID: "a", Quantity: 4},
		{CardID: "b", Quantity: 2},
		{CardID: "a", Quantity: 1},
	}))
}
