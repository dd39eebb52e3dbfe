package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceCascade(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected float64
	}{
		{
			name:     "normal market wins",
			payload:  `{"tcgplayer":{"prices":{"normal":{"market":1.5,"mid":2.0},"holofoil":{"market":9.0}}}}`,
			expected: 1.5,
		},
		{
			name:     "normal mid before holofoil",
			payload:  `{"tcgplayer":{"prices":{"normal":{"mid":2.0},"holofoil":{"market":9.0}}}}`,
			expected: 2.0,
		},
		{
			name:     "holofoil market",
			payload:  `{"tcgplayer":{"prices":{"holofoil":{"market":9.0,"mid":8.0}}}}`,
			expected: 9.0,
		},
		{
			name:     "holofoil mid",
			payload:  `{"tcgplayer":{"prices":{"holofoil":{"mid":8.0},"reverseHolofoil":{"market":3.0}}}}`,
			expected: 8.0,
		},
		{
			name:     "reverse holofoil market",
			payload:  `{"tcgplayer":{"prices":{"reverseHolofoil":{"market":3.0,"mid":2.5}}}}`,
			expected: 3.0,
		},
		{
			name:     "reverse holofoil mid",
			payload:  `{"tcgplayer":{"prices":{"reverseHolofoil":{"mid":2.5}}}}`,
			expected: 2.5,
		},
		{
			name:     "first edition normal market",
			payload:  `{"tcgplayer":{"prices":{"1stEditionNormal":{"market":42.0}}},"cardmarket":{"prices":{"averageSellPrice":5.0}}}`,
			expected: 42.0,
		},
		{
			name:     "cardmarket average sell price",
			payload:  `{"cardmarket":{"prices":{"averageSellPrice":5.0}}}`,
			expected: 5.0,
		},
		{
			name:     "nominal floor when nothing is priced",
			payload:  `{"tcgplayer":{"prices":{}}}`,
			expected: 0.01,
		},
		{
			name:     "no pricing sources at all",
			payload:  `{"id":"base1-4"}`,
			expected: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload cardPayload
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &payload))
			assert.Equal(t, tt.expected, payload.price())
		})
	}
}

func TestClient_Card(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cards/base1-4", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		fmt.Fprint(w, `{"data":{"id":"base1-4","name":"Charizard","number":"4",
			"rarity":"Rare Holo","set":{"id":"base1","name":"Base"},
			"images":{"large":"https://img.example/base1-4.png"},
			"tcgplayer":{"prices":{"holofoil":{"market":220.5}}}}}`)
	}))
	defer server.Close()

	client := New(server.URL, "test-key")
	card, err := client.Card(context.Background(), "base1-4")

	require.NoError(t, err)
	assert.Equal(t, "base1-4", card.ID)
	assert.Equal(t, "Charizard", card.Name)
	assert.Equal(t, "Base", card.Set.Name)
	assert.Equal(t, 220.5, card.Price)
	assert.Equal(t, "Rare Holo", card.Rarity)
}

func TestClient_Card_MissingRarityDefaultsToUnknown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"id":"base1-96","name":"Water Energy"}}`)
	}))
	defer server.Close()

	client := New(server.URL, "")
	card, err := client.Card(context.Background(), "base1-96")

	require.NoError(t, err)
	assert.Equal(t, "Unknown", card.Rarity)
}

func TestClient_Card_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL, "")
	card, err := client.Card(context.Background(), "base1-4")

	assert.Error(t, err)
	assert.Nil(t, card)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_CardsByID_ChunksRequests(t *testing.T) {
	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("q"))
		fmt.Fprint(w, `{"data":[{"id":"x"}]}`)
	}))
	defer server.Close()

	ids := make([]string, 0, 260)
	for i := 0; i < 260; i++ {
		ids = append(ids, fmt.Sprintf("card-%d", i))
	}

	client := New(server.URL, "")
	cards, err := client.CardsByID(context.Background(), ids)

	require.NoError(t, err)
	assert.Len(t, cards, 2) // one card payload per chunk response

	require.Len(t, queries, 2)
	assert.Equal(t, 250, strings.Count(queries[0], "id:"))
	assert.Equal(t, 10, strings.Count(queries[1], "id:"))
	assert.True(t, strings.HasPrefix(queries[0], "(id:card-0 OR id:card-1 "))
	assert.True(t, strings.HasSuffix(queries[1], "id:card-259)"))
}

func TestClient_CardsByID_Empty(t *testing.T) {
	client := New("http://catalog.invalid", "")
	cards, err := client.CardsByID(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, cards)
}
