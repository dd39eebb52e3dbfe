// Package catalog implements the client for the external card-catalog API.
// Lookups resolve card identifiers to names, sets, images, rarity and a
// market price; the catalog is never written to.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"poketcg/models"
)

// DefaultBaseURL is the public card-catalog endpoint.
const DefaultBaseURL = "https://api.pokemontcg.io/v2"

// batchSize is the maximum number of identifiers per batched lookup request.
const batchSize = 250

// Client is an HTTP client for the card catalog. Construct with New and
// inject wherever cards need resolving; all calls are fallible and never
// terminate the process.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a catalog client. apiKey may be empty; the catalog then
// applies its unauthenticated rate limits.
func New(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Card resolves a single card by its identifier
func (c *Client) Card(ctx context.Context, id string) (*models.Card, error) {
	var response struct {
		Data cardPayload `json:"data"`
	}
	if err := c.get(ctx, "/cards/"+url.PathEscape(id), nil, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch card %q: %w", id, err)
	}

	return response.Data.toModel(), nil
}

// Search returns all cards matching a catalog query string
func (c *Client) Search(ctx context.Context, query string) ([]*models.Card, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("pageSize", fmt.Sprint(batchSize))

	var response struct {
		Data []cardPayload `json:"data"`
	}
	if err := c.get(ctx, "/cards", params, &response); err != nil {
		return nil, fmt.Errorf("failed to search cards with query %q: %w", query, err)
	}

	cards := make([]*models.Card, 0, len(response.Data))
	for i := range response.Data {
		cards = append(cards, response.Data[i].toModel())
	}
	return cards, nil
}

// CardsByID resolves a batch of card identifiers. Lookups are chunked at
// 250 identifiers per request and combined with a disjunctive query.
func (c *Client) CardsByID(ctx context.Context, ids []string) ([]*models.Card, error) {
	var cards []*models.Card
	for start := 0; start < len(ids); start += batchSize {
		end := start + batchSize
		if end > len(ids) {
			end = len(ids)
		}

		terms := make([]string, 0, end-start)
		for _, id := range ids[start:end] {
			terms = append(terms, "id:"+id)
		}

		chunk, err := c.Search(ctx, "("+strings.Join(terms, " OR ")+")")
		if err != nil {
			return nil, err
		}
		cards = append(cards, chunk...)
	}

	return cards, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}

	return nil
}
