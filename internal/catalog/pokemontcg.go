package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

const (
	// SourcePokemonTCG is the registry name of the Pokémon TCG API.
	SourcePokemonTCG = "pokemontcg"

	defaultPokemonTCGURL = "https://api.pokemontcg.io/v2"
	pokemonPageSize      = 20
)

// PokemonTCGClient searches the Pokémon TCG API.
type PokemonTCGClient struct {
	baseURL  string
	apiKey   string
	pageSize int
	getter   *httpGetter
}

// PokemonTCGOption configures the PokemonTCGClient.
type PokemonTCGOption func(*PokemonTCGClient)

// WithPokemonTCGBaseURL overrides the API root.
func WithPokemonTCGBaseURL(u string) PokemonTCGOption {
	return func(c *PokemonTCGClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithPokemonTCGAPIKey sets the X-Api-Key header. The API works without a
// key at a lower rate limit.
func WithPokemonTCGAPIKey(key string) PokemonTCGOption {
	return func(c *PokemonTCGClient) {
		c.apiKey = key
	}
}

// WithPokemonTCGHTTPClient overrides the default HTTP client.
func WithPokemonTCGHTTPClient(hc *http.Client) PokemonTCGOption {
	return func(c *PokemonTCGClient) {
		c.getter.client = hc
	}
}

// WithPokemonTCGRetries sets the retry budget for transient failures.
func WithPokemonTCGRetries(maxRetries int, initialBackoff time.Duration) PokemonTCGOption {
	return func(c *PokemonTCGClient) {
		c.getter.maxRetries = maxRetries
		c.getter.initialBackoff = initialBackoff
	}
}

// NewPokemonTCGClient creates a Pokémon TCG API client.
func NewPokemonTCGClient(opts ...PokemonTCGOption) *PokemonTCGClient {
	c := &PokemonTCGClient{
		baseURL:  defaultPokemonTCGURL,
		pageSize: pokemonPageSize,
		getter:   newHTTPGetter(SourcePokemonTCG, 10),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type pokemonCard struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
	Rarity string `json:"rarity"`
	Set    struct {
		Name string `json:"name"`
	} `json:"set"`
	Images struct {
		Small string `json:"small"`
		Large string `json:"large"`
	} `json:"images"`
	TCGPlayer *struct {
		Prices map[string]struct {
			Market *float64 `json:"market"`
			Mid    *float64 `json:"mid"`
		} `json:"prices"`
	} `json:"tcgplayer"`
}

type pokemonSearchResponse struct {
	Data       []pokemonCard `json:"data"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	Count      int           `json:"count"`
	TotalCount int           `json:"totalCount"`
}

// Search implements Searcher. Free text is matched against card names.
func (c *PokemonTCGClient) Search(ctx context.Context, query string, page int) (*Page, error) {
	params := url.Values{}
	params.Set("q", pokemonQuery(query))
	params.Set("page", strconv.Itoa(max(page, 1)))
	params.Set("pageSize", strconv.Itoa(c.pageSize))

	h := http.Header{}
	if c.apiKey != "" {
		h.Set("X-Api-Key", c.apiKey)
	}

	var resp pokemonSearchResponse
	if _, err := c.getter.getJSON(ctx, c.baseURL+"/cards?"+params.Encode(), h, false, &resp); err != nil {
		return nil, fmt.Errorf("searching pokemontcg for %q: %w", query, err)
	}

	cards := make([]domain.CatalogCard, 0, len(resp.Data))
	for i := range resp.Data {
		cards = append(cards, resp.Data[i].toCatalogCard())
	}

	pageSize := max(resp.PageSize, 1)
	return &Page{
		Cards:   cards,
		Page:    max(resp.Page, 1),
		Total:   resp.TotalCount,
		HasMore: max(resp.Page, 1)*pageSize < resp.TotalCount,
	}, nil
}

// pokemonQuery turns free text into the API's Lucene-like syntax. Input that
// already uses field syntax is passed through; a single word becomes a
// prefix match and several words an exact phrase.
func pokemonQuery(q string) string {
	if strings.Contains(q, ":") {
		return q
	}
	q = strings.ReplaceAll(q, `"`, "")
	if strings.Contains(q, " ") {
		return `name:"` + q + `"`
	}
	return "name:" + q + "*"
}

// priceVariants are the TCGplayer price keys in preference order.
var priceVariants = []string{"holofoil", "normal", "reverseHolofoil", "1stEditionHolofoil", "unlimitedHolofoil"}

func (p *pokemonCard) toCatalogCard() domain.CatalogCard {
	card := domain.CatalogCard{
		ID:       p.ID,
		Source:   SourcePokemonTCG,
		Name:     p.Name,
		Number:   p.Number,
		SetName:  p.Set.Name,
		Rarity:   p.Rarity,
		ImageURL: p.Images.Large,
	}
	if card.ImageURL == "" {
		card.ImageURL = p.Images.Small
	}

	if p.TCGPlayer == nil {
		return card
	}
	for _, variant := range priceVariants {
		price, ok := p.TCGPlayer.Prices[variant]
		if !ok {
			continue
		}
		v := price.Market
		if v == nil {
			v = price.Mid
		}
		if v != nil {
			card.MarketPrice = v
			card.Currency = "USD"
			break
		}
	}
	return card
}
