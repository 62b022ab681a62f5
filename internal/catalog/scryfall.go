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
	// SourceScryfall is the registry name of the Scryfall API.
	SourceScryfall = "scryfall"

	defaultScryfallURL = "https://api.scryfall.com"
	userAgent          = "card-ledger/1.0"
)

// ScryfallClient searches Magic: The Gathering cards on Scryfall.
type ScryfallClient struct {
	baseURL string
	getter  *httpGetter
}

// ScryfallOption configures the ScryfallClient.
type ScryfallOption func(*ScryfallClient)

// WithScryfallBaseURL overrides the API root.
func WithScryfallBaseURL(u string) ScryfallOption {
	return func(c *ScryfallClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithScryfallHTTPClient overrides the default HTTP client.
func WithScryfallHTTPClient(hc *http.Client) ScryfallOption {
	return func(c *ScryfallClient) {
		c.getter.client = hc
	}
}

// WithScryfallRetries sets the retry budget for transient failures.
func WithScryfallRetries(maxRetries int, initialBackoff time.Duration) ScryfallOption {
	return func(c *ScryfallClient) {
		c.getter.maxRetries = maxRetries
		c.getter.initialBackoff = initialBackoff
	}
}

// NewScryfallClient creates a Scryfall client. Scryfall asks clients to stay
// under 10 requests per second.
func NewScryfallClient(opts ...ScryfallOption) *ScryfallClient {
	c := &ScryfallClient{
		baseURL: defaultScryfallURL,
		getter:  newHTTPGetter(SourceScryfall, 10),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type scryfallCard struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CollectorNumber string `json:"collector_number"`
	SetName         string `json:"set_name"`
	Rarity          string `json:"rarity"`
	ImageURIs       *struct {
		Normal string `json:"normal"`
	} `json:"image_uris"`
	CardFaces []struct {
		ImageURIs *struct {
			Normal string `json:"normal"`
		} `json:"image_uris"`
	} `json:"card_faces"`
	Prices struct {
		USD     *string `json:"usd"`
		USDFoil *string `json:"usd_foil"`
	} `json:"prices"`
}

type scryfallListResponse struct {
	Data       []scryfallCard `json:"data"`
	TotalCards int            `json:"total_cards"`
	HasMore    bool           `json:"has_more"`
}

// Search implements Searcher. Scryfall answers 404 when nothing matches,
// which is returned as an empty page.
func (c *ScryfallClient) Search(ctx context.Context, query string, page int) (*Page, error) {
	page = max(page, 1)
	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))

	h := http.Header{}
	h.Set("User-Agent", userAgent)

	var resp scryfallListResponse
	found, err := c.getter.getJSON(ctx, c.baseURL+"/cards/search?"+params.Encode(), h, true, &resp)
	if err != nil {
		return nil, fmt.Errorf("searching scryfall for %q: %w", query, err)
	}
	if !found {
		return &Page{Cards: []domain.CatalogCard{}, Page: page}, nil
	}

	cards := make([]domain.CatalogCard, 0, len(resp.Data))
	for i := range resp.Data {
		cards = append(cards, resp.Data[i].toCatalogCard())
	}

	return &Page{
		Cards:   cards,
		Page:    page,
		Total:   resp.TotalCards,
		HasMore: resp.HasMore,
	}, nil
}

func (s *scryfallCard) toCatalogCard() domain.CatalogCard {
	card := domain.CatalogCard{
		ID:      s.ID,
		Source:  SourceScryfall,
		Name:    s.Name,
		Number:  s.CollectorNumber,
		SetName: s.SetName,
		Rarity:  s.Rarity,
	}

	switch {
	case s.ImageURIs != nil:
		card.ImageURL = s.ImageURIs.Normal
	case len(s.CardFaces) > 0 && s.CardFaces[0].ImageURIs != nil:
		card.ImageURL = s.CardFaces[0].ImageURIs.Normal
	}

	price := s.Prices.USD
	if price == nil {
		price = s.Prices.USDFoil
	}
	if price != nil {
		if v, err := strconv.ParseFloat(*price, 64); err == nil {
			card.MarketPrice = &v
			card.Currency = "USD"
		}
	}
	return card
}
