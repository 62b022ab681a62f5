package ebay

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

const defaultSampleSize = 20

// ErrNoPriceData is returned when a search yields no usable prices.
var ErrNoPriceData = errors.New("no price data")

// MarketPricer estimates an item's current market price as the median asking
// price of fixed-price Browse results.
type MarketPricer struct {
	client     EbayClient
	sampleSize int
	currency   string
	categoryID string
}

// MarketPricerOption configures the MarketPricer.
type MarketPricerOption func(*MarketPricer)

// WithSampleSize sets how many listings are sampled per lookup.
func WithSampleSize(n int) MarketPricerOption {
	return func(m *MarketPricer) {
		if n > 0 {
			m.sampleSize = n
		}
	}
}

// WithCurrency restricts sampled prices to one currency.
func WithCurrency(c string) MarketPricerOption {
	return func(m *MarketPricer) {
		m.currency = c
	}
}

// WithCategoryID restricts the search to one eBay category.
func WithCategoryID(id string) MarketPricerOption {
	return func(m *MarketPricer) {
		m.categoryID = id
	}
}

// NewMarketPricer creates a MarketPricer backed by client.
func NewMarketPricer(client EbayClient, opts ...MarketPricerOption) *MarketPricer {
	m := &MarketPricer{
		client:     client,
		sampleSize: defaultSampleSize,
		currency:   "USD",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CurrentPrice returns the median asking price for the item. The item name
// is the search query; the id is used when the name is blank.
func (m *MarketPricer) CurrentPrice(ctx context.Context, itemID, itemName string) (float64, error) {
	query := strings.TrimSpace(itemName)
	if query == "" {
		query = strings.TrimSpace(itemID)
	}
	if query == "" {
		return 0, fmt.Errorf("%w: empty item reference", ErrNoPriceData)
	}

	resp, err := m.client.Search(ctx, SearchRequest{
		Query:      query,
		CategoryID: m.categoryID,
		Limit:      m.sampleSize,
		Filters:    map[string]string{"filter": "buyingOptions:{FIXED_PRICE}"},
	})
	if err != nil {
		return 0, fmt.Errorf("pricing %q: %w", query, err)
	}

	prices := ItemPrices(resp.Items, m.currency)
	if len(prices) == 0 {
		return 0, fmt.Errorf("%w for %q", ErrNoPriceData, query)
	}
	return median(prices), nil
}

func median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return roundCents((sorted[n/2-1] + sorted[n/2]) / 2)
}
