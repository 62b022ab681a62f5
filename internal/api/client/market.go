package client

import (
	"context"
	"net/url"

	"github.com/donaldgifford/card-ledger/internal/ebay"
)

// MarketSearch is the body of a marketplace search.
type MarketSearch struct {
	Query      string            `json:"query"`
	CategoryID string            `json:"category_id,omitempty"`
	Limit      int               `json:"limit,omitempty"`
	Sort       string            `json:"sort,omitempty"`
	Filters    map[string]string `json:"filters,omitempty"`
}

// MarketResults is one page of marketplace results with parsed prices.
type MarketResults struct {
	Items   []ebay.ItemSummary `json:"items"`
	Prices  []float64          `json:"prices"`
	Total   int                `json:"total"`
	HasMore bool               `json:"has_more"`
}

// SearchMarket searches live eBay listings through the server.
func (c *Client) SearchMarket(ctx context.Context, req MarketSearch) (*MarketResults, error) {
	var out MarketResults
	if err := c.post(ctx, "/api/v1/market/search", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarketPrice returns the price an alert check would record for the item.
func (c *Client) MarketPrice(ctx context.Context, itemID, itemName string) (float64, error) {
	q := url.Values{}
	if itemID != "" {
		q.Set("item_id", itemID)
	}
	if itemName != "" {
		q.Set("item_name", itemName)
	}

	var out struct {
		Price float64 `json:"price"`
	}
	if err := c.get(ctx, "/api/v1/market/price", q, &out); err != nil {
		return 0, err
	}
	return out.Price, nil
}
