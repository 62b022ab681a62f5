package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/donaldgifford/card-ledger/internal/engine"
)

// ImportListings runs a listings import. Without materialize it is a preview.
func (c *Client) ImportListings(ctx context.Context, userID string, materialize bool) (*engine.ListingsImport, error) {
	q := url.Values{}
	q.Set("materialize", strconv.FormatBool(materialize))

	var out engine.ListingsImport
	if err := c.post(ctx, userPath(userID, "imports", "listings")+"?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImportSales runs a sales import over the last daysBack days. A zero
// daysBack uses the server default.
func (c *Client) ImportSales(ctx context.Context, userID string, daysBack int, materialize bool) (*engine.SalesImport, error) {
	q := url.Values{}
	q.Set("materialize", strconv.FormatBool(materialize))
	if daysBack > 0 {
		q.Set("days_back", strconv.Itoa(daysBack))
	}

	var out engine.SalesImport
	if err := c.post(ctx, userPath(userID, "imports", "sales")+"?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
