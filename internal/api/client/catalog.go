package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/donaldgifford/card-ledger/internal/catalog"
)

// SearchCatalog searches a card catalog. An empty source uses the server's
// default catalog.
func (c *Client) SearchCatalog(ctx context.Context, source, query string, page int) (*catalog.Page, error) {
	q := url.Values{}
	q.Set("q", query)
	if source != "" {
		q.Set("source", source)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}

	var out catalog.Page
	if err := c.get(ctx, "/api/v1/catalog/search", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CatalogSources lists the catalogs the server can search.
func (c *Client) CatalogSources(ctx context.Context) ([]string, error) {
	var out struct {
		Sources []string `json:"sources"`
	}
	if err := c.get(ctx, "/api/v1/catalog/sources", nil, &out); err != nil {
		return nil, err
	}
	return out.Sources, nil
}
