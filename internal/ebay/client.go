// Package ebay provides clients for the eBay Sell, Browse and Analytics APIs,
// plus the OAuth token handling they depend on. Clients are abstracted behind
// interfaces for testability.
package ebay

import (
	"context"

	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// SearchRequest defines the parameters for a Browse API search.
type SearchRequest struct {
	Query      string
	CategoryID string
	Limit      int
	Offset     int
	Sort       string
	Filters    map[string]string
}

// SearchResponse holds the results of a Browse API search.
type SearchResponse struct {
	Items   []ItemSummary
	Total   int
	Offset  int
	Limit   int
	HasMore bool
}

// ListingsPage is one page of a seller's active inventory.
type ListingsPage struct {
	Listings []domain.NormalizedListing
	Total    int
	Offset   int
	Limit    int
	HasMore  bool
}

// SoldPage is one page of orders flattened to line items. Offset and Limit
// count orders, not items.
type SoldPage struct {
	Items   []domain.NormalizedSoldItem
	Total   int
	Offset  int
	Limit   int
	HasMore bool
}

// EbayClient searches the public marketplace with an application token.
type EbayClient interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// SellerClient reads a seller's own data with a user access token.
type SellerClient interface {
	ListActiveListings(ctx context.Context, accessToken string, limit, offset int) (*ListingsPage, error)
	ListSoldItems(ctx context.Context, accessToken string, daysBack, limit, offset int) (*SoldPage, error)
}

// TokenProvider defines the interface for obtaining application tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TokenEnsurer returns a token record whose access token is valid.
type TokenEnsurer interface {
	Ensure(ctx context.Context, rec domain.TokenRecord) (domain.TokenRecord, error)
}
