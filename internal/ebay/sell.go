package ebay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAPIBaseURL = "https://api.ebay.com"

	inventoryItemsPath = "/sell/inventory/v1/inventory_item"
	ordersPath         = "/sell/fulfillment/v1/order"

	maxSellPageSize = 200
	maxDaysBack     = 90
)

// SellClient implements SellerClient against the Sell Inventory and Sell
// Fulfillment APIs. Every call issues a single GET; aggregation across pages
// is up to the caller.
type SellClient struct {
	baseURL     string
	marketplace string
	transport   *transport
	nowFunc     func() time.Time
}

// SellOption configures the SellClient.
type SellOption func(*SellClient)

// WithSellBaseURL overrides the API host, e.g. for the sandbox.
func WithSellBaseURL(u string) SellOption {
	return func(c *SellClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithSellMarketplace overrides the default marketplace.
func WithSellMarketplace(m string) SellOption {
	return func(c *SellClient) {
		c.marketplace = m
	}
}

// WithSellHTTPClient overrides the default HTTP client.
func WithSellHTTPClient(hc *http.Client) SellOption {
	return func(c *SellClient) {
		c.transport.client = hc
	}
}

// WithSellQuota charges Sell API calls to the application's quota.
func WithSellQuota(q *AppQuota) SellOption {
	return func(c *SellClient) {
		c.transport.quota = q
	}
}

// WithSellRetries sets how many times a transient failure is retried and the
// first backoff interval.
func WithSellRetries(maxRetries int, initialBackoff time.Duration) SellOption {
	return func(c *SellClient) {
		c.transport.maxRetries = maxRetries
		c.transport.initialBackoff = initialBackoff
	}
}

// WithSellNowFunc overrides the time function for testing.
func WithSellNowFunc(f func() time.Time) SellOption {
	return func(c *SellClient) {
		c.nowFunc = f
	}
}

// NewSellClient creates a new Sell API client.
func NewSellClient(opts ...SellOption) *SellClient {
	c := &SellClient{
		baseURL:     defaultAPIBaseURL,
		marketplace: defaultMarketplace,
		transport:   newTransport(),
		nowFunc:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListActiveListings returns one page of the seller's inventory items.
func (c *SellClient) ListActiveListings(
	ctx context.Context,
	accessToken string,
	limit, offset int,
) (*ListingsPage, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(clampLimit(limit)))
	params.Set("offset", strconv.Itoa(max(offset, 0)))

	var resp inventoryItemsResponse
	endpoint := c.baseURL + inventoryItemsPath + "?" + params.Encode()
	if err := c.transport.getJSON(ctx, endpoint, c.headers(accessToken), &resp); err != nil {
		return nil, fmt.Errorf("listing inventory items: %w", err)
	}

	return &ListingsPage{
		Listings: ToNormalizedListings(resp.InventoryItems),
		Total:    resp.Total,
		Offset:   max(offset, 0),
		Limit:    resp.Limit,
		HasMore:  resp.Next != "",
	}, nil
}

// ListSoldItems returns one page of orders created in the last daysBack
// days, flattened to one item per line item. daysBack is clamped to the 90
// days the Fulfillment API serves.
func (c *SellClient) ListSoldItems(
	ctx context.Context,
	accessToken string,
	daysBack, limit, offset int,
) (*SoldPage, error) {
	params := url.Values{}
	params.Set("filter", creationDateFilter(c.nowFunc(), daysBack))
	params.Set("limit", strconv.Itoa(clampLimit(limit)))
	params.Set("offset", strconv.Itoa(max(offset, 0)))

	var resp ordersResponse
	endpoint := c.baseURL + ordersPath + "?" + params.Encode()
	if err := c.transport.getJSON(ctx, endpoint, c.headers(accessToken), &resp); err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	return &SoldPage{
		Items:   ToNormalizedSoldItems(resp.Orders),
		Total:   resp.Total,
		Offset:  resp.Offset,
		Limit:   resp.Limit,
		HasMore: resp.Next != "",
	}, nil
}

func (c *SellClient) headers(accessToken string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+accessToken)
	h.Set("X-EBAY-C-MARKETPLACE-ID", c.marketplace)
	return h
}

// creationDateFilter builds the Fulfillment API filter for orders created on
// or after now minus daysBack days.
func creationDateFilter(now time.Time, daysBack int) string {
	if daysBack <= 0 || daysBack > maxDaysBack {
		daysBack = maxDaysBack
	}
	from := now.UTC().AddDate(0, 0, -daysBack)
	return "creationdate:[" + from.Format("2006-01-02T15:04:05.000Z") + "..]"
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return 50
	case limit > maxSellPageSize:
		return maxSellPageSize
	default:
		return limit
	}
}
