package ebay_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-ledger/internal/ebay"
)

const inventoryPage = `{
	"href": "https://api.ebay.com/sell/inventory/v1/inventory_item?limit=2&offset=0",
	"limit": 2,
	"next": "https://api.ebay.com/sell/inventory/v1/inventory_item?limit=2&offset=2",
	"size": 2,
	"total": 3,
	"inventoryItems": [
		{
			"sku": "CHZ-4-102",
			"condition": "USED_VERY_GOOD",
			"product": {"title": "Charizard 4/102 Base Set Holo NM", "imageUrls": ["https://i.ebayimg.com/chz.jpg"]},
			"availability": {"shipToLocationAvailability": {"quantity": 1}}
		},
		{
			"sku": "PIK-58-102",
			"product": {"title": "Pikachu 58/102", "aspects": {"Card Condition": ["Lightly Played (Excellent)"]}},
			"availability": {"shipToLocationAvailability": {"quantity": 3}}
		}
	]
}`

const ordersPage = `{
	"href": "https://api.ebay.com/sell/fulfillment/v1/order?limit=50&offset=0",
	"limit": 50,
	"offset": 0,
	"total": 1,
	"orders": [
		{
			"orderId": "12-34567-89012",
			"creationDate": "2026-10-01T10:00:00.000Z",
			"orderPaymentStatus": "PAID",
			"buyer": {"username": "collector99"},
			"totalMarketplaceFee": {"value": "6.50", "currency": "USD"},
			"lineItems": [
				{
					"lineItemId": "10000000001",
					"legacyItemId": "110000000001",
					"sku": "CHZ-4-102",
					"title": "PSA 9 Charizard 4/102",
					"quantity": 1,
					"lineItemCost": {"value": "50.00", "currency": "USD"},
					"deliveryCost": {"shippingCost": {"value": "4.99", "currency": "USD"}}
				}
			]
		}
	]
}`

func TestSellClient_ListActiveListings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/sell/inventory/v1/inventory_item", r.URL.Path)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		assert.Equal(t, "EBAY_GB", r.Header.Get("X-EBAY-C-MARKETPLACE-ID"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(inventoryPage))
	}))
	defer srv.Close()

	client := ebay.NewSellClient(
		ebay.WithSellBaseURL(srv.URL+"/"),
		ebay.WithSellMarketplace("EBAY_GB"),
	)

	page, err := client.ListActiveListings(context.Background(), "user-token", 2, 0)
	require.NoError(t, err)
	require.Len(t, page.Listings, 2)
	assert.True(t, page.HasMore)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, "CHZ-4-102", page.Listings[0].SourceID)
	assert.Equal(t, "https://i.ebayimg.com/chz.jpg", page.Listings[0].ImageURL)
	assert.Equal(t, 3, page.Listings[1].Quantity)
	assert.Equal(t, []string{"Lightly Played (Excellent)"}, page.Listings[1].Aspects["Card Condition"])
}

func TestSellClient_ListActiveListings_LimitClamped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		limit     int
		offset    int
		wantLimit string
		wantOff   string
	}{
		{name: "zero uses default", limit: 0, wantLimit: "50", wantOff: "0"},
		{name: "above max", limit: 1000, offset: 10, wantLimit: "200", wantOff: "10"},
		{name: "negative offset", limit: 5, offset: -3, wantLimit: "5", wantOff: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantLimit, r.URL.Query().Get("limit"))
				assert.Equal(t, tt.wantOff, r.URL.Query().Get("offset"))
				_, _ = w.Write([]byte(`{"total":0,"inventoryItems":[]}`))
			}))
			defer srv.Close()

			client := ebay.NewSellClient(ebay.WithSellBaseURL(srv.URL))
			page, err := client.ListActiveListings(context.Background(), "t", tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Empty(t, page.Listings)
			assert.False(t, page.HasMore)
		})
	}
}

func TestSellClient_ListSoldItems(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sell/fulfillment/v1/order", r.URL.Path)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		assert.Equal(t, "creationdate:[2026-09-15T12:30:00.000Z..]", r.URL.Query().Get("filter"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(ordersPage))
	}))
	defer srv.Close()

	client := ebay.NewSellClient(
		ebay.WithSellBaseURL(srv.URL),
		ebay.WithSellNowFunc(func() time.Time { return now }),
	)

	page, err := client.ListSoldItems(context.Background(), "user-token", 30, 50, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.False(t, page.HasMore)

	item := page.Items[0]
	assert.Equal(t, "12-34567-89012", item.OrderID)
	assert.Equal(t, "10000000001", item.LineItemID)
	assert.InDelta(t, 50.00, item.SalePrice, 0.001)
	assert.InDelta(t, 4.99, item.ShippingCharged, 0.001)
	assert.InDelta(t, 6.50, item.Fees, 0.001)
	assert.Equal(t, "collector99", item.BuyerUsername)
}

func TestSellClient_ListSoldItems_DaysBackClamped(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "creationdate:[2026-07-17T00:00:00.000Z..]", r.URL.Query().Get("filter"))
		_, _ = w.Write([]byte(`{"total":0,"orders":[]}`))
	}))
	defer srv.Close()

	client := ebay.NewSellClient(
		ebay.WithSellBaseURL(srv.URL),
		ebay.WithSellNowFunc(func() time.Time { return now }),
	)

	_, err := client.ListSoldItems(context.Background(), "t", 365, 10, 0)
	require.NoError(t, err)
}

func TestSellClient_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantIs    error
		wantAPI   bool
		wantCalls int32
	}{
		{name: "401 means reconnect", status: http.StatusUnauthorized, wantIs: ebay.ErrAuthorizationExpired, wantCalls: 1},
		{name: "403 means reconnect", status: http.StatusForbidden, wantIs: ebay.ErrAuthorizationExpired, wantCalls: 1},
		{name: "429 retried then unavailable", status: http.StatusTooManyRequests, wantIs: ebay.ErrProviderUnavailable, wantCalls: 3},
		{name: "502 retried then unavailable", status: http.StatusBadGateway, wantIs: ebay.ErrProviderUnavailable, wantCalls: 3},
		{name: "400 is an api error", status: http.StatusBadRequest, wantAPI: true, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"errors":[{"errorId":25001,"message":"A system error has occurred."}]}`))
			}))
			defer srv.Close()

			client := ebay.NewSellClient(
				ebay.WithSellBaseURL(srv.URL),
				ebay.WithSellRetries(2, time.Millisecond),
			)

			_, err := client.ListActiveListings(context.Background(), "t", 10, 0)
			require.Error(t, err)
			assert.Equal(t, tt.wantCalls, calls.Load())

			if tt.wantAPI {
				var apiErr *ebay.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, "25001", apiErr.ErrorID)
				return
			}
			assert.ErrorIs(t, err, tt.wantIs)
		})
	}
}

func TestSellClient_NetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := ebay.NewSellClient(
		ebay.WithSellBaseURL(url),
		ebay.WithSellRetries(1, time.Millisecond),
	)

	_, err := client.ListSoldItems(context.Background(), "t", 7, 10, 0)
	require.ErrorIs(t, err, ebay.ErrProviderUnavailable)
}
