package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-ledger/internal/ebay"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	now := func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	srv := httptest.NewServer(newMux(testLogger(), defaultFixtures(), now))
	t.Cleanup(srv.Close)
	return srv
}

func TestDefaultFixtures(t *testing.T) {
	t.Parallel()

	f := defaultFixtures()
	assert.Len(t, f.Market, len(cards)*len(grades))
	assert.Len(t, f.Inventory, len(cards))
	assert.Len(t, f.Orders, len(cards))
}

func TestTokenHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		basicAuth  bool
		form       url.Values
		wantStatus int
		wantField  string
		wantValue  string
	}{
		{
			name:       "client credentials",
			basicAuth:  true,
			form:       url.Values{"grant_type": {"client_credentials"}},
			wantStatus: http.StatusOK,
			wantField:  "token_type",
			wantValue:  "Application Access Token",
		},
		{
			name:       "refresh token",
			basicAuth:  true,
			form:       url.Values{"grant_type": {"refresh_token"}, "refresh_token": {"r1"}},
			wantStatus: http.StatusOK,
			wantField:  "token_type",
			wantValue:  "User Access Token",
		},
		{
			name:       "revoked refresh token",
			basicAuth:  true,
			form:       url.Values{"grant_type": {"refresh_token"}, "refresh_token": {revokedRefreshToken}},
			wantStatus: http.StatusBadRequest,
			wantField:  "error",
			wantValue:  "invalid_grant",
		},
		{
			name:       "unknown grant",
			basicAuth:  true,
			form:       url.Values{"grant_type": {"password"}},
			wantStatus: http.StatusBadRequest,
			wantField:  "error",
			wantValue:  "unsupported_grant_type",
		},
		{
			name:       "missing basic auth",
			form:       url.Values{"grant_type": {"client_credentials"}},
			wantStatus: http.StatusUnauthorized,
			wantField:  "error",
			wantValue:  "invalid_client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/identity/v1/oauth2/token",
				strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if tt.basicAuth {
				req.SetBasicAuth("app-id", "cert-id")
			}
			w := httptest.NewRecorder()

			tokenHandler(testLogger())(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			var resp map[string]any
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantValue, resp[tt.wantField])
		})
	}
}

func TestBrowseSearch(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	tokens := ebay.NewAppTokenProvider("app", "cert",
		ebay.WithTokenURL(srv.URL+"/identity/v1/oauth2/token"))
	client := ebay.NewBrowseClient(tokens,
		ebay.WithBrowseURL(srv.URL+"/buy/browse/v1/item_summary/search"))

	resp, err := client.Search(context.Background(), ebay.SearchRequest{Query: "umbreon psa 10", Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Contains(t, resp.Items[0].Title, "Umbreon VMAX")
	assert.False(t, resp.HasMore)

	resp, err = client.Search(context.Background(), ebay.SearchRequest{Query: "alt art", Limit: 5})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 5)
	assert.Equal(t, 12, resp.Total)
	assert.True(t, resp.HasMore)
}

func TestSellEndpoints(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	client := ebay.NewSellClient(
		ebay.WithSellBaseURL(srv.URL),
		ebay.WithSellNowFunc(func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }),
	)

	listings, err := client.ListActiveListings(context.Background(), "user-token", 4, 0)
	require.NoError(t, err)
	assert.Len(t, listings.Listings, 4)
	assert.Equal(t, len(cards), listings.Total)
	assert.True(t, listings.HasMore)

	listings, err = client.ListActiveListings(context.Background(), "user-token", 4, 4)
	require.NoError(t, err)
	assert.Len(t, listings.Listings, len(cards)-4)
	assert.False(t, listings.HasMore)

	sold, err := client.ListSoldItems(context.Background(), "user-token", 90, 50, 0)
	require.NoError(t, err)
	assert.Len(t, sold.Items, len(cards))
	assert.False(t, sold.HasMore)
}

func TestSellEndpoints_RequireBearer(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	for _, path := range []string{
		"/sell/inventory/v1/inventory_item",
		"/sell/fulfillment/v1/order",
		"/developer/analytics/v1_beta/rate_limit/?api_context=buy&api_name=browse",
	} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	tokens := ebay.NewAppTokenProvider("app", "cert",
		ebay.WithTokenURL(srv.URL+"/identity/v1/oauth2/token"))
	client := ebay.NewAnalyticsClient(tokens,
		ebay.WithAnalyticsURL(srv.URL+"/developer/analytics/v1_beta/rate_limit/"))

	q, err := client.GetQuota(context.Background(), ebay.SellInventoryResource)
	require.NoError(t, err)
	assert.Equal(t, "sell.inventory", q.Resource)
	assert.Equal(t, int64(4880), q.Remaining)
	assert.Equal(t, 24*time.Hour, q.TimeWindow)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), q.ResetAt)
}
