package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-ledger/internal/catalog"
)

const scryfallResponse = `{
  "object": "list",
  "total_cards": 2,
  "has_more": true,
  "data": [
    {
      "id": "bd8fa327-dd41-4737-8f19-2cf5eb1f7cdd",
      "name": "Black Lotus",
      "collector_number": "232",
      "set_name": "Limited Edition Alpha",
      "rarity": "rare",
      "image_uris": {"normal": "https://cards.scryfall.io/normal/front/b/d/bd8fa327.jpg"},
      "prices": {"usd": "27500.00", "usd_foil": null}
    },
    {
      "id": "f2bd7a6e-7c0f-4bde-9d8a-5b0b0b0b0b0b",
      "name": "Delver of Secrets // Insectile Aberration",
      "collector_number": "51",
      "set_name": "Innistrad",
      "rarity": "common",
      "card_faces": [
        {"image_uris": {"normal": "https://cards.scryfall.io/normal/front/f/2/f2bd7a6e.jpg"}},
        {"image_uris": {"normal": "https://cards.scryfall.io/normal/back/f/2/f2bd7a6e.jpg"}}
      ],
      "prices": {"usd": null, "usd_foil": "4.10"}
    }
  ]
}`

func TestScryfallClient_Search(t *testing.T) {
	t.Parallel()

	var gotQuery, gotPage, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cards/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		gotPage = r.URL.Query().Get("page")
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(scryfallResponse))
	}))
	defer srv.Close()

	c := catalog.NewScryfallClient(catalog.WithScryfallBaseURL(srv.URL))
	page, err := c.Search(context.Background(), "black lotus", 2)
	require.NoError(t, err)

	assert.Equal(t, "black lotus", gotQuery)
	assert.Equal(t, "2", gotPage)
	assert.Equal(t, "card-ledger/1.0", gotUA)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.Total)
	assert.True(t, page.HasMore)
	require.Len(t, page.Cards, 2)

	lotus := page.Cards[0]
	assert.Equal(t, catalog.SourceScryfall, lotus.Source)
	assert.Equal(t, "232", lotus.Number)
	assert.Equal(t, "Limited Edition Alpha", lotus.SetName)
	assert.Equal(t, "https://cards.scryfall.io/normal/front/b/d/bd8fa327.jpg", lotus.ImageURL)
	require.NotNil(t, lotus.MarketPrice)
	assert.InDelta(t, 27500.0, *lotus.MarketPrice, 0.001)

	delver := page.Cards[1]
	assert.Equal(t, "https://cards.scryfall.io/normal/front/f/2/f2bd7a6e.jpg", delver.ImageURL)
	require.NotNil(t, delver.MarketPrice)
	assert.InDelta(t, 4.10, *delver.MarketPrice, 0.001, "falls back to foil price")
}

func TestScryfallClient_NotFoundIsEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"object": "error", "code": "not_found", "status": 404, "details": "Your query didn't match any cards."}`))
	}))
	defer srv.Close()

	c := catalog.NewScryfallClient(catalog.WithScryfallBaseURL(srv.URL))
	page, err := c.Search(context.Background(), "zzzz", 1)
	require.NoError(t, err)
	assert.Empty(t, page.Cards)
	assert.Equal(t, 1, page.Page)
	assert.False(t, page.HasMore)
}

func TestScryfallClient_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		body      string
		wantCalls int32
		wantIs    error
		errMsg    string
	}{
		{
			name:      "bad gateway retried",
			status:    http.StatusBadGateway,
			wantCalls: 2,
			wantIs:    catalog.ErrUnavailable,
		},
		{
			name:      "invalid query reports details",
			status:    http.StatusBadRequest,
			body:      `{"object": "error", "code": "bad_request", "status": 400, "details": "All of your terms were ignored."}`,
			wantCalls: 1,
			errMsg:    "scryfall returned status 400: All of your terms were ignored.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := catalog.NewScryfallClient(
				catalog.WithScryfallBaseURL(srv.URL),
				catalog.WithScryfallRetries(1, time.Millisecond),
			)
			_, err := c.Search(context.Background(), "t:goblin", 1)
			require.Error(t, err)
			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
			}
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestScryfallClient_CanceledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := catalog.NewScryfallClient(catalog.WithScryfallBaseURL(srv.URL))
	_, err := c.Search(ctx, "lotus", 1)
	require.ErrorIs(t, err, context.Canceled)
}
