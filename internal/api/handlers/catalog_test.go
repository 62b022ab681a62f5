package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-ledger/internal/api/handlers"
	"github.com/donaldgifford/card-ledger/internal/api/handlers/mocks"
	"github.com/donaldgifford/card-ledger/internal/catalog"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

func TestCatalogHandler_Search(t *testing.T) {
	t.Parallel()

	price := 312.4

	tests := []struct {
		name       string
		path       string
		setupMock  func(*mocks.MockCatalogSearcher)
		wantStatus int
		wantBody   string
	}{
		{
			name: "default source and page",
			path: "/api/v1/catalog/search?q=charizard",
			setupMock: func(m *mocks.MockCatalogSearcher) {
				m.EXPECT().
					Search(mock.Anything, "", "charizard", 1).
					Return(&catalog.Page{
						Cards: []domain.CatalogCard{{
							ID: "base1-4", Source: catalog.SourcePokemonTCG, Name: "Charizard", MarketPrice: &price,
						}},
						Page:  1,
						Total: 1,
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"market_price":312.4`,
		},
		{
			name: "explicit source and page",
			path: "/api/v1/catalog/search?q=black+lotus&source=scryfall&page=2",
			setupMock: func(m *mocks.MockCatalogSearcher) {
				m.EXPECT().
					Search(mock.Anything, "scryfall", "black lotus", 2).
					Return(&catalog.Page{Page: 2}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing query returns 422",
			path:       "/api/v1/catalog/search",
			setupMock:  func(_ *mocks.MockCatalogSearcher) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown source returns 400",
			path: "/api/v1/catalog/search?q=x&source=yugioh",
			setupMock: func(m *mocks.MockCatalogSearcher) {
				m.EXPECT().
					Search(mock.Anything, "yugioh", "x", 1).
					Return(nil, fmt.Errorf("%w: %q", catalog.ErrUnknownSource, "yugioh")).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `unknown catalog source`,
		},
		{
			name: "catalog down returns 503",
			path: "/api/v1/catalog/search?q=x",
			setupMock: func(m *mocks.MockCatalogSearcher) {
				m.EXPECT().
					Search(mock.Anything, "", "x", 1).
					Return(nil, fmt.Errorf("searching pokemontcg for %q: %w", "x", catalog.ErrUnavailable)).
					Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "catalog rejects query returns 502",
			path: "/api/v1/catalog/search?q=x",
			setupMock: func(m *mocks.MockCatalogSearcher) {
				m.EXPECT().
					Search(mock.Anything, "", "x", 1).
					Return(nil, &catalog.StatusError{Source: "pokemontcg", StatusCode: 400, Message: "bad query"}).
					Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `bad query`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mc := mocks.NewMockCatalogSearcher(t)
			tt.setupMock(mc)

			_, api := humatest.New(t)
			handlers.RegisterCatalogRoutes(api, handlers.NewCatalogHandler(mc))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestCatalogHandler_ListSources(t *testing.T) {
	t.Parallel()

	mc := mocks.NewMockCatalogSearcher(t)
	mc.EXPECT().Sources().Return([]string{"pokemontcg", "scryfall"}).Once()

	_, api := humatest.New(t)
	handlers.RegisterCatalogRoutes(api, handlers.NewCatalogHandler(mc))

	resp := api.Get("/api/v1/catalog/sources")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"sources":["pokemontcg","scryfall"]}`, resp.Body.String())
}
