package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/card-ledger/internal/ebay"
)

// PriceSource returns the current market price for an item.
type PriceSource interface {
	CurrentPrice(ctx context.Context, itemID, itemName string) (float64, error)
}

// MarketHandler handles eBay marketplace search and price lookups.
type MarketHandler struct {
	client ebay.EbayClient
	prices PriceSource
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(client ebay.EbayClient, prices PriceSource) *MarketHandler {
	return &MarketHandler{client: client, prices: prices}
}

// MarketSearchInput is the request body for the search endpoint.
type MarketSearchInput struct {
	Body struct {
		Query      string            `json:"query"                 minLength:"1" doc:"eBay search query"                        example:"charizard ex 199 psa 10"`
		CategoryID string            `json:"category_id,omitempty" doc:"eBay category ID"                                      example:"183454"`
		Limit      int               `json:"limit,omitempty"       minimum:"1"   maximum:"200" doc:"Maximum results (default 10)" example:"10"`
		Sort       string            `json:"sort,omitempty"        doc:"Sort order"                                            example:"price"`
		Filters    map[string]string `json:"filters,omitempty"     doc:"Additional Browse API parameters"`
	}
}

// MarketSearchOutput is the response body for the search endpoint.
type MarketSearchOutput struct {
	Body struct {
		Items   []ebay.ItemSummary `json:"items"    doc:"Browse API item summaries"`
		Prices  []float64          `json:"prices"   doc:"Parsed prices of the returned items"`
		Total   int                `json:"total"    doc:"Total matching items"`
		HasMore bool               `json:"has_more" doc:"Whether more results are available"`
	}
}

// MarketPriceInput names the item to price.
type MarketPriceInput struct {
	ItemID   string `query:"item_id"   doc:"Item ID, used when no name is given" example:"sv3pt5-199"`
	ItemName string `query:"item_name" doc:"Search phrase"                       example:"Charizard ex 199/165"`
}

// MarketPriceOutput is the current market price.
type MarketPriceOutput struct {
	Body struct {
		Price float64 `json:"price" example:"212.5" doc:"Median asking price of comparable listings"`
	}
}

// Search proxies a search request to the eBay Browse API.
func (h *MarketHandler) Search(ctx context.Context, input *MarketSearchInput) (*MarketSearchOutput, error) {
	limit := input.Body.Limit
	if limit <= 0 {
		limit = 10
	}

	resp, err := h.client.Search(ctx, ebay.SearchRequest{
		Query:      input.Body.Query,
		CategoryID: input.Body.CategoryID,
		Limit:      limit,
		Sort:       input.Body.Sort,
		Filters:    input.Body.Filters,
	})
	if err != nil {
		return nil, providerError("searching eBay", err)
	}

	out := &MarketSearchOutput{}
	out.Body.Items = resp.Items
	if out.Body.Items == nil {
		out.Body.Items = []ebay.ItemSummary{}
	}
	out.Body.Prices = ebay.ItemPrices(resp.Items, "")
	out.Body.Total = resp.Total
	out.Body.HasMore = resp.HasMore
	return out, nil
}

// Price returns the current market price used by alert checks.
func (h *MarketHandler) Price(ctx context.Context, in *MarketPriceInput) (*MarketPriceOutput, error) {
	if in.ItemID == "" && in.ItemName == "" {
		return nil, huma.Error422UnprocessableEntity("item_id or item_name is required")
	}

	p, err := h.prices.CurrentPrice(ctx, in.ItemID, in.ItemName)
	if err != nil {
		if errors.Is(err, ebay.ErrNoPriceData) {
			return nil, huma.Error404NotFound("no price data", err)
		}
		return nil, providerError("pricing item", err)
	}

	out := &MarketPriceOutput{}
	out.Body.Price = p
	return out, nil
}

// RegisterMarketRoutes registers the marketplace endpoints.
func RegisterMarketRoutes(api huma.API, h *MarketHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-market",
		Method:      http.MethodPost,
		Path:        "/api/v1/market/search",
		Summary:     "Search eBay listings",
		Description: "Proxies a search request to the eBay Browse API.",
		Tags:        []string{"market"},
		Errors:      []int{http.StatusBadGateway, http.StatusServiceUnavailable},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "get-market-price",
		Method:      http.MethodGet,
		Path:        "/api/v1/market/price",
		Summary:     "Get an item's market price",
		Description: "Returns the price an alert check would use for the item.",
		Tags:        []string{"market"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway, http.StatusServiceUnavailable},
	}, h.Price)
}
