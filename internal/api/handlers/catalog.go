package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/card-ledger/internal/catalog"
)

// CatalogSearcher searches a named card catalog.
type CatalogSearcher interface {
	Search(ctx context.Context, source, query string, page int) (*catalog.Page, error)
	Sources() []string
}

// CatalogHandler proxies card catalog searches.
type CatalogHandler struct {
	catalogs CatalogSearcher
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(c CatalogSearcher) *CatalogHandler {
	return &CatalogHandler{catalogs: c}
}

// CatalogSearchInput is the query for a catalog search.
type CatalogSearchInput struct {
	Query  string `query:"q"      required:"true" minLength:"1" doc:"Card name or catalog query" example:"charizard"`
	Source string `query:"source" doc:"Catalog to search, defaults to the configured catalog" example:"pokemontcg"`
	Page   int    `query:"page"   minimum:"1" default:"1" doc:"1-based page"`
}

// CatalogSearchOutput is one page of catalog cards.
type CatalogSearchOutput struct {
	Body *catalog.Page
}

// CatalogSourcesOutput lists the configured catalogs.
type CatalogSourcesOutput struct {
	Body struct {
		Sources []string `json:"sources" example:"[\"pokemontcg\",\"scryfall\"]"`
	}
}

// Search runs a catalog search.
func (h *CatalogHandler) Search(ctx context.Context, in *CatalogSearchInput) (*CatalogSearchOutput, error) {
	page, err := h.catalogs.Search(ctx, in.Source, in.Query, in.Page)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownSource) {
			return nil, huma.Error400BadRequest("unknown catalog source", err)
		}
		return nil, providerError("searching catalog", err)
	}
	return &CatalogSearchOutput{Body: page}, nil
}

// ListSources returns the catalog names accepted by Search.
func (h *CatalogHandler) ListSources(_ context.Context, _ *struct{}) (*CatalogSourcesOutput, error) {
	out := &CatalogSourcesOutput{}
	out.Body.Sources = h.catalogs.Sources()
	return out, nil
}

// RegisterCatalogRoutes registers the catalog endpoints.
func RegisterCatalogRoutes(api huma.API, h *CatalogHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-catalog",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/search",
		Summary:     "Search a card catalog",
		Description: "Searches the Pokémon TCG API or Scryfall and returns normalized cards.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusBadRequest, http.StatusBadGateway, http.StatusServiceUnavailable},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "list-catalog-sources",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/sources",
		Summary:     "List card catalogs",
		Tags:        []string{"catalog"},
	}, h.ListSources)
}
