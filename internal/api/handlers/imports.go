package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/card-ledger/internal/engine"
)

// Importer pulls a user's listings and sales from eBay.
type Importer interface {
	ImportListings(ctx context.Context, userID string, materialize bool) (*engine.ListingsImport, error)
	ImportSales(ctx context.Context, userID string, daysBack int, materialize bool) (*engine.SalesImport, error)
}

// ImportHandler handles import requests.
type ImportHandler struct {
	importer Importer
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(i Importer) *ImportHandler {
	return &ImportHandler{importer: i}
}

// ImportListingsInput selects preview or materialized listings import.
type ImportListingsInput struct {
	UserID      string `path:"user_id"      minLength:"1" doc:"User ID"`
	Materialize bool   `query:"materialize" doc:"Save the mapped items instead of only previewing them"`
}

// ImportListingsOutput is the listings import result.
type ImportListingsOutput struct {
	Body *engine.ListingsImport
}

// ImportSalesInput selects the sales window.
type ImportSalesInput struct {
	UserID      string `path:"user_id"      minLength:"1"                    doc:"User ID"`
	DaysBack    int    `query:"days_back"   minimum:"1"   maximum:"90" default:"90" doc:"Days of order history to import"`
	Materialize bool   `query:"materialize" doc:"Save the mapped sales instead of only previewing them"`
}

// ImportSalesOutput is the sales import result.
type ImportSalesOutput struct {
	Body *engine.SalesImport
}

// Listings imports the user's active eBay inventory.
func (h *ImportHandler) Listings(ctx context.Context, in *ImportListingsInput) (*ImportListingsOutput, error) {
	res, err := h.importer.ImportListings(ctx, in.UserID, in.Materialize)
	if err != nil {
		return nil, providerError("importing listings", err)
	}
	return &ImportListingsOutput{Body: res}, nil
}

// Sales imports the user's recent eBay orders.
func (h *ImportHandler) Sales(ctx context.Context, in *ImportSalesInput) (*ImportSalesOutput, error) {
	res, err := h.importer.ImportSales(ctx, in.UserID, in.DaysBack, in.Materialize)
	if err != nil {
		return nil, providerError("importing sales", err)
	}
	return &ImportSalesOutput{Body: res}, nil
}

// RegisterImportRoutes registers the import endpoints.
func RegisterImportRoutes(api huma.API, h *ImportHandler) {
	errs := []int{
		http.StatusUnauthorized,
		http.StatusNotFound,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
	}

	huma.Register(api, huma.Operation{
		OperationID: "import-listings",
		Method:      http.MethodPost,
		Path:        "/api/v1/users/{user_id}/imports/listings",
		Summary:     "Import eBay listings",
		Description: "Pages through the seller's inventory and maps each item to an inventory draft.",
		Tags:        []string{"imports"},
		Errors:      errs,
	}, h.Listings)

	huma.Register(api, huma.Operation{
		OperationID: "import-sales",
		Method:      http.MethodPost,
		Path:        "/api/v1/users/{user_id}/imports/sales",
		Summary:     "Import eBay sales",
		Description: "Pages through the seller's recent orders and maps each line item to a sale draft.",
		Tags:        []string{"imports"},
		Errors:      errs,
	}, h.Sales)
}
