// Package handlers implements the Huma operations of the card-ledger API.
// Handlers depend on small interfaces so they can be tested with mocks.
package handlers

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/card-ledger/internal/catalog"
	"github.com/donaldgifford/card-ledger/internal/ebay"
	"github.com/donaldgifford/card-ledger/internal/engine"
	"github.com/donaldgifford/card-ledger/internal/store"
)

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok" doc:"Status message"`
}

// providerError maps engine, eBay and catalog failures to HTTP errors.
// Anything outside the provider taxonomy is a 500.
func providerError(op string, err error) error {
	var (
		apiErr    *ebay.APIError
		statusErr *catalog.StatusError
	)

	switch {
	case errors.Is(err, engine.ErrNotConnected):
		return huma.NewError(http.StatusNotFound, "not_connected", err)
	case errors.Is(err, engine.ErrReconnectRequired),
		errors.Is(err, ebay.ErrAuthorizationExpired):
		return huma.NewError(http.StatusUnauthorized, "reconnect_required", err)
	case errors.Is(err, ebay.ErrProviderUnavailable),
		errors.Is(err, catalog.ErrUnavailable):
		return huma.Error503ServiceUnavailable(op+": provider unavailable", err)
	case errors.As(err, &apiErr), errors.As(err, &statusErr):
		return huma.Error502BadGateway(op+": provider error", err)
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound(op+": not found", err)
	default:
		return huma.Error500InternalServerError(op+" failed", err)
	}
}
