package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-ledger/internal/catalog"
	"github.com/donaldgifford/card-ledger/internal/ebay"
	"github.com/donaldgifford/card-ledger/internal/engine"
	"github.com/donaldgifford/card-ledger/internal/store"
)

func TestProviderError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not connected", engine.ErrNotConnected, http.StatusNotFound},
		{"reconnect required", fmt.Errorf("%w: %w", engine.ErrReconnectRequired, &ebay.TokenRefreshError{StatusCode: 400}), http.StatusUnauthorized},
		{"authorization expired", fmt.Errorf("listing: %w", ebay.ErrAuthorizationExpired), http.StatusUnauthorized},
		{"ebay unavailable", fmt.Errorf("listing: %w", ebay.ErrProviderUnavailable), http.StatusServiceUnavailable},
		{"catalog unavailable", fmt.Errorf("searching: %w", catalog.ErrUnavailable), http.StatusServiceUnavailable},
		{"ebay api error", fmt.Errorf("listing: %w", &ebay.APIError{StatusCode: 400}), http.StatusBadGateway},
		{"catalog status error", &catalog.StatusError{StatusCode: 400}, http.StatusBadGateway},
		{"store not found", fmt.Errorf("alert: %w", store.ErrNotFound), http.StatusNotFound},
		{"anything else", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var se huma.StatusError
			require.ErrorAs(t, providerError("op", tt.err), &se)
			assert.Equal(t, tt.wantStatus, se.GetStatus())
		})
	}
}
