package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// ConnectionManager reads and removes a user's provider connection.
type ConnectionManager interface {
	Connection(ctx context.Context, userID string, provider domain.Provider) (*domain.TokenRecord, error)
	Disconnect(ctx context.Context, userID string, provider domain.Provider) error
}

// ConnectionHandler handles provider connection endpoints.
type ConnectionHandler struct {
	conns ConnectionManager
}

// NewConnectionHandler creates a new ConnectionHandler.
func NewConnectionHandler(c ConnectionManager) *ConnectionHandler {
	return &ConnectionHandler{conns: c}
}

// ConnectionInput identifies one connection.
type ConnectionInput struct {
	UserID   string `path:"user_id"  minLength:"1" doc:"User ID"`
	Provider string `path:"provider" enum:"ebay"   doc:"Provider name"`
}

// ConnectionOutput describes a connection without its secrets.
type ConnectionOutput struct {
	Body *domain.TokenRecord
}

// Get returns the stored connection for a provider.
func (h *ConnectionHandler) Get(ctx context.Context, in *ConnectionInput) (*ConnectionOutput, error) {
	rec, err := h.conns.Connection(ctx, in.UserID, domain.Provider(in.Provider))
	if err != nil {
		return nil, providerError("loading connection", err)
	}
	return &ConnectionOutput{Body: rec}, nil
}

// Delete disconnects the provider.
func (h *ConnectionHandler) Delete(ctx context.Context, in *ConnectionInput) (*struct{}, error) {
	if err := h.conns.Disconnect(ctx, in.UserID, domain.Provider(in.Provider)); err != nil {
		return nil, providerError("disconnecting", err)
	}
	return nil, nil
}

// RegisterConnectionRoutes registers the connection endpoints.
func RegisterConnectionRoutes(api huma.API, h *ConnectionHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-connection",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{user_id}/connections/{provider}",
		Summary:     "Get provider connection",
		Tags:        []string{"connections"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-connection",
		Method:        http.MethodDelete,
		Path:          "/api/v1/users/{user_id}/connections/{provider}",
		Summary:       "Disconnect provider",
		Description:   "Deletes the stored tokens. The user must reconnect to import again.",
		Tags:          []string{"connections"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Delete)
}
