package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// UserStore reads and writes the local user record.
type UserStore interface {
	UpsertUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// UserHandler keeps the notification address for a user.
type UserHandler struct {
	store UserStore
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(s UserStore) *UserHandler {
	return &UserHandler{store: s}
}

// UserInput identifies a user.
type UserInput struct {
	UserID string `path:"user_id" minLength:"1" doc:"User ID"`
}

// PutUserInput sets a user's email.
type PutUserInput struct {
	UserID string `path:"user_id" minLength:"1" doc:"User ID"`
	Body   struct {
		Email string `json:"email" format:"email" doc:"Address price alerts are sent to" example:"collector@example.com"`
	}
}

// UserOutput wraps a user.
type UserOutput struct {
	Body *domain.User
}

// Get returns the user record.
func (h *UserHandler) Get(ctx context.Context, in *UserInput) (*UserOutput, error) {
	u, err := h.store.GetUser(ctx, in.UserID)
	if err != nil {
		return nil, providerError("loading user", err)
	}
	return &UserOutput{Body: u}, nil
}

// Put creates or updates the user record.
func (h *UserHandler) Put(ctx context.Context, in *PutUserInput) (*UserOutput, error) {
	u := &domain.User{ID: in.UserID, Email: in.Body.Email}
	if err := h.store.UpsertUser(ctx, u); err != nil {
		return nil, huma.Error500InternalServerError("saving user", err)
	}
	return &UserOutput{Body: u}, nil
}

// RegisterUserRoutes registers the user endpoints.
func RegisterUserRoutes(api huma.API, h *UserHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{user_id}",
		Summary:     "Get user",
		Tags:        []string{"users"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "put-user",
		Method:      http.MethodPut,
		Path:        "/api/v1/users/{user_id}",
		Summary:     "Create or update user",
		Tags:        []string{"users"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Put)
}
