package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/card-ledger/pkg/prefs"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// PreferenceService validates and stores per-user preferences.
type PreferenceService interface {
	Get(ctx context.Context, userID, key string) (*domain.Preference, error)
	Set(ctx context.Context, userID, key string, value json.RawMessage) error
	Delete(ctx context.Context, userID, key string) error
	List(ctx context.Context, userID string) ([]domain.Preference, error)
}

// PreferenceHandler handles preference endpoints.
type PreferenceHandler struct {
	prefs PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(p PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{prefs: p}
}

// PreferenceInput identifies one preference.
type PreferenceInput struct {
	UserID string `path:"user_id" minLength:"1" doc:"User ID"`
	Key    string `path:"key"     minLength:"1" doc:"Preference key" example:"ui.theme"`
}

// PutPreferenceInput carries the JSON value to store. Any JSON value is
// accepted: objects, arrays, strings, numbers, booleans.
type PutPreferenceInput struct {
	UserID string `path:"user_id" minLength:"1" doc:"User ID"`
	Key    string `path:"key"     minLength:"1" doc:"Preference key" example:"ui.theme"`
	Body   any
}

// PreferenceOutput wraps one preference.
type PreferenceOutput struct {
	Body *domain.Preference
}

// ListPreferencesInput identifies the user.
type ListPreferencesInput struct {
	UserID string `path:"user_id" minLength:"1" doc:"User ID"`
}

// ListPreferencesOutput lists every stored preference.
type ListPreferencesOutput struct {
	Body struct {
		Preferences []domain.Preference `json:"preferences"`
	}
}

// List returns all of a user's preferences.
func (h *PreferenceHandler) List(ctx context.Context, in *ListPreferencesInput) (*ListPreferencesOutput, error) {
	ps, err := h.prefs.List(ctx, in.UserID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing preferences", err)
	}
	if ps == nil {
		ps = []domain.Preference{}
	}
	out := &ListPreferencesOutput{}
	out.Body.Preferences = ps
	return out, nil
}

// Get returns one preference.
func (h *PreferenceHandler) Get(ctx context.Context, in *PreferenceInput) (*PreferenceOutput, error) {
	p, err := h.prefs.Get(ctx, in.UserID, in.Key)
	if err != nil {
		return nil, preferenceError("loading preference", err)
	}
	return &PreferenceOutput{Body: p}, nil
}

// Put stores the request body as the preference value.
func (h *PreferenceHandler) Put(ctx context.Context, in *PutPreferenceInput) (*struct{}, error) {
	raw, err := json.Marshal(in.Body)
	if err != nil {
		return nil, huma.Error400BadRequest("encoding preference", err)
	}
	if err := h.prefs.Set(ctx, in.UserID, in.Key, raw); err != nil {
		return nil, preferenceError("saving preference", err)
	}
	return nil, nil
}

// Delete removes one preference.
func (h *PreferenceHandler) Delete(ctx context.Context, in *PreferenceInput) (*struct{}, error) {
	if err := h.prefs.Delete(ctx, in.UserID, in.Key); err != nil {
		return nil, preferenceError("deleting preference", err)
	}
	return nil, nil
}

func preferenceError(op string, err error) error {
	switch {
	case errors.Is(err, prefs.ErrInvalidKey), errors.Is(err, prefs.ErrInvalidValue):
		return huma.Error400BadRequest(op, err)
	case errors.Is(err, prefs.ErrNotFound):
		return huma.Error404NotFound(op, err)
	default:
		return huma.Error500InternalServerError(op, err)
	}
}

// RegisterPreferenceRoutes registers the preference endpoints.
func RegisterPreferenceRoutes(api huma.API, h *PreferenceHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-preferences",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{user_id}/preferences",
		Summary:     "List preferences",
		Tags:        []string{"preferences"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-preference",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{user_id}/preferences/{key}",
		Summary:     "Get a preference",
		Tags:        []string{"preferences"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID:   "put-preference",
		Method:        http.MethodPut,
		Path:          "/api/v1/users/{user_id}/preferences/{key}",
		Summary:       "Set a preference",
		Description:   "Stores the request body, which must be a JSON value of at most 64 KiB.",
		Tags:          []string{"preferences"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusBadRequest},
	}, h.Put)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-preference",
		Method:        http.MethodDelete,
		Path:          "/api/v1/users/{user_id}/preferences/{key}",
		Summary:       "Delete a preference",
		Tags:          []string{"preferences"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.Delete)
}
