package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/card-ledger/internal/engine"
	"github.com/donaldgifford/card-ledger/internal/store"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// AlertStore persists price alerts.
type AlertStore interface {
	CreateAlert(ctx context.Context, a *domain.PriceAlert) error
	ListAlerts(ctx context.Context, q *store.AlertQuery) ([]domain.PriceAlert, int, error)
	DeleteAlert(ctx context.Context, userID, id string) error
}

// AlertChecker runs one alert check pass.
type AlertChecker interface {
	RunAlertCheck(ctx context.Context) (*engine.AlertCheckResult, error)
}

// AlertHandler handles price alert CRUD and manual checks.
type AlertHandler struct {
	store   AlertStore
	checker AlertChecker
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(s AlertStore, c AlertChecker) *AlertHandler {
	return &AlertHandler{store: s, checker: c}
}

// ListAlertsInput filters a user's alerts.
type ListAlertsInput struct {
	UserID string `path:"user_id" minLength:"1" doc:"User ID"`
	Status string `query:"status" enum:"active,triggered" doc:"Only active or only triggered alerts"`
	Limit  int    `query:"limit"  minimum:"1" maximum:"200" default:"50" doc:"Page size"`
	Offset int    `query:"offset" minimum:"0" doc:"Rows to skip"`
	Order  string `query:"order"  enum:"created_at,target_price,triggered_at" doc:"Sort column"`
}

// ListAlertsOutput is one page of alerts.
type ListAlertsOutput struct {
	Body struct {
		Alerts  []domain.PriceAlert `json:"alerts"`
		Total   int                 `json:"total"    example:"12"`
		HasMore bool                `json:"has_more"`
	}
}

// CreateAlertInput is the request body for a new alert.
type CreateAlertInput struct {
	UserID string `path:"user_id" minLength:"1" doc:"User ID"`
	Body   struct {
		ItemID      string  `json:"item_id"     minLength:"1"        doc:"Item to watch"        example:"sv3pt5-199"`
		ItemName    string  `json:"item_name"   minLength:"1"        doc:"Name used for pricing" example:"Charizard ex 199/165"`
		Direction   string  `json:"direction"   enum:"above,below"   doc:"Fire when the price goes above or below the target"`
		TargetPrice float64 `json:"target_price" minimum:"0"         doc:"Target price"          example:"250"`
	}
}

// AlertOutput wraps a single alert.
type AlertOutput struct {
	Body *domain.PriceAlert
}

// DeleteAlertInput identifies one alert.
type DeleteAlertInput struct {
	UserID string `path:"user_id" minLength:"1" doc:"User ID"`
	ID     string `path:"id"      format:"uuid" doc:"Alert ID"`
}

// CheckAlertsOutput summarizes a manual check.
type CheckAlertsOutput struct {
	Body *engine.AlertCheckResult
}

// List returns a page of a user's alerts, newest first.
func (h *AlertHandler) List(ctx context.Context, in *ListAlertsInput) (*ListAlertsOutput, error) {
	q := &store.AlertQuery{
		UserID:  &in.UserID,
		Status:  store.AlertStatus(in.Status),
		Limit:   in.Limit,
		Offset:  in.Offset,
		OrderBy: in.Order,
	}

	alerts, total, err := h.store.ListAlerts(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing alerts", err)
	}
	if alerts == nil {
		alerts = []domain.PriceAlert{}
	}

	out := &ListAlertsOutput{}
	out.Body.Alerts = alerts
	out.Body.Total = total
	out.Body.HasMore = in.Offset+len(alerts) < total
	return out, nil
}

// Create stores a new active alert.
func (h *AlertHandler) Create(ctx context.Context, in *CreateAlertInput) (*AlertOutput, error) {
	a := &domain.PriceAlert{
		UserID:      in.UserID,
		ItemID:      in.Body.ItemID,
		ItemName:    in.Body.ItemName,
		Direction:   domain.AlertDirection(in.Body.Direction),
		TargetPrice: in.Body.TargetPrice,
	}
	if !a.Direction.Valid() {
		return nil, huma.Error422UnprocessableEntity("direction must be above or below")
	}

	if err := h.store.CreateAlert(ctx, a); err != nil {
		return nil, huma.Error500InternalServerError("creating alert", err)
	}
	return &AlertOutput{Body: a}, nil
}

// Delete removes one of the user's alerts.
func (h *AlertHandler) Delete(ctx context.Context, in *DeleteAlertInput) (*struct{}, error) {
	if err := h.store.DeleteAlert(ctx, in.UserID, in.ID); err != nil {
		return nil, providerError("deleting alert", err)
	}
	return nil, nil
}

// Check runs an alert pass immediately.
func (h *AlertHandler) Check(ctx context.Context, _ *struct{}) (*CheckAlertsOutput, error) {
	res, err := h.checker.RunAlertCheck(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("alert check failed", err)
	}
	return &CheckAlertsOutput{Body: res}, nil
}

// RegisterAlertRoutes registers the alert endpoints.
func RegisterAlertRoutes(api huma.API, h *AlertHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-alerts",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{user_id}/alerts",
		Summary:     "List price alerts",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID:   "create-alert",
		Method:        http.MethodPost,
		Path:          "/api/v1/users/{user_id}/alerts",
		Summary:       "Create a price alert",
		Tags:          []string{"alerts"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-alert",
		Method:        http.MethodDelete,
		Path:          "/api/v1/users/{user_id}/alerts/{id}",
		Summary:       "Delete a price alert",
		Tags:          []string{"alerts"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Delete)

	huma.Register(api, huma.Operation{
		OperationID: "check-alerts",
		Method:      http.MethodPost,
		Path:        "/api/v1/alerts/check",
		Summary:     "Run an alert check",
		Description: "Prices every item with an active alert and fires the ones whose target was crossed.",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Check)
}
