package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/donaldgifford/card-ledger/internal/engine"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// AlertRequest is the body for creating an alert.
type AlertRequest struct {
	ItemID      string                `json:"item_id"`
	ItemName    string                `json:"item_name"`
	Direction   domain.AlertDirection `json:"direction"`
	TargetPrice float64               `json:"target_price"`
}

// AlertListParams filters ListAlerts. Zero values use server defaults.
type AlertListParams struct {
	Status string
	Limit  int
	Offset int
}

// AlertList is one page of alerts.
type AlertList struct {
	Alerts  []domain.PriceAlert `json:"alerts"`
	Total   int                 `json:"total"`
	HasMore bool                `json:"has_more"`
}

// ListAlerts returns a page of the user's alerts.
func (c *Client) ListAlerts(ctx context.Context, userID string, p AlertListParams) (*AlertList, error) {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}

	var out AlertList
	if err := c.get(ctx, userPath(userID, "alerts"), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAlert creates an active alert.
func (c *Client) CreateAlert(ctx context.Context, userID string, req AlertRequest) (*domain.PriceAlert, error) {
	var created domain.PriceAlert
	if err := c.post(ctx, userPath(userID, "alerts"), req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteAlert removes an alert.
func (c *Client) DeleteAlert(ctx context.Context, userID, id string) error {
	return c.del(ctx, userPath(userID, "alerts", id))
}

// CheckAlerts runs an alert pass on the server.
func (c *Client) CheckAlerts(ctx context.Context) (*engine.AlertCheckResult, error) {
	var res engine.AlertCheckResult
	if err := c.post(ctx, "/api/v1/alerts/check", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
