package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/donaldgifford/card-ledger/internal/ebay"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// GetConnection returns the user's connection to provider.
func (c *Client) GetConnection(ctx context.Context, userID string, provider domain.Provider) (*domain.TokenRecord, error) {
	var rec domain.TokenRecord
	if err := c.get(ctx, userPath(userID, "connections", string(provider)), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteConnection disconnects provider.
func (c *Client) DeleteConnection(ctx context.Context, userID string, provider domain.Provider) error {
	return c.del(ctx, userPath(userID, "connections", string(provider)))
}

// GetUser returns the user record.
func (c *Client) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var u domain.User
	if err := c.get(ctx, userPath(userID), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// PutUser sets the user's notification email.
func (c *Client) PutUser(ctx context.Context, userID, email string) (*domain.User, error) {
	var u domain.User
	body := map[string]string{"email": email}
	if err := c.put(ctx, userPath(userID), body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Quota is the response of the quota endpoint.
type Quota struct {
	Local    ebay.Quota        `json:"local"`
	Provider []ebay.QuotaState `json:"provider,omitempty"`
}

// GetQuota returns the eBay quota, optionally asking eBay as well.
func (c *Client) GetQuota(ctx context.Context, remote bool) (*Quota, error) {
	q := url.Values{}
	if remote {
		q.Set("remote", strconv.FormatBool(remote))
	}
	var out Quota
	if err := c.get(ctx, "/api/v1/quota", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
