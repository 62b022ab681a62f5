package client

import (
	"context"
	"encoding/json"

	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// ListPreferences returns every stored preference for the user.
func (c *Client) ListPreferences(ctx context.Context, userID string) ([]domain.Preference, error) {
	var out struct {
		Preferences []domain.Preference `json:"preferences"`
	}
	if err := c.get(ctx, userPath(userID, "preferences"), nil, &out); err != nil {
		return nil, err
	}
	return out.Preferences, nil
}

// GetPreference returns one preference.
func (c *Client) GetPreference(ctx context.Context, userID, key string) (*domain.Preference, error) {
	var p domain.Preference
	if err := c.get(ctx, userPath(userID, "preferences", key), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SetPreference stores value, which must be valid JSON.
func (c *Client) SetPreference(ctx context.Context, userID, key string, value json.RawMessage) error {
	return c.put(ctx, userPath(userID, "preferences", key), value, nil)
}

// DeletePreference removes one preference.
func (c *Client) DeletePreference(ctx context.Context, userID, key string) error {
	return c.del(ctx, userPath(userID, "preferences", key))
}
