package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/donaldgifford/card-ledger/internal/ebay"
	"github.com/donaldgifford/card-ledger/internal/metrics"
	"github.com/donaldgifford/card-ledger/internal/store"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// Connection returns the user's token record for provider. Token values are
// never serialized.
func (eng *Engine) Connection(
	ctx context.Context,
	userID string,
	provider domain.Provider,
) (*domain.TokenRecord, error) {
	rec, err := eng.store.GetToken(ctx, userID, provider)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotConnected, provider)
		}
		return nil, fmt.Errorf("loading %s token: %w", provider, err)
	}
	return rec, nil
}

// Disconnect deletes the user's token record for provider.
func (eng *Engine) Disconnect(ctx context.Context, userID string, provider domain.Provider) error {
	if err := eng.store.DeleteToken(ctx, userID, provider); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotConnected, provider)
		}
		return fmt.Errorf("deleting %s token: %w", provider, err)
	}
	eng.log.Info("provider disconnected", "user_id", userID, "provider", provider)
	return nil
}

// accessToken loads the user's token and makes sure the access token is
// valid. A rejected refresh deletes the record.
func (eng *Engine) accessToken(
	ctx context.Context,
	userID string,
	provider domain.Provider,
) (string, error) {
	rec, err := eng.Connection(ctx, userID, provider)
	if err != nil {
		return "", err
	}

	valid, err := eng.tokens.Ensure(ctx, *rec)
	if err == nil {
		return valid.AccessToken, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		// disconnected while the refresh was in flight
		return "", fmt.Errorf("%w: %s", ErrNotConnected, provider)
	}

	var refreshErr *ebay.TokenRefreshError
	if !errors.As(err, &refreshErr) {
		return "", fmt.Errorf("refreshing %s token: %w", provider, err)
	}

	eng.log.Warn("refresh token rejected, deleting connection",
		"user_id", userID,
		"provider", provider,
		"status", refreshErr.StatusCode,
		"code", refreshErr.Code,
	)
	switch delErr := eng.store.DeleteToken(ctx, userID, provider); {
	case delErr == nil:
		metrics.TokensRevokedTotal.Inc()
	case errors.Is(delErr, store.ErrNotFound):
	default:
		eng.log.Error("deleting dead token failed", "user_id", userID, "provider", provider, "error", delErr)
	}
	return "", fmt.Errorf("%w: %w", ErrReconnectRequired, err)
}
