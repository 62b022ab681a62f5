package ebay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultTokenURL = "https://api.ebay.com/identity/v1/oauth2/token" //nolint:gosec // not a credential
	defaultAppScope = "https://api.ebay.com/oauth/api_scope"
	refreshBuffer   = 60 * time.Second
)

// AppTokenProvider implements TokenProvider using the eBay client
// credentials flow. The application token is only used for the Browse and
// Analytics APIs; user data goes through Refresher. Tokens are cached and
// refreshed when expired or within 60 seconds of expiry.
type AppTokenProvider struct {
	config clientcredentials.Config
	client *http.Client

	mu      sync.Mutex
	token   string
	expiry  time.Time
	nowFunc func() time.Time // for testing
}

// AppTokenOption configures the AppTokenProvider.
type AppTokenOption func(*AppTokenProvider)

// WithTokenURL overrides the default eBay token endpoint.
func WithTokenURL(u string) AppTokenOption {
	return func(p *AppTokenProvider) {
		p.config.TokenURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) AppTokenOption {
	return func(p *AppTokenProvider) {
		p.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) AppTokenOption {
	return func(p *AppTokenProvider) {
		p.nowFunc = f
	}
}

// NewAppTokenProvider creates a new eBay application token provider.
func NewAppTokenProvider(appID, certID string, opts ...AppTokenOption) *AppTokenProvider {
	p := &AppTokenProvider{
		config: clientcredentials.Config{
			ClientID:     appID,
			ClientSecret: certID,
			TokenURL:     defaultTokenURL,
			Scopes:       []string{defaultAppScope},
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
		client:  &http.Client{Timeout: 10 * time.Second},
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Token returns a valid application access token, fetching a new one if
// necessary.
func (p *AppTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.nowFunc().Before(p.expiry.Add(-refreshBuffer)) {
		return p.token, nil
	}

	return p.fetchLocked(ctx)
}

func (p *AppTokenProvider) fetchLocked(ctx context.Context) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)

	tok, err := p.config.Token(ctx)
	if err != nil {
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) {
			status := 0
			if rErr.Response != nil {
				status = rErr.Response.StatusCode
			}
			return "", fmt.Errorf(
				"token request failed (status %d): %s - %s",
				status,
				rErr.ErrorCode,
				rErr.ErrorDescription,
			)
		}
		return "", fmt.Errorf("%w: fetching application token: %w", ErrProviderUnavailable, err)
	}

	now := p.nowFunc()
	p.token = tok.AccessToken
	if secs, ok := extraSeconds(tok.Extra("expires_in")); ok {
		p.expiry = now.Add(time.Duration(secs) * time.Second)
	} else {
		p.expiry = tok.Expiry
	}

	return p.token, nil
}
