package ebay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"github.com/donaldgifford/card-ledger/internal/metrics"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// DefaultRefreshWindow is how close to expiry an access token may get before
// it is proactively refreshed.
const DefaultRefreshWindow = 5 * time.Minute

// defaultAccessTokenLifetime is used when the token response carries no
// expiry at all. eBay user tokens live for two hours.
const defaultAccessTokenLifetime = 2 * time.Hour

// defaultRefreshTimeout bounds one shared refresh, token call and write
// included. It runs detached from any single caller's context.
const defaultRefreshTimeout = 30 * time.Second

// TokenWriter persists refreshed token records. UpdateToken must not
// recreate a record that was deleted; it returns an error instead.
type TokenWriter interface {
	UpdateToken(ctx context.Context, rec domain.TokenRecord) error
}

// Refresher keeps user access tokens valid using the refresh_token grant.
// Concurrent refreshes of the same (user, provider) record within this
// process share one request. Across processes the last write wins, which is
// safe because both writes hold valid bearer tokens.
type Refresher struct {
	oauth   oauth2.Config
	store   TokenWriter
	client  *http.Client
	window  time.Duration
	timeout time.Duration
	logger  *slog.Logger
	nowFunc func() time.Time

	group singleflight.Group
}

// RefresherOption configures the Refresher.
type RefresherOption func(*Refresher)

// WithRefreshTokenURL overrides the token endpoint.
func WithRefreshTokenURL(u string) RefresherOption {
	return func(r *Refresher) {
		r.oauth.Endpoint.TokenURL = u
	}
}

// WithRefreshHTTPClient overrides the HTTP client used for refresh calls.
func WithRefreshHTTPClient(c *http.Client) RefresherOption {
	return func(r *Refresher) {
		r.client = c
	}
}

// WithRefreshWindow overrides DefaultRefreshWindow.
func WithRefreshWindow(d time.Duration) RefresherOption {
	return func(r *Refresher) {
		r.window = d
	}
}

// WithRefreshTimeout bounds a single shared refresh.
func WithRefreshTimeout(d time.Duration) RefresherOption {
	return func(r *Refresher) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithRefresherLogger sets the logger.
func WithRefresherLogger(l *slog.Logger) RefresherOption {
	return func(r *Refresher) {
		r.logger = l
	}
}

// WithRefresherNowFunc overrides the time function for testing.
func WithRefresherNowFunc(f func() time.Time) RefresherOption {
	return func(r *Refresher) {
		r.nowFunc = f
	}
}

// NewRefresher creates a Refresher that authenticates to the token endpoint
// with the given client id and secret.
func NewRefresher(appID, certID string, store TokenWriter, opts ...RefresherOption) *Refresher {
	r := &Refresher{
		oauth: oauth2.Config{
			ClientID:     appID,
			ClientSecret: certID,
			Endpoint: oauth2.Endpoint{
				TokenURL:  defaultTokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		store:   store,
		client:  &http.Client{Timeout: 10 * time.Second},
		window:  DefaultRefreshWindow,
		timeout: defaultRefreshTimeout,
		logger:  slog.Default(),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// EnsureValidAccessToken returns an access token for rec that is valid for
// at least the refresh window, refreshing and persisting it if needed.
func (r *Refresher) EnsureValidAccessToken(ctx context.Context, rec domain.TokenRecord) (string, error) {
	updated, err := r.Ensure(ctx, rec)
	if err != nil {
		return "", err
	}
	return updated.AccessToken, nil
}

// Ensure is EnsureValidAccessToken returning the whole, possibly refreshed,
// record. The refresh itself is shared by every concurrent caller for the
// same record and is not cancelled when one of them gives up; a cancelled
// caller returns its context error while the refresh completes for the rest.
func (r *Refresher) Ensure(ctx context.Context, rec domain.TokenRecord) (domain.TokenRecord, error) {
	if r.fresh(rec) {
		return rec, nil
	}

	key := rec.UserID + "/" + string(rec.Provider)
	ch := r.group.DoChan(key, func() (any, error) {
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
		defer cancel()
		return r.refresh(refreshCtx, rec)
	})

	select {
	case <-ctx.Done():
		return domain.TokenRecord{}, fmt.Errorf("waiting for token refresh: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return domain.TokenRecord{}, res.Err
		}
		if res.Shared {
			r.logger.Debug("token refresh shared", "user_id", rec.UserID, "provider", rec.Provider)
		}
		return res.Val.(domain.TokenRecord), nil
	}
}

func (r *Refresher) fresh(rec domain.TokenRecord) bool {
	return rec.AccessToken != "" && rec.AccessTokenExpiresAt.After(r.nowFunc().Add(r.window))
}

func (r *Refresher) refresh(ctx context.Context, rec domain.TokenRecord) (domain.TokenRecord, error) {
	ctx, span := tracer().Start(ctx, "ebay.refresh_token")
	defer span.End()
	span.SetAttributes(
		attribute.String("user_id", rec.UserID),
		attribute.String("provider", string(rec.Provider)),
	)

	if rec.RefreshToken == "" {
		metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
		return domain.TokenRecord{}, &TokenRefreshError{
			Code:        "missing_refresh_token",
			Description: "no refresh token stored",
		}
	}

	start := time.Now()
	tok, err := r.oauth.TokenSource(
		context.WithValue(ctx, oauth2.HTTPClient, r.client),
		&oauth2.Token{RefreshToken: rec.RefreshToken},
	).Token()
	metrics.TokenRefreshDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "refresh failed")
		return domain.TokenRecord{}, r.classify(ctx, rec, err)
	}

	now := r.nowFunc()
	updated := rec
	updated.AccessToken = tok.AccessToken
	updated.AccessTokenExpiresAt = expiryFrom(now, tok.Extra("expires_in"), tok.Expiry)
	updated.UpdatedAt = now

	rotated := tok.RefreshToken != "" && tok.RefreshToken != rec.RefreshToken
	if rotated {
		updated.RefreshToken = tok.RefreshToken
		updated.RefreshTokenExpiresAt = time.Time{}
		if secs, ok := extraSeconds(tok.Extra("refresh_token_expires_in")); ok {
			updated.RefreshTokenExpiresAt = now.Add(time.Duration(secs) * time.Second)
		}
	}
	span.SetAttributes(attribute.Bool("ebay.refresh_token_rotated", rotated))

	if err := r.store.UpdateToken(ctx, updated); err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("persist_failed").Inc()
		return domain.TokenRecord{}, fmt.Errorf("persisting refreshed token: %w", err)
	}

	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	r.logger.Info(
		"access token refreshed",
		"user_id", rec.UserID,
		"provider", rec.Provider,
		"expires_at", updated.AccessTokenExpiresAt,
		"rotated", rotated,
	)
	return updated, nil
}

func (r *Refresher) classify(ctx context.Context, rec domain.TokenRecord, err error) error {
	var rErr *oauth2.RetrieveError
	if errors.As(err, &rErr) {
		metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
		refreshErr := &TokenRefreshError{
			Code:        rErr.ErrorCode,
			Description: rErr.ErrorDescription,
		}
		if rErr.Response != nil {
			refreshErr.StatusCode = rErr.Response.StatusCode
		}
		r.logger.Warn(
			"token refresh rejected",
			"user_id", rec.UserID,
			"provider", rec.Provider,
			"status", refreshErr.StatusCode,
			"code", refreshErr.Code,
		)
		return refreshErr
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("refreshing token: %w", ctxErr)
	}

	metrics.TokenRefreshesTotal.WithLabelValues("unavailable").Inc()
	return fmt.Errorf("%w: refreshing token: %w", ErrProviderUnavailable, err)
}

func expiryFrom(now time.Time, expiresIn any, fallback time.Time) time.Time {
	if secs, ok := extraSeconds(expiresIn); ok && secs > 0 {
		return now.Add(time.Duration(secs) * time.Second)
	}
	if !fallback.IsZero() {
		return fallback
	}
	return now.Add(defaultAccessTokenLifetime)
}
