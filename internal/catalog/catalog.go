// Package catalog searches public card catalogs (Pokémon TCG API, Scryfall)
// for card identities, images and reference prices.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/donaldgifford/card-ledger/internal/metrics"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

var (
	// ErrUnavailable marks network failures, 429 and 5xx responses from a
	// catalog. These are retried before being returned.
	ErrUnavailable = errors.New("catalog unavailable")

	// ErrUnknownSource is returned for a source name with no searcher.
	ErrUnknownSource = errors.New("unknown catalog source")
)

// StatusError is a non-retryable 4xx response from a catalog.
type StatusError struct {
	Source     string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s returned status %d", e.Source, e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Page is one page of catalog results. Page numbers start at 1.
type Page struct {
	Cards   []domain.CatalogCard `json:"cards"`
	Page    int                  `json:"page"`
	Total   int                  `json:"total"`
	HasMore bool                 `json:"has_more"`
}

// Searcher looks up cards by free-text query.
type Searcher interface {
	Search(ctx context.Context, query string, page int) (*Page, error)
}

// Registry selects a Searcher by source name.
type Registry struct {
	sources       map[string]Searcher
	defaultSource string
}

// NewRegistry creates a registry. defaultSource is used when a search names
// no source.
func NewRegistry(defaultSource string, sources map[string]Searcher) *Registry {
	return &Registry{sources: sources, defaultSource: defaultSource}
}

// Sources returns the registered source names in sorted order.
func (r *Registry) Sources() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Search runs query against the named source and counts the outcome.
func (r *Registry) Search(ctx context.Context, source, query string, page int) (*Page, error) {
	if source == "" {
		source = r.defaultSource
	}
	s, ok := r.sources[source]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}

	res, err := s.Search(ctx, strings.TrimSpace(query), max(page, 1))
	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(source, "error").Inc()
		return nil, err
	}
	metrics.CatalogRequestsTotal.WithLabelValues(source, "success").Inc()
	return res, nil
}

// httpGetter performs rate-limited GETs with bounded retries, shared by the
// catalog clients.
type httpGetter struct {
	source         string
	client         *http.Client
	limiter        *rate.Limiter
	maxRetries     int
	initialBackoff time.Duration
}

func newHTTPGetter(source string, perSecond float64) *httpGetter {
	return &httpGetter{
		source:         source,
		client:         &http.Client{Timeout: 15 * time.Second},
		limiter:        rate.NewLimiter(rate.Limit(perSecond), 1),
		maxRetries:     2,
		initialBackoff: 200 * time.Millisecond,
	}
}

// getJSON decodes a 200 response into out. notFoundOK treats 404 as an empty
// result and returns (false, nil).
func (g *httpGetter) getJSON(
	ctx context.Context,
	endpoint string,
	header http.Header,
	notFoundOK bool,
	out any,
) (bool, error) {
	found := true
	op := func() error {
		if err := g.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(fmt.Errorf("waiting for %s rate limiter: %w", g.source, err))
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating %s request: %w", g.source, err))
		}
		for k, vs := range header {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
		req.Header.Set("Accept", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return fmt.Errorf("%w: %s: %w", ErrUnavailable, g.source, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: reading %s response: %w", ErrUnavailable, g.source, err)
		}

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode == http.StatusNotFound && notFoundOK:
			found = false
			return nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("%w: %s returned status %d", ErrUnavailable, g.source, resp.StatusCode)
		default:
			return backoff.Permanent(&StatusError{
				Source:     g.source,
				StatusCode: resp.StatusCode,
				Message:    errorMessage(body),
			})
		}

		if err := json.Unmarshal(body, out); err != nil {
			return backoff.Permanent(fmt.Errorf("parsing %s response: %w", g.source, err))
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.initialBackoff
	b.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(max(g.maxRetries, 0))), ctx)

	if err := backoff.Retry(op, policy); err != nil {
		return false, err
	}
	return found, nil
}

// errorMessage pulls a human message out of either catalog's error body.
func errorMessage(body []byte) string {
	var parsed struct {
		Details string `json:"details"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Details != "" {
			return parsed.Details
		}
		if parsed.Error.Message != "" {
			return parsed.Error.Message
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return msg
}
