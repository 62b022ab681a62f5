package ebay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/card-ledger/internal/metrics"
)

const (
	tracerName = "github.com/donaldgifford/card-ledger/internal/ebay"

	defaultMaxRetries     = 3
	defaultInitialBackoff = 250 * time.Millisecond
	defaultMaxBackoff     = 4 * time.Second
)

func tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// transport issues authenticated GETs with rate limiting and bounded
// retries of transient failures. It is shared by the Sell, Browse and
// Analytics clients.
type transport struct {
	client         *http.Client
	quota          *AppQuota
	maxRetries     int
	initialBackoff time.Duration
}

func newTransport() *transport {
	return &transport{
		client:         &http.Client{Timeout: 30 * time.Second},
		maxRetries:     defaultMaxRetries,
		initialBackoff: defaultInitialBackoff,
	}
}

func (t *transport) newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = t.initialBackoff
	b.MaxInterval = defaultMaxBackoff
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(max(t.maxRetries, 0))), ctx)
}

// getJSON performs a GET and decodes a 200 response into out. Headers are
// applied to every attempt.
func (t *transport) getJSON(
	ctx context.Context,
	endpoint string,
	header http.Header,
	out any,
) error {
	ctx, span := tracer().Start(ctx, "ebay.get",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.url", endpoint)),
	)
	defer span.End()

	attempts := 0
	op := func() error {
		attempts++
		body, err := t.once(ctx, endpoint, header)
		if err != nil {
			if IsRetryable(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		if err := json.Unmarshal(body, out); err != nil {
			return backoff.Permanent(fmt.Errorf("parsing response from %s: %w", endpoint, err))
		}
		return nil
	}

	notify := func(error, time.Duration) {
		metrics.EbayAPIRetriesTotal.Inc()
	}

	err := backoff.RetryNotify(op, t.newBackOff(ctx), notify)
	span.SetAttributes(attribute.Int("ebay.attempts", attempts))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			return fmt.Errorf("%w: %w", ctxErr, err)
		}
		return err
	}
	return nil
}

func (t *transport) once(ctx context.Context, endpoint string, header http.Header) ([]byte, error) {
	if t.quota != nil {
		if err := t.quota.Acquire(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.EbayDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.EbayDailyUsage.Set(float64(t.quota.Used()))
	}
	metrics.EbayAPICallsTotal.Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: executing request to %s: %w", ErrProviderUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", ErrProviderUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyResponse(resp.StatusCode, body, endpoint)
	}

	return body, nil
}
