package ebay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultAnalyticsURL = "https://api.ebay.com/developer/analytics/v1_beta/rate_limit/"

// QuotaResource names one rate-limited eBay API resource as the Analytics
// API reports it.
type QuotaResource struct {
	APIContext string
	APIName    string
	Resource   string
}

// Resources the service calls.
var (
	BrowseSearchResource    = QuotaResource{APIContext: "buy", APIName: "browse", Resource: "buy.browse"}
	SellInventoryResource   = QuotaResource{APIContext: "sell", APIName: "inventory", Resource: "sell.inventory"}
	SellFulfillmentResource = QuotaResource{APIContext: "sell", APIName: "fulfillment", Resource: "sell.fulfillment"}
)

type rateLimitResponse struct {
	RateLimits []rateLimitEntry `json:"rateLimits"`
}

type rateLimitEntry struct {
	APIContext string     `json:"apiContext"`
	APIName    string     `json:"apiName"`
	APIVersion string     `json:"apiVersion"`
	Resources  []resource `json:"resources"`
}

type resource struct {
	Name  string      `json:"name"`
	Rates []quotaRate `json:"rates"`
}

type quotaRate struct {
	Count      int64  `json:"count"`
	Limit      int64  `json:"limit"`
	Remaining  int64  `json:"remaining"`
	Reset      string `json:"reset"`
	TimeWindow int64  `json:"timeWindow"`
}

// QuotaState holds the parsed rate limit state for a single eBay API resource.
type QuotaState struct {
	Resource   string        `json:"resource"`
	Count      int64         `json:"count"`
	Limit      int64         `json:"limit"`
	Remaining  int64         `json:"remaining"`
	ResetAt    time.Time     `json:"reset_at"`
	TimeWindow time.Duration `json:"time_window"`
}

// AnalyticsClient queries the eBay Developer Analytics API for rate limit state.
type AnalyticsClient struct {
	tokens       TokenProvider
	analyticsURL string
	transport    *transport
}

// AnalyticsOption configures the AnalyticsClient.
type AnalyticsOption func(*AnalyticsClient)

// WithAnalyticsURL overrides the default Analytics API endpoint.
func WithAnalyticsURL(u string) AnalyticsOption {
	return func(c *AnalyticsClient) {
		c.analyticsURL = u
	}
}

// WithAnalyticsHTTPClient overrides the default HTTP client.
func WithAnalyticsHTTPClient(hc *http.Client) AnalyticsOption {
	return func(c *AnalyticsClient) {
		c.transport.client = hc
	}
}

// NewAnalyticsClient creates a new eBay Analytics API client. Analytics calls
// do not count against the application's call limits, so no rate limiter is
// attached and transient failures are not retried.
func NewAnalyticsClient(
	tokens TokenProvider,
	opts ...AnalyticsOption,
) *AnalyticsClient {
	t := newTransport()
	t.client = &http.Client{Timeout: 10 * time.Second}
	t.maxRetries = 0

	c := &AnalyticsClient{
		tokens:       tokens,
		analyticsURL: defaultAnalyticsURL,
		transport:    t,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetQuota returns the current rate limit state for one resource.
func (c *AnalyticsClient) GetQuota(
	ctx context.Context,
	res QuotaResource,
) (*QuotaState, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting auth token: %w", err)
	}

	u, err := url.Parse(c.analyticsURL)
	if err != nil {
		return nil, fmt.Errorf("parsing analytics URL: %w", err)
	}
	q := u.Query()
	q.Set("api_context", res.APIContext)
	q.Set("api_name", res.APIName)
	u.RawQuery = q.Encode()

	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)

	var apiResp rateLimitResponse
	if err := c.transport.getJSON(ctx, u.String(), h, &apiResp); err != nil {
		return nil, fmt.Errorf("querying analytics: %w", err)
	}

	return extractQuota(apiResp, res.Resource)
}

// GetBrowseQuota returns the current rate limit state for Browse API search.
func (c *AnalyticsClient) GetBrowseQuota(ctx context.Context) (*QuotaState, error) {
	return c.GetQuota(ctx, BrowseSearchResource)
}

// extractQuota finds the named resource in the response and returns its
// first rate window.
func extractQuota(resp rateLimitResponse, name string) (*QuotaState, error) {
	for _, entry := range resp.RateLimits {
		for _, res := range entry.Resources {
			if !strings.EqualFold(res.Name, name) {
				continue
			}
			if len(res.Rates) == 0 {
				return nil, fmt.Errorf("no rates found for resource %q", name)
			}

			r := res.Rates[0]

			resetAt, err := time.Parse(time.RFC3339, r.Reset)
			if err != nil {
				return nil, fmt.Errorf("parsing reset time %q: %w", r.Reset, err)
			}

			return &QuotaState{
				Resource:   res.Name,
				Count:      r.Count,
				Limit:      r.Limit,
				Remaining:  r.Remaining,
				ResetAt:    resetAt,
				TimeWindow: time.Duration(r.TimeWindow) * time.Second,
			}, nil
		}
	}

	return nil, fmt.Errorf("resource %q not found in analytics response", name)
}
