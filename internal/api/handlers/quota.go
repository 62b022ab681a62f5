package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/card-ledger/internal/ebay"
)

// LocalQuota is the application's locally metered daily budget.
type LocalQuota interface {
	Snapshot() ebay.Quota
	Reconcile(st ebay.QuotaState)
}

// ProviderQuotaFetcher asks eBay for its view of a resource's quota.
type ProviderQuotaFetcher interface {
	GetQuota(ctx context.Context, res ebay.QuotaResource) (*ebay.QuotaState, error)
}

// QuotaHandler provides the eBay API quota status endpoint.
type QuotaHandler struct {
	local    LocalQuota
	provider ProviderQuotaFetcher
}

// NewQuotaHandler creates a new QuotaHandler. provider may be nil.
func NewQuotaHandler(local LocalQuota, provider ProviderQuotaFetcher) *QuotaHandler {
	return &QuotaHandler{local: local, provider: provider}
}

// QuotaInput selects whether eBay is asked for its counters too.
type QuotaInput struct {
	Remote bool `query:"remote" doc:"Also query the eBay Analytics API"`
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		Local    ebay.Quota        `json:"local"              doc:"The application's daily budget in the current 24-hour window"`
		Provider []ebay.QuotaState `json:"provider,omitempty" doc:"Counters reported by eBay"`
	}
}

// GetQuota returns the current eBay API quota status. Counters fetched from
// eBay are folded into the local quota before it is reported.
func (h *QuotaHandler) GetQuota(ctx context.Context, in *QuotaInput) (*QuotaOutput, error) {
	out := &QuotaOutput{}
	if in.Remote && h.provider != nil {
		for _, res := range []ebay.QuotaResource{
			ebay.BrowseSearchResource,
			ebay.SellInventoryResource,
			ebay.SellFulfillmentResource,
		} {
			st, err := h.provider.GetQuota(ctx, res)
			if err != nil {
				return nil, providerError("fetching "+res.Resource+" quota", err)
			}
			if h.local != nil {
				h.local.Reconcile(*st)
			}
			out.Body.Provider = append(out.Body.Provider, *st)
		}
	}
	if h.local != nil {
		out.Body.Local = h.local.Snapshot()
	}
	return out, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get eBay API quota status",
		Description: "Returns the daily API call usage, remaining quota and window reset time.",
		Tags:        []string{"ebay"},
		Errors:      []int{http.StatusBadGateway, http.StatusServiceUnavailable},
	}, h.GetQuota)
}
