package engine

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/card-ledger/internal/ebay"
	"github.com/donaldgifford/card-ledger/internal/metrics"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

const (
	kindListings = "listings"
	kindSales    = "sales"
)

// ListingsImport is the outcome of ImportListings.
type ListingsImport struct {
	domain.ImportResult
	Items []domain.InventoryItemDraft `json:"items"`
}

// SalesImport is the outcome of ImportSales.
type SalesImport struct {
	domain.ImportResult
	Sales []domain.SaleDraft `json:"sales"`
}

// ImportListings fetches the user's active eBay listings and maps them to
// inventory drafts. With materialize set the drafts are upserted into the
// user's inventory.
func (eng *Engine) ImportListings(ctx context.Context, userID string, materialize bool) (*ListingsImport, error) {
	ctx, span := tracer().Start(ctx, "engine.ImportListings")
	defer span.End()
	defer observeImport(kindListings, time.Now())

	token, err := eng.accessToken(ctx, userID, domain.ProviderEbay)
	if err != nil {
		return nil, failImport(span, kindListings, err)
	}

	res, err := ebay.Paginate(ctx, eng.paginator,
		func(ctx context.Context, limit, offset int) ([]domain.NormalizedListing, bool, error) {
			page, err := eng.seller.ListActiveListings(ctx, token, limit, offset)
			if err != nil {
				return nil, false, err
			}
			return page.Listings, page.HasMore, nil
		})
	if err != nil {
		return nil, failImport(span, kindListings, fmt.Errorf("importing listings: %w", err))
	}

	out := &ListingsImport{
		ImportResult: domain.ImportResult{
			Pages:     res.PagesUsed,
			Fetched:   len(res.Items),
			StoppedAt: res.StoppedAt,
		},
		Items: make([]domain.InventoryItemDraft, 0, len(res.Items)),
	}
	for i := range res.Items {
		draft := eng.mapper.ToInventoryItem(res.Items[i])
		if draft.NeedsReview {
			out.NeedsReview++
		}
		out.Items = append(out.Items, draft)
	}

	if materialize && len(out.Items) > 0 {
		n, err := eng.store.UpsertInventoryItems(ctx, userID, domain.ProviderEbay, out.Items)
		if err != nil {
			return nil, failImport(span, kindListings, fmt.Errorf("saving inventory items: %w", err))
		}
		out.Materialized = n
	}

	countImport(kindListings, out.ImportResult)
	span.SetAttributes(
		attribute.Int("import.fetched", out.Fetched),
		attribute.Int("import.materialized", out.Materialized),
	)
	eng.log.Info("listings imported",
		"user_id", userID,
		"pages", out.Pages,
		"fetched", out.Fetched,
		"needs_review", out.NeedsReview,
		"materialized", out.Materialized,
		"stopped_at", out.StoppedAt,
	)
	return out, nil
}

// ImportSales fetches orders from the last daysBack days and maps each line
// item to a sale draft. With materialize set the drafts are upserted.
func (eng *Engine) ImportSales(
	ctx context.Context,
	userID string,
	daysBack int,
	materialize bool,
) (*SalesImport, error) {
	ctx, span := tracer().Start(ctx, "engine.ImportSales")
	defer span.End()
	defer observeImport(kindSales, time.Now())

	token, err := eng.accessToken(ctx, userID, domain.ProviderEbay)
	if err != nil {
		return nil, failImport(span, kindSales, err)
	}

	res, err := ebay.Paginate(ctx, eng.paginator,
		func(ctx context.Context, limit, offset int) ([]domain.NormalizedSoldItem, bool, error) {
			page, err := eng.seller.ListSoldItems(ctx, token, daysBack, limit, offset)
			if err != nil {
				return nil, false, err
			}
			return page.Items, page.HasMore, nil
		})
	if err != nil {
		return nil, failImport(span, kindSales, fmt.Errorf("importing sales: %w", err))
	}

	out := &SalesImport{
		ImportResult: domain.ImportResult{
			Pages:     res.PagesUsed,
			Fetched:   len(res.Items),
			StoppedAt: res.StoppedAt,
		},
		Sales: make([]domain.SaleDraft, 0, len(res.Items)),
	}
	for i := range res.Items {
		draft := eng.mapper.ToSaleRecord(res.Items[i])
		if draft.NeedsReview {
			out.NeedsReview++
		}
		out.Sales = append(out.Sales, draft)
	}

	if materialize && len(out.Sales) > 0 {
		n, err := eng.store.UpsertSales(ctx, userID, domain.ProviderEbay, out.Sales)
		if err != nil {
			return nil, failImport(span, kindSales, fmt.Errorf("saving sales: %w", err))
		}
		out.Materialized = n
	}

	countImport(kindSales, out.ImportResult)
	eng.log.Info("sales imported",
		"user_id", userID,
		"days_back", daysBack,
		"pages", out.Pages,
		"fetched", out.Fetched,
		"needs_review", out.NeedsReview,
		"materialized", out.Materialized,
	)
	return out, nil
}

func observeImport(kind string, start time.Time) {
	metrics.ImportDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

func countImport(kind string, r domain.ImportResult) {
	metrics.ImportItemsTotal.WithLabelValues(kind).Add(float64(r.Fetched))
	metrics.ImportNeedsReviewTotal.WithLabelValues(kind).Add(float64(r.NeedsReview))
}

func failImport(span trace.Span, kind string, err error) error {
	metrics.ImportErrorsTotal.WithLabelValues(kind).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
