// Package engine orchestrates marketplace imports and price alert checks on
// top of the store, the eBay clients and the notifiers.
package engine

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/card-ledger/internal/ebay"
	"github.com/donaldgifford/card-ledger/internal/notify"
	"github.com/donaldgifford/card-ledger/internal/store"
	"github.com/donaldgifford/card-ledger/pkg/cardmap"
)

const (
	tracerName = "github.com/donaldgifford/card-ledger/internal/engine"

	defaultPriceConcurrency = 4
)

// PriceSource returns the current market price of an item. Implementations
// return an error wrapping ebay.ErrNoPriceData when there is nothing to
// price it by.
type PriceSource interface {
	CurrentPrice(ctx context.Context, itemID, itemName string) (float64, error)
}

// Engine orchestrates imports and alert checks.
type Engine struct {
	store    store.Store
	seller   ebay.SellerClient
	tokens   ebay.TokenEnsurer
	prices   PriceSource
	notifier notify.Notifier
	log      *slog.Logger

	mapper           *cardmap.Mapper
	paginator        *ebay.Paginator
	priceConcurrency int
	nowFunc          func() time.Time
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	seller ebay.SellerClient,
	tokens ebay.TokenEnsurer,
	prices PriceSource,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:            s,
		seller:           seller,
		tokens:           tokens,
		prices:           prices,
		notifier:         n,
		log:              slog.Default(),
		mapper:           cardmap.New(),
		paginator:        ebay.NewPaginator(),
		priceConcurrency: defaultPriceConcurrency,
		nowFunc:          time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithMapper sets the listing and sale mapper.
func WithMapper(m *cardmap.Mapper) EngineOption {
	return func(e *Engine) {
		e.mapper = m
	}
}

// WithPaginator sets the paginator used for multi-page imports.
func WithPaginator(p *ebay.Paginator) EngineOption {
	return func(e *Engine) {
		e.paginator = p
	}
}

// WithPriceConcurrency bounds concurrent price lookups during an alert
// check. Values below 1 are ignored.
func WithPriceConcurrency(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.priceConcurrency = n
		}
	}
}

// WithNowFunc overrides the clock for testing.
func WithNowFunc(f func() time.Time) EngineOption {
	return func(e *Engine) {
		e.nowFunc = f
	}
}

func tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
