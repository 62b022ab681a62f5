package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/donaldgifford/card-ledger/internal/catalog"
	"github.com/donaldgifford/card-ledger/internal/config"
	"github.com/donaldgifford/card-ledger/internal/ebay"
	"github.com/donaldgifford/card-ledger/internal/engine"
	"github.com/donaldgifford/card-ledger/internal/notify"
	"github.com/donaldgifford/card-ledger/internal/store"
	"github.com/donaldgifford/card-ledger/internal/tracing"
	"github.com/donaldgifford/card-ledger/pkg/cardmap"
	"github.com/donaldgifford/card-ledger/pkg/logger"
	"github.com/donaldgifford/card-ledger/pkg/prefs"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

const (
	browseSearchPath = "/buy/browse/v1/item_summary/search"
	retryBackoff     = 500 * time.Millisecond
)

// app holds the wired components shared by serve and check-alerts.
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	store     *store.PostgresStore
	quota     *ebay.AppQuota
	browse    *ebay.BrowseClient
	analytics *ebay.AnalyticsClient
	pricer    *ebay.MarketPricer
	engine    *engine.Engine
	catalogs  *catalog.Registry
	prefs     *prefs.Service
}

func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	ec := cfg.Ebay
	hc := tracing.HTTPClient(ec.Timeout)
	quota := ebay.NewAppQuota(ec.AppID, ebay.QuotaPolicy{
		CallsPerSecond: ec.RateLimit.PerSecond,
		Burst:          ec.RateLimit.Burst,
		DailyCalls:     ec.RateLimit.DailyLimit,
	})

	appTokens := ebay.NewAppTokenProvider(ec.AppID, ec.CertID,
		ebay.WithTokenURL(ec.TokenURL),
		ebay.WithHTTPClient(hc),
	)
	refresher := ebay.NewRefresher(ec.AppID, ec.CertID, st,
		ebay.WithRefreshTokenURL(ec.TokenURL),
		ebay.WithRefreshHTTPClient(hc),
		ebay.WithRefreshWindow(ec.RefreshWindow),
		ebay.WithRefreshTimeout(ec.Timeout),
		ebay.WithRefresherLogger(log.With("component", "token_refresher")),
	)
	seller := ebay.NewSellClient(
		ebay.WithSellBaseURL(ec.APIBaseURL),
		ebay.WithSellMarketplace(ec.Marketplace),
		ebay.WithSellHTTPClient(hc),
		ebay.WithSellQuota(quota),
		ebay.WithSellRetries(ec.MaxRetries, retryBackoff),
	)
	browse := ebay.NewBrowseClient(appTokens,
		ebay.WithBrowseURL(ec.APIBaseURL+browseSearchPath),
		ebay.WithMarketplace(ec.Marketplace),
		ebay.WithBrowseHTTPClient(hc),
		ebay.WithBrowseQuota(quota),
		ebay.WithBrowseRetries(ec.MaxRetries, retryBackoff),
	)
	analytics := ebay.NewAnalyticsClient(appTokens,
		ebay.WithAnalyticsURL(ec.AnalyticsURL),
		ebay.WithAnalyticsHTTPClient(tracing.HTTPClient(ec.Timeout)),
	)
	pricer := ebay.NewMarketPricer(browse, ebay.WithSampleSize(cfg.Alerts.SampleSize))

	paginator := ebay.NewPaginator(
		ebay.WithPageSize(ec.PageSize),
		ebay.WithMaxPages(ec.MaxPages),
		ebay.WithPaginatorLogger(charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			Level:  charmlog.Level(logger.ParseLevel(cfg.Logging.Level)),
			Prefix: "paginator",
		})),
	)

	eng := engine.NewEngine(st, seller, refresher, pricer, buildNotifier(cfg.Notifications, log),
		engine.WithLogger(log.With("component", "engine")),
		engine.WithMapper(cardmap.New(
			cardmap.WithDefaultCondition(domain.Condition(cfg.Mapping.DefaultCondition)),
		)),
		engine.WithPaginator(paginator),
	)

	return &app{
		cfg:       cfg,
		log:       log,
		store:     st,
		quota:     quota,
		browse:    browse,
		analytics: analytics,
		pricer:    pricer,
		engine:    eng,
		catalogs:  buildCatalogs(cfg.Catalog),
		prefs:     prefs.NewService(st),
	}, nil
}

func (a *app) Close() {
	a.store.Close()
}

// buildNotifier fans out to every enabled target, falling back to a logging
// notifier when none is configured.
func buildNotifier(cfg config.NotificationsConfig, log *slog.Logger) notify.Notifier {
	var targets []notify.Notifier
	if cfg.Email.Enabled {
		targets = append(targets, notify.NewEmailNotifier(cfg.Email.URL, cfg.Email.APIKey))
	}
	if cfg.Discord.Enabled {
		targets = append(targets, notify.NewDiscordNotifier(cfg.Discord.WebhookURL))
	}

	switch len(targets) {
	case 0:
		return notify.NewNoOpNotifier(log.With("component", "notify"))
	case 1:
		return targets[0]
	default:
		return notify.NewMultiNotifier(targets...)
	}
}

func buildCatalogs(cfg config.CatalogConfig) *catalog.Registry {
	hc := tracing.HTTPClient(cfg.Timeout)
	return catalog.NewRegistry(cfg.DefaultSource, map[string]catalog.Searcher{
		config.CatalogPokemonTCG: catalog.NewPokemonTCGClient(
			catalog.WithPokemonTCGBaseURL(cfg.PokemonTCG.BaseURL),
			catalog.WithPokemonTCGAPIKey(cfg.PokemonTCG.APIKey),
			catalog.WithPokemonTCGHTTPClient(hc),
		),
		config.CatalogScryfall: catalog.NewScryfallClient(
			catalog.WithScryfallBaseURL(cfg.Scryfall.BaseURL),
			catalog.WithScryfallHTTPClient(hc),
		),
	})
}
