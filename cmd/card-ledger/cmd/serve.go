package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/card-ledger/api/openapi"
	"github.com/donaldgifford/card-ledger/internal/api/handlers"
	"github.com/donaldgifford/card-ledger/internal/api/middleware"
	"github.com/donaldgifford/card-ledger/internal/engine"
	"github.com/donaldgifford/card-ledger/internal/tracing"
	"github.com/donaldgifford/card-ledger/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and alert scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(c *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	ctx := c.Context()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing, Version)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	var sched *engine.Scheduler
	if cfg.Alerts.Enabled {
		sched, err = engine.NewScheduler(a.engine, cfg.Alerts.CheckInterval, 0, log.With("component", "scheduler"))
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
	}

	e := newServer(a)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "version", Version, "alerts", cfg.Alerts.Enabled)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if sched != nil {
		select {
		case <-sched.Stop().Done():
		case <-shutdownCtx.Done():
			log.Warn("alert check still running at shutdown")
		}
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("flushing traces", "error", err)
	}

	log.Info("server stopped")
	return nil
}

func newServer(a *app) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = a.cfg.Server.ReadTimeout
	e.Server.WriteTimeout = a.cfg.Server.WriteTimeout

	e.Use(
		middleware.Tracing(nil, nil),
		middleware.RequestLog(a.log),
		middleware.Metrics(),
		middleware.Recovery(a.log),
	)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	registerRoutes(openapi.New(e, Version), a)
	return e
}

func registerRoutes(api huma.API, a *app) {
	handlers.RegisterHealthRoutes(api, handlers.NewHealthHandler(a.store))
	handlers.RegisterUserRoutes(api, handlers.NewUserHandler(a.store))
	handlers.RegisterConnectionRoutes(api, handlers.NewConnectionHandler(a.engine))
	handlers.RegisterImportRoutes(api, handlers.NewImportHandler(a.engine))
	handlers.RegisterAlertRoutes(api, handlers.NewAlertHandler(a.store, a.engine))
	handlers.RegisterPreferenceRoutes(api, handlers.NewPreferenceHandler(a.prefs))
	handlers.RegisterCatalogRoutes(api, handlers.NewCatalogHandler(a.catalogs))
	handlers.RegisterMarketRoutes(api, handlers.NewMarketHandler(a.browse, a.pricer))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(a.quota, a.analytics))
}
