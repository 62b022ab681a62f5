package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/card-ledger/pkg/logger"
)

var checkAlertsCmd = &cobra.Command{
	Use:   "check-alerts",
	Short: "Run one price alert pass and exit",
	RunE:  runCheckAlerts,
}

func init() {
	rootCmd.AddCommand(checkAlertsCmd)
}

func runCheckAlerts(c *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(c.Context(), cfg.Alerts.CheckInterval)
	defer cancel()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.engine.RunAlertCheck(ctx)
	if err != nil {
		return fmt.Errorf("checking alerts: %w", err)
	}

	log.Info("alert check complete",
		"checked", res.Checked,
		"priced", res.Priced,
		"updated", res.Updated,
		"triggered", res.Triggered,
		"notified", res.Notified,
		"notify_failures", res.NotifyFailures,
	)
	return nil
}
