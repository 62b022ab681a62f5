// Package cmd implements the CLI commands for the card-ledger server.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/card-ledger/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "card-ledger",
	Short: "Track a trading card seller's eBay inventory and market prices",
	Long: "An API-first service that imports a seller's eBay listings and sales " +
		"as card inventory, searches public card catalogs, and alerts when " +
		"market prices cross a target.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
