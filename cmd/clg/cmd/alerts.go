package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/card-ledger/internal/api/client"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

func alertsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "alerts",
		Short: "Manage price alerts",
		Long: "Manage price alerts that fire once when an item's market price\n" +
			"crosses a target, above or below.",
	}

	root.AddCommand(
		alertListCmd(),
		alertCreateCmd(),
		alertDeleteCmd(),
		alertCheckCmd(),
	)

	return root
}

func alertListCmd() *cobra.Command {
	var params apiclient.AlertListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your alerts",
		Example: `  clg alerts list --user u1
  clg alerts list --status triggered --output json`,
		RunE: func(c *cobra.Command, _ []string) error {
			user, err := currentUser()
			if err != nil {
				return err
			}
			res, err := newClient().ListAlerts(c.Context(), user, params)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if len(res.Alerts) == 0 {
				fmt.Fprintln(out, "No alerts found.")
				return nil
			}
			if err := printAlertTable(out, res.Alerts); err != nil {
				return err
			}
			if res.HasMore {
				fmt.Fprintf(out, "\nShowing %d of %d. Use --offset for more.\n", len(res.Alerts), res.Total)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&params.Status, "status", "", "filter by status (active, triggered)")
	cmd.Flags().IntVar(&params.Limit, "limit", 50, "maximum alerts to return")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "alerts to skip")

	return cmd
}

func alertCreateCmd() *cobra.Command {
	var (
		itemID    string
		itemName  string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "create <target-price>",
		Short: "Create a price alert",
		Long: "Create an alert that fires once when the market price of an item\n" +
			"moves above or below the target. The market price is the median\n" +
			"asking price of comparable eBay listings.",
		Example: `  clg alerts create 150 --name "Charizard ex 199/165" --direction below
  clg alerts create 900 --item sv3pt5-199 --name "Charizard ex 199/165" --direction above`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			target, err := strconv.ParseFloat(args[0], 64)
			if err != nil || target < 0 {
				return fmt.Errorf("invalid target price %q", args[0])
			}
			if itemID == "" && itemName == "" {
				return fmt.Errorf("--item or --name is required")
			}
			user, err := currentUser()
			if err != nil {
				return err
			}
			created, err := newClient().CreateAlert(c.Context(), user, apiclient.AlertRequest{
				ItemID:      itemID,
				ItemName:    itemName,
				Direction:   domain.AlertDirection(direction),
				TargetPrice: target,
			})
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, created)
			}
			fmt.Fprintf(out, "Alert created: %s (%s $%.2f)\n", created.ID, created.Direction, created.TargetPrice)
			return nil
		},
	}
	cmd.Flags().StringVar(&itemID, "item", "", "catalog or inventory item ID")
	cmd.Flags().StringVar(&itemName, "name", "", "item name used to search the market")
	cmd.Flags().StringVar(&direction, "direction", string(domain.DirectionBelow), "fire when the price goes above or below the target")

	return cmd
}

func alertDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete an alert",
		Example: `  clg alerts delete 6f1c2a`,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			user, err := currentUser()
			if err != nil {
				return err
			}
			if err := newClient().DeleteAlert(c.Context(), user, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Alert %s deleted.\n", args[0])
			return nil
		},
	}
}

func alertCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run an alert check pass now",
		Long: "Prices every item with an active alert and fires alerts whose\n" +
			"target was crossed, without waiting for the scheduler.",
		Example: `  clg alerts check`,
		RunE: func(c *cobra.Command, _ []string) error {
			res, err := newClient().CheckAlerts(c.Context())
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			fmt.Fprintf(out, "Checked %d, priced %d, triggered %d, notified %d (%d failed).\n",
				res.Checked, res.Priced, res.Triggered, res.Notified, res.NotifyFailures)
			return nil
		},
	}
}
