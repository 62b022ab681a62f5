package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "import",
		Short: "Import eBay listings and sales",
		Long: "Fetch your eBay inventory or recent orders and map them to card\n" +
			"records. Without --save the result is a preview and nothing is stored.",
	}

	root.AddCommand(importListingsCmd(), importSalesCmd())
	return root
}

func importListingsCmd() *cobra.Command {
	var (
		save    bool
		details bool
	)

	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Import active listings as inventory",
		Example: `  clg import listings --user u1
  clg import listings --save --details`,
		RunE: func(c *cobra.Command, _ []string) error {
			user, err := currentUser()
			if err != nil {
				return err
			}
			res, err := newClient().ImportListings(c.Context(), user, save)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if err := printImportSummary(out, "listings", res.ImportResult); err != nil {
				return err
			}
			if details && len(res.Items) > 0 {
				fmt.Fprintln(out)
				return printInventoryTable(out, res.Items)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "store the mapped inventory items")
	cmd.Flags().BoolVar(&details, "details", false, "print every mapped item")

	return cmd
}

func importSalesCmd() *cobra.Command {
	var (
		save     bool
		details  bool
		daysBack int
	)

	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Import recent orders as sales",
		Example: `  clg import sales --days 30
  clg import sales --save`,
		RunE: func(c *cobra.Command, _ []string) error {
			if daysBack < 1 || daysBack > 90 {
				return fmt.Errorf("--days must be between 1 and 90")
			}
			user, err := currentUser()
			if err != nil {
				return err
			}
			res, err := newClient().ImportSales(c.Context(), user, daysBack, save)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if err := printImportSummary(out, "sales", res.ImportResult); err != nil {
				return err
			}
			if details && len(res.Sales) > 0 {
				fmt.Fprintln(out)
				return printSalesTable(out, res.Sales)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "store the mapped sales")
	cmd.Flags().BoolVar(&details, "details", false, "print every mapped sale")
	cmd.Flags().IntVar(&daysBack, "days", 90, "days of orders to fetch (1-90)")

	return cmd
}
