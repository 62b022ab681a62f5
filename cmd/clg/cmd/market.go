package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/card-ledger/internal/api/client"
)

func marketCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "market",
		Short: "Search live eBay listings and prices",
	}

	root.AddCommand(marketSearchCmd(), marketPriceCmd())
	return root
}

func marketSearchCmd() *cobra.Command {
	var req apiclient.MarketSearch

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search eBay listings",
		Example: `  clg market search charizard ex 199 psa 10
  clg market search "umbreon vmax 215" --limit 25 --sort price`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			req.Query = strings.Join(args, " ")
			res, err := newClient().SearchMarket(c.Context(), req)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(out, "No listings found.")
				return nil
			}
			return printMarketTable(out, res)
		},
	}
	cmd.Flags().IntVar(&req.Limit, "limit", 10, "maximum listings to return")
	cmd.Flags().StringVar(&req.Sort, "sort", "", "sort order (price, -price, newlyListed)")
	cmd.Flags().StringVar(&req.CategoryID, "category", "", "eBay category ID")

	return cmd
}

func marketPriceCmd() *cobra.Command {
	var itemID string

	cmd := &cobra.Command{
		Use:   "price [name]",
		Short: "Show the market price an alert check would use",
		Example: `  clg market price Charizard ex 199/165
  clg market price --item sv3pt5-199`,
		RunE: func(c *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			if name == "" && itemID == "" {
				return fmt.Errorf("a name or --item is required")
			}
			price, err := newClient().MarketPrice(c.Context(), itemID, name)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, map[string]float64{"price": price})
			}
			fmt.Fprintf(out, "$%.2f\n", price)
			return nil
		},
	}
	cmd.Flags().StringVar(&itemID, "item", "", "item ID")

	return cmd
}
