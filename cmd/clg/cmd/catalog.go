package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "catalog",
		Short: "Search public card catalogs",
	}

	root.AddCommand(catalogSearchCmd(), catalogSourcesCmd())
	return root
}

func catalogSearchCmd() *cobra.Command {
	var (
		source string
		page   int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search a card catalog",
		Example: `  clg catalog search charizard
  clg catalog search "black lotus" --source scryfall --page 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			res, err := newClient().SearchCatalog(c.Context(), source, strings.Join(args, " "), page)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if len(res.Cards) == 0 {
				fmt.Fprintln(out, "No cards found.")
				return nil
			}
			if err := printCatalogTable(out, res); err != nil {
				return err
			}
			if res.HasMore {
				fmt.Fprintf(out, "\nPage %d of %d results. Use --page %d for more.\n", res.Page, res.Total, res.Page+1)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "catalog to search (default: server default)")
	cmd.Flags().IntVar(&page, "page", 1, "result page")

	return cmd
}

func catalogSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List searchable catalogs",
		RunE: func(c *cobra.Command, _ []string) error {
			sources, err := newClient().CatalogSources(c.Context())
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, sources)
			}
			for _, s := range sources {
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}
}
