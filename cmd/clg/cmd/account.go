package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

func connectionCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "connection",
		Short: "Inspect or remove your eBay connection",
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Show the eBay connection status",
			RunE: func(c *cobra.Command, _ []string) error {
				user, err := currentUser()
				if err != nil {
					return err
				}
				rec, err := newClient().GetConnection(c.Context(), user, domain.ProviderEbay)
				if err != nil {
					return err
				}
				out := c.OutOrStdout()
				if jsonOutput() {
					return outputJSON(out, rec)
				}
				return printConnection(out, rec)
			},
		},
		&cobra.Command{
			Use:   "delete",
			Short: "Disconnect eBay and delete stored tokens",
			RunE: func(c *cobra.Command, _ []string) error {
				user, err := currentUser()
				if err != nil {
					return err
				}
				if err := newClient().DeleteConnection(c.Context(), user, domain.ProviderEbay); err != nil {
					return err
				}
				fmt.Fprintln(c.OutOrStdout(), "eBay disconnected.")
				return nil
			},
		},
	)
	return root
}

func userCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "user",
		Short: "Manage the address alerts are sent to",
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Show your user record",
			RunE: func(c *cobra.Command, _ []string) error {
				user, err := currentUser()
				if err != nil {
					return err
				}
				u, err := newClient().GetUser(c.Context(), user)
				if err != nil {
					return err
				}
				out := c.OutOrStdout()
				if jsonOutput() {
					return outputJSON(out, u)
				}
				fmt.Fprintf(out, "%s <%s>\n", u.ID, u.Email)
				return nil
			},
		},
		&cobra.Command{
			Use:     "set-email <email>",
			Short:   "Set the email address alerts are sent to",
			Example: `  clg user set-email seller@example.com`,
			Args:    cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				user, err := currentUser()
				if err != nil {
					return err
				}
				u, err := newClient().PutUser(c.Context(), user, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "Alerts for %s go to %s.\n", u.ID, u.Email)
				return nil
			},
		},
	)
	return root
}

func quotaCmd() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "quota",
		Short: "Show eBay API quota",
		Long: "Shows the server's local daily call count. With --remote the eBay\n" +
			"Analytics API is asked for its view of each resource as well.",
		RunE: func(c *cobra.Command, _ []string) error {
			q, err := newClient().GetQuota(c.Context(), remote)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, q)
			}
			return printQuota(out, q)
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "also query the eBay Analytics API")

	return cmd
}
