package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func prefsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "prefs",
		Short: "Manage your preferences",
		Long: "Preferences are JSON values stored per user. Values that are not\n" +
			"valid JSON are stored as strings.",
	}

	root.AddCommand(prefsListCmd(), prefsGetCmd(), prefsSetCmd(), prefsDeleteCmd())
	return root
}

func prefsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your preferences",
		RunE: func(c *cobra.Command, _ []string) error {
			user, err := currentUser()
			if err != nil {
				return err
			}
			prefs, err := newClient().ListPreferences(c.Context(), user)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, prefs)
			}
			if len(prefs) == 0 {
				fmt.Fprintln(out, "No preferences set.")
				return nil
			}
			return printPreferenceTable(out, prefs)
		},
	}
}

func prefsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Show one preference",
		Example: `  clg prefs get default_catalog`,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			user, err := currentUser()
			if err != nil {
				return err
			}
			p, err := newClient().GetPreference(c.Context(), user, args[0])
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, p)
			}
			fmt.Fprintln(out, string(p.Value))
			return nil
		},
	}
}

func prefsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a preference",
		Example: `  clg prefs set default_catalog scryfall
  clg prefs set alert_channels '["email","discord"]'`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			user, err := currentUser()
			if err != nil {
				return err
			}
			value, err := preferenceValue(args[1])
			if err != nil {
				return err
			}
			if err := newClient().SetPreference(c.Context(), user, args[0], value); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Preference %s set.\n", args[0])
			return nil
		},
	}
}

func prefsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			user, err := currentUser()
			if err != nil {
				return err
			}
			if err := newClient().DeletePreference(c.Context(), user, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Preference %s deleted.\n", args[0])
			return nil
		},
	}
}

// preferenceValue passes valid JSON through and quotes anything else.
func preferenceValue(raw string) (json.RawMessage, error) {
	if json.Valid([]byte(raw)) {
		return json.RawMessage(raw), nil
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding value: %w", err)
	}
	return b, nil
}
