package cmd

import (
	"fmt"

	"github.com/bnema/punch/internal/application"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the Toggl API token",
		Long:  "Store or remove the Toggl API token. TOGGL_API_TOKEN, when set, takes precedence over the stored token.",
	}

	cmd.AddCommand(newAuthSetCmd(app), newAuthRemoveCmd(app))

	return cmd
}

func newAuthSetCmd(app *app) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the Toggl API token (pass, falling back to a local file)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.credentials.Set(cmd.Context(), application.SetCredentialCommand{Token: token}); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "api token stored")
			return err
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Toggl API token")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

func newAuthRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove the stored Toggl API token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.credentials.Remove(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "api token removed")
			return err
		},
	}
}
