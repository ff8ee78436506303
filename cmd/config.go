package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/punch/internal/application"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the settings file",
	}

	cmd.AddCommand(newConfigInitCmd(app), newConfigShowCmd(app))

	return cmd
}

func newConfigInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := app.settings.Init(cmd.Context(), application.InitSettingsCommand{Force: force})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing settings file")

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings (file, PUNCH_* environment, defaults)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := app.settings.Load(cmd.Context())
			if err != nil {
				return err
			}

			timezone := settings.Timezone
			if timezone == "" {
				timezone = "local"
			}
			projects := "all"
			if len(settings.Projects) > 0 {
				projects = strings.Join(settings.Projects, ", ")
			}
			weekOf := settings.WeekOf
			if weekOf == "" {
				weekOf = "current week"
			}

			out := cmd.OutOrStdout()
			lines := []string{
				fmt.Sprintf("file:      %s", app.settingsPath),
				fmt.Sprintf("secrets:   %s", app.secretsRoot),
				fmt.Sprintf("client_id: %d", settings.ClientID),
				fmt.Sprintf("gap:       %s", settings.Gap),
				fmt.Sprintf("rounding:  %s", settings.Rounding),
				fmt.Sprintf("base_url:  %s", settings.BaseURL),
				fmt.Sprintf("week_of:   %s", weekOf),
				fmt.Sprintf("timezone:  %s", timezone),
				fmt.Sprintf("projects:  %s", projects),
			}
			for _, line := range lines {
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
