package cmd

import (
	"context"

	"github.com/bnema/punch/internal/logging"
	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var logLevel string
	var logFormat string
	var report reportOptions

	rootCmd := &cobra.Command{
		Use:           "punch",
		Short:         "Weekly punch-clock timesheet from Toggl time entries",
		Long:          "punch fetches your Toggl time entries for a week, merges adjacent entries into work sessions, rounds them outward and prints a punch-clock style timesheet.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatAuto, "Log format (auto|text|json)")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return app.configureLogging(cmd, logLevel, logFormat)
	}
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runReport(cmd, app, report)
	}
	bindReportFlags(rootCmd, &report)

	rootCmd.AddCommand(
		newVersionCmd(),
		newReportCmd(app),
		newAuthCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
