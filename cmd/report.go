package cmd

import (
	"context"
	"fmt"

	timesheetrender "github.com/bnema/punch/internal/adapters/render/timesheet"
	"github.com/bnema/punch/internal/application"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	week      string
	projects  []string
	asJSON    bool
	noSpinner bool
}

func newReportCmd(app *app) *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Fetch time entries and print the weekly timesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, app, opts)
		},
	}

	bindReportFlags(cmd, &opts)

	return cmd
}

func bindReportFlags(cmd *cobra.Command, opts *reportOptions) {
	cmd.Flags().StringVar(&opts.week, "week", "", `Week to report, e.g. "2018-01-08", "last week", "2 weeks ago" (default: current week)`)
	cmd.Flags().StringSliceVar(&opts.projects, "project", nil, `Only report projects whose name matches the glob, e.g. "billing*" (repeatable)`)
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&opts.noSpinner, "no-spinner", false, "Do not show a progress spinner while fetching")
}

func runReport(cmd *cobra.Command, app *app, opts reportOptions) error {
	ctx := cmd.Context()

	settings, err := app.settings.Load(ctx)
	if err != nil {
		return err
	}
	if opts.week != "" {
		settings.WeekOf = opts.week
	}
	if len(opts.projects) > 0 {
		settings.Projects = opts.projects
	}

	loc, err := settings.Location()
	if err != nil {
		return err
	}

	token, err := app.credentials.Resolve(ctx)
	if err != nil {
		return err
	}

	service := application.NewService(app.newSource(settings.BaseURL, token), app.dates, app.clock, app.logger)
	query := application.TimesheetQuery{
		ClientID: settings.ClientID,
		WeekOf:   settings.WeekOf,
		Projects: settings.Projects,
		Policy:   settings.MergePolicy(loc),
	}

	var sheet application.Timesheet
	fetch := func(ctx context.Context, progress func(application.Progress)) error {
		query.Progress = progress
		var err error
		sheet, err = service.BuildTimesheet(ctx, query)
		return err
	}

	if opts.asJSON || opts.noSpinner || !isTerminal(cmd.ErrOrStderr()) {
		err = fetch(ctx, nil)
	} else {
		err = runFetchSpinner(ctx, cmd.ErrOrStderr(), settings.ClientID, fetch)
	}
	if err != nil {
		return err
	}

	return writeTimesheetOutput(cmd, app, sheet, timesheetrender.RenderOptions{Location: loc}, opts.asJSON)
}

func writeTimesheetOutput(cmd *cobra.Command, app *app, sheet application.Timesheet, opts timesheetrender.RenderOptions, asJSON bool) error {
	if asJSON {
		return timesheetrender.WriteJSON(cmd.OutOrStdout(), sheet, opts)
	}

	opts.Color = isTerminal(cmd.OutOrStdout())
	rendered, err := app.renderer(sheet, opts)
	if err != nil {
		return fmt.Errorf("render timesheet: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
