package application

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/bnema/punch/internal/domain"
	"github.com/bnema/punch/internal/logging"
	"github.com/bnema/punch/internal/ports"
)

type Service struct {
	source ports.EntrySource
	dates  ports.DateParser
	clock  ports.Clock
	logger *slog.Logger
}

func NewService(source ports.EntrySource, dates ports.DateParser, clock ports.Clock, logger *slog.Logger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &Service{
		source: source,
		dates:  dates,
		clock:  clock,
		logger: logger,
	}
}

// ResolveWindow returns the Monday-to-Monday week containing weekOf, or the
// current week when weekOf is blank.
func (s *Service) ResolveWindow(weekOf string, loc *time.Location) (domain.Window, error) {
	return s.resolveWindow(weekOf, loc, s.clock.Now())
}

func (s *Service) resolveWindow(weekOf string, loc *time.Location, now time.Time) (domain.Window, error) {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)

	expr := strings.TrimSpace(weekOf)
	if expr == "" {
		return domain.WeekContaining(now, loc), nil
	}
	if s.dates == nil {
		return domain.Window{}, fmt.Errorf("resolve week %q: no date parser configured", expr)
	}

	anchor, err := s.dates.Parse(expr, now)
	if err != nil {
		return domain.Window{}, fmt.Errorf("resolve week %q: %w", expr, err)
	}

	return domain.WeekContaining(anchor, loc), nil
}

// BuildTimesheet fetches the client's projects and the window's entries and
// merges them into rounded sessions.
func (s *Service) BuildTimesheet(ctx context.Context, query TimesheetQuery) (Timesheet, error) {
	if err := query.Policy.Validate(); err != nil {
		return Timesheet{}, err
	}

	filter, err := NewProjectFilter(query.Projects)
	if err != nil {
		return Timesheet{}, err
	}

	logger := logging.FromContext(ctx, s.logger)
	loc := query.Policy.Location
	if loc == nil {
		loc = time.Local
	}

	now := s.clock.Now()
	window, err := s.resolveWindow(query.WeekOf, loc, now)
	if err != nil {
		return Timesheet{}, err
	}

	query.report(Progress{Stage: StageProjects, ClientID: query.ClientID, Window: window})
	listed, err := s.source.ListClientProjects(ctx, query.ClientID)
	if err != nil {
		return Timesheet{}, fmt.Errorf("fetch projects: %w", err)
	}

	projects, dropped := filter.Apply(listed)
	for _, project := range dropped {
		logger.Info("project filtered out", logging.KeyProjectID, project.ID, logging.KeyProject, project.Name)
	}

	accepted := domain.NewProjectSet(projects)
	names := make([]string, 0, len(projects))
	for _, project := range projects {
		names = append(names, project.Name)
	}
	logger.Info("processing projects", logging.KeyCount, len(projects), "ids", accepted.IDs(), "names", names)
	logger.Info("report window", logging.KeyStart, window.Start, logging.KeyEnd, window.End)

	query.report(Progress{Stage: StageEntries, ClientID: query.ClientID, Window: window, Projects: len(projects)})
	entries, err := s.source.ListTimeEntries(ctx, window)
	if err != nil {
		return Timesheet{}, fmt.Errorf("fetch time entries: %w", err)
	}

	query.report(Progress{Stage: StageMerge, ClientID: query.ClientID, Window: window, Projects: len(projects), Entries: len(entries)})

	ordered := slices.Clone(entries)
	slices.SortStableFunc(ordered, func(a, b domain.TimeEntry) int {
		return a.Start.Compare(b.Start)
	})

	sessions, skipped := s.merge(logger, ordered, accepted, query.Policy, now)

	return Timesheet{
		Window:      window,
		GeneratedAt: now,
		Projects:    projects,
		Sessions:    sessions,
		Entries:     len(entries),
		Skipped:     skipped,
		Total:       domain.TotalDuration(sessions),
	}, nil
}

func (s *Service) merge(logger *slog.Logger, entries []domain.TimeEntry, accepted domain.ProjectSet, policy domain.MergePolicy, now time.Time) ([]domain.Session, int) {
	skipped := 0
	hooks := domain.MergeHooks{
		Skip: func(entry domain.TimeEntry) {
			skipped++
			logger.Debug("skipping project", logging.KeyEntryID, entry.ID, logging.KeyProjectID, projectLabel(entry.ProjectID))
		},
		Merge: func(entry domain.TimeEntry, normalized domain.NormalizedEntry, state domain.MergeState) {
			if normalized.Running {
				logger.Warn("time entry is still running, using current time as stop", logging.KeyEntryID, entry.ID)
			}

			attrs := []any{
				logging.KeyEntryID, entry.ID,
				logging.KeyStart, normalized.Start,
				"stop", normalized.Stop,
			}
			if state.Open {
				gap := normalized.Start.Sub(state.Stop)
				attrs = append(attrs, "previous_stop", state.Stop, "gap", gap, "new_session", gap > policy.Gap)
			}
			logger.Debug("merging entry", attrs...)
		},
	}

	sessions := domain.MergeSessions(entries, accepted, policy, now, hooks)
	return sessions, skipped
}

func projectLabel(id *domain.ProjectID) string {
	if id == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *id)
}
