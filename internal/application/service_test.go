package application

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/bnema/punch/internal/domain"
	"github.com/bnema/punch/internal/logging"
	"github.com/bnema/punch/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testLoc = time.FixedZone("UTC+1", 3600)

// Wednesday 2026-01-07 15:30 local.
var testNow = time.Date(2026, 1, 7, 15, 30, 0, 0, testLoc)

func testPolicy() domain.MergePolicy {
	return domain.MergePolicy{Gap: domain.DefaultGap, Rounding: domain.DefaultRounding, Location: testLoc}
}

func currentWeek() domain.Window {
	return domain.Window{
		Start: time.Date(2026, 1, 5, 0, 0, 0, 0, testLoc),
		End:   time.Date(2026, 1, 12, 0, 0, 0, 0, testLoc),
	}
}

func entry(id int64, project domain.ProjectID, start, stop time.Time) domain.TimeEntry {
	pid := project
	return domain.TimeEntry{ID: id, ProjectID: &pid, Start: start, Stop: &stop}
}

func at(day, hour, minute int) time.Time {
	return time.Date(2026, 1, day, hour, minute, 0, 0, testLoc)
}

func TestServiceBuildTimesheetMergesAcceptedEntries(t *testing.T) {
	source := mocks.NewMockEntrySource(t)
	clock := mocks.NewMockClock(t)
	service := NewService(source, nil, clock, nil)

	clock.EXPECT().Now().Return(testNow)
	source.EXPECT().ListClientProjects(mockAnyContext(), domain.ClientID(34710800)).Return([]domain.Project{
		{ID: 11, Name: "Billing", ClientID: 34710800},
	}, nil)
	source.EXPECT().ListTimeEntries(mockAnyContext(), currentWeek()).Return([]domain.TimeEntry{
		entry(3, 11, at(5, 13, 0), at(5, 17, 40)),
		entry(1, 11, at(5, 9, 0), at(5, 10, 0)),
		entry(2, 11, at(5, 10, 5), at(5, 12, 0)),
		entry(4, 99, at(5, 18, 0), at(5, 19, 0)),
	}, nil)

	sheet, err := service.BuildTimesheet(context.Background(), TimesheetQuery{
		ClientID: 34710800,
		Policy:   testPolicy(),
	})
	require.NoError(t, err)

	assert.Equal(t, currentWeek(), sheet.Window)
	assert.Equal(t, 4, sheet.Entries)
	assert.Equal(t, 1, sheet.Skipped)
	require.Len(t, sheet.Sessions, 2)
	assert.True(t, at(5, 9, 0).Equal(sheet.Sessions[0].Start))
	assert.True(t, at(5, 12, 0).Equal(sheet.Sessions[0].Stop))
	assert.True(t, at(5, 13, 0).Equal(sheet.Sessions[1].Start))
	assert.True(t, at(5, 17, 40).Equal(sheet.Sessions[1].Stop))
	assert.Equal(t, 7*time.Hour+40*time.Minute, sheet.Total)
	assert.InDelta(t, 7.67, sheet.TotalHours(), 0.01)
	assert.False(t, sheet.HasRunning())
	assert.True(t, testNow.Equal(sheet.GeneratedAt))
}

func TestServiceBuildTimesheetMatchesDomainMerge(t *testing.T) {
	source := mocks.NewMockEntrySource(t)
	clock := mocks.NewMockClock(t)
	service := NewService(source, nil, clock, nil)

	running := domain.TimeEntry{ID: 9, ProjectID: ptrProject(11), Start: at(7, 14, 2)}
	entries := []domain.TimeEntry{
		entry(1, 11, at(5, 22, 0), at(6, 1, 30)),
		entry(2, 12, at(6, 9, 1), at(6, 9, 58)),
		{ID: 3, Start: at(6, 10, 0), Stop: ptrTime(at(6, 11, 0))},
		entry(4, 11, at(6, 10, 4), at(6, 12, 0)),
		running,
	}

	clock.EXPECT().Now().Return(testNow)
	source.EXPECT().ListClientProjects(mockAnyContext(), domain.ClientID(1)).Return([]domain.Project{{ID: 11}, {ID: 12}}, nil)
	source.EXPECT().ListTimeEntries(mockAnyContext(), currentWeek()).Return(entries, nil)

	sheet, err := service.BuildTimesheet(context.Background(), TimesheetQuery{ClientID: 1, Policy: testPolicy()})
	require.NoError(t, err)

	want := domain.MergeSessions(entries, domain.NewProjectSet([]domain.Project{{ID: 11}, {ID: 12}}), testPolicy(), testNow, domain.MergeHooks{})
	assert.Equal(t, want, sheet.Sessions)
	assert.True(t, sheet.HasRunning())
	assert.Equal(t, 1, sheet.Skipped)
}

func TestServiceBuildTimesheetSortsEntriesByStart(t *testing.T) {
	source := mocks.NewMockEntrySource(t)
	clock := mocks.NewMockClock(t)
	service := NewService(source, nil, clock, nil)

	clock.EXPECT().Now().Return(testNow)
	source.EXPECT().ListClientProjects(mockAnyContext(), domain.ClientID(1)).Return([]domain.Project{{ID: 11}}, nil)
	source.EXPECT().ListTimeEntries(mockAnyContext(), currentWeek()).Return([]domain.TimeEntry{
		entry(2, 11, at(5, 10, 5), at(5, 11, 0)),
		entry(1, 11, at(5, 9, 0), at(5, 10, 0)),
	}, nil)

	sheet, err := service.BuildTimesheet(context.Background(), TimesheetQuery{ClientID: 1, Policy: testPolicy()})
	require.NoError(t, err)
	require.Len(t, sheet.Sessions, 1)
	assert.True(t, at(5, 9, 0).Equal(sheet.Sessions[0].Start))
	assert.True(t, at(5, 11, 0).Equal(sheet.Sessions[0].Stop))
}

func TestServiceBuildTimesheetUsesWeekOfExpression(t *testing.T) {
	source := mocks.NewMockEntrySource(t)
	clock := mocks.NewMockClock(t)
	dates := mocks.NewMockDateParser(t)
	service := NewService(source, dates, clock, nil)

	lastWeek := domain.Window{
		Start: time.Date(2025, 12, 29, 0, 0, 0, 0, testLoc),
		End:   time.Date(2026, 1, 5, 0, 0, 0, 0, testLoc),
	}

	clock.EXPECT().Now().Return(testNow)
	dates.EXPECT().Parse("last week", mock.AnythingOfType("time.Time")).Return(testNow.AddDate(0, 0, -7), nil)
	source.EXPECT().ListClientProjects(mockAnyContext(), domain.ClientID(1)).Return(nil, nil)
	source.EXPECT().ListTimeEntries(mockAnyContext(), lastWeek).Return(nil, nil)

	sheet, err := service.BuildTimesheet(context.Background(), TimesheetQuery{ClientID: 1, WeekOf: "last week", Policy: testPolicy()})
	require.NoError(t, err)
	assert.Equal(t, lastWeek, sheet.Window)
	assert.Empty(t, sheet.Sessions)
	assert.Zero(t, sheet.Total)
}

func TestServiceBuildTimesheetDateParserError(t *testing.T) {
	source := mocks.NewMockEntrySource(t)
	clock := mocks.NewMockClock(t)
	dates := mocks.NewMockDateParser(t)
	service := NewService(source, dates, clock, nil)

	parseErr := errors.New("no date found")
	clock.EXPECT().Now().Return(testNow)
	dates.EXPECT().Parse("someday", mock.Anything).Return(time.Time{}, parseErr)

	_, err := service.BuildTimesheet(context.Background(), TimesheetQuery{ClientID: 1, WeekOf: "someday", Policy: testPolicy()})
	require.ErrorIs(t, err, parseErr)
	assert.ErrorContains(t, err, `resolve week "someday"`)
}

func TestServiceBuildTimesheetProjectFetchErrorStopsBeforeEntries(t *testing.T) {
	source := mocks.NewMockEntrySource(t)
	clock := mocks.NewMockClock(t)
	service := NewService(source, nil, clock, nil)

	clock.EXPECT().Now().Return(testNow)
	source.EXPECT().ListClientProjects(mockAnyContext(), domain.ClientID(1)).Return(nil, domain.ErrUnauthorized)

	_, err := service.BuildTimesheet(context.Background(), TimesheetQuery{ClientID: 1, Policy: testPolicy()})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorContains(t, err, "fetch projects")
}

func TestServiceBuildTimesheetEntryFetchError(t *testing.T) {
	source := mocks.NewMockEntrySource(t)
	clock := mocks.NewMockClock(t)
	service := NewService(source, nil, clock, nil)

	clock.EXPECT().Now().Return(testNow)
	source.EXPECT().ListClientProjects(mockAnyContext(), domain.ClientID(1)).Return([]domain.Project{{ID: 11}}, nil)
	source.EXPECT().ListTimeEntries(mockAnyContext(), currentWeek()).Return(nil, domain.ErrInvalidTimestamp)

	_, err := service.BuildTimesheet(context.Background(), TimesheetQuery{ClientID: 1, Policy: testPolicy()})
	require.ErrorIs(t, err, domain.ErrInvalidTimestamp)
}

func TestServiceBuildTimesheetRejectsInvalidPolicy(t *testing.T) {
	service := NewService(mocks.NewMockEntrySource(t), nil, mocks.NewMockClock(t), nil)

	_, err := service.BuildTimesheet(context.Background(), TimesheetQuery{
		ClientID: 1,
		Policy:   domain.MergePolicy{Gap: time.Minute, Rounding: 0},
	})
	require.ErrorIs(t, err, domain.ErrInvalidSettings)
}

func TestServiceBuildTimesheetLogsRunningAndSkippedEntries(t *testing.T) {
	source := mocks.NewMockEntrySource(t)
	clock := mocks.NewMockClock(t)

	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: slog.LevelDebug, Format: logging.FormatText, Output: &buf})
	service := NewService(source, nil, clock, logger)

	clock.EXPECT().Now().Return(testNow)
	source.EXPECT().ListClientProjects(mockAnyContext(), domain.ClientID(1)).Return([]domain.Project{{ID: 11, Name: "Billing"}}, nil)
	source.EXPECT().ListTimeEntries(mockAnyContext(), currentWeek()).Return([]domain.TimeEntry{
		{ID: 1, Start: at(7, 8, 0), Stop: ptrTime(at(7, 9, 0))},
		{ID: 2, ProjectID: ptrProject(11), Start: at(7, 14, 0)},
	}, nil)

	ctx := logging.WithRunID(context.Background(), "run-1")
	_, err := service.BuildTimesheet(ctx, TimesheetQuery{ClientID: 1, Policy: testPolicy()})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "processing projects")
	assert.Contains(t, out, "skipping project")
	assert.Contains(t, out, "still running")
	assert.Contains(t, out, "run_id=run-1")
}

func TestServiceBuildTimesheetAppliesProjectFilter(t *testing.T) {
	source := mocks.NewMockEntrySource(t)
	clock := mocks.NewMockClock(t)
	service := NewService(source, nil, clock, nil)

	clock.EXPECT().Now().Return(testNow)
	source.EXPECT().ListClientProjects(mockAnyContext(), domain.ClientID(1)).Return([]domain.Project{
		{ID: 11, Name: "Billing"},
		{ID: 12, Name: "Internal"},
	}, nil)
	source.EXPECT().ListTimeEntries(mockAnyContext(), currentWeek()).Return([]domain.TimeEntry{
		entry(1, 11, at(5, 9, 0), at(5, 10, 0)),
		entry(2, 12, at(5, 10, 0), at(5, 11, 0)),
	}, nil)

	sheet, err := service.BuildTimesheet(context.Background(), TimesheetQuery{
		ClientID: 1,
		Projects: []string{"bill*"},
		Policy:   testPolicy(),
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.Project{{ID: 11, Name: "Billing"}}, sheet.Projects)
	assert.Equal(t, 1, sheet.Skipped)
	require.Len(t, sheet.Sessions, 1)
	assert.True(t, at(5, 9, 0).Equal(sheet.Sessions[0].Start))
	assert.True(t, at(5, 10, 0).Equal(sheet.Sessions[0].Stop))
}

func TestServiceBuildTimesheetRejectsBadProjectPatternBeforeFetching(t *testing.T) {
	source := mocks.NewMockEntrySource(t)
	clock := mocks.NewMockClock(t)
	service := NewService(source, nil, clock, nil)

	_, err := service.BuildTimesheet(context.Background(), TimesheetQuery{
		ClientID: 1,
		Projects: []string{"[oops"},
		Policy:   testPolicy(),
	})
	require.ErrorIs(t, err, domain.ErrInvalidSettings)
}

func TestServiceBuildTimesheetReportsProgress(t *testing.T) {
	source := mocks.NewMockEntrySource(t)
	clock := mocks.NewMockClock(t)
	service := NewService(source, nil, clock, nil)

	clock.EXPECT().Now().Return(testNow)
	source.EXPECT().ListClientProjects(mockAnyContext(), domain.ClientID(1)).Return([]domain.Project{{ID: 11}, {ID: 12}}, nil)
	source.EXPECT().ListTimeEntries(mockAnyContext(), currentWeek()).Return([]domain.TimeEntry{
		entry(1, 11, at(5, 9, 0), at(5, 10, 0)),
	}, nil)

	var stages []Progress
	_, err := service.BuildTimesheet(context.Background(), TimesheetQuery{
		ClientID: 1,
		Policy:   testPolicy(),
		Progress: func(progress Progress) { stages = append(stages, progress) },
	})
	require.NoError(t, err)

	require.Len(t, stages, 3)
	assert.Equal(t, Progress{Stage: StageProjects, ClientID: 1, Window: currentWeek()}, stages[0])
	assert.Equal(t, Progress{Stage: StageEntries, ClientID: 1, Window: currentWeek(), Projects: 2}, stages[1])
	assert.Equal(t, Progress{Stage: StageMerge, ClientID: 1, Window: currentWeek(), Projects: 2, Entries: 1}, stages[2])
}

func TestServiceResolveWindowDefaultsToCurrentWeek(t *testing.T) {
	clock := mocks.NewMockClock(t)
	service := NewService(nil, nil, clock, nil)

	clock.EXPECT().Now().Return(testNow.UTC())

	window, err := service.ResolveWindow("  ", testLoc)
	require.NoError(t, err)
	assert.Equal(t, currentWeek(), window)
}

func TestServiceResolveWindowWithoutParser(t *testing.T) {
	clock := mocks.NewMockClock(t)
	service := NewService(nil, nil, clock, nil)

	clock.EXPECT().Now().Return(testNow)

	_, err := service.ResolveWindow("last week", testLoc)
	require.Error(t, err)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

func ptrProject(id domain.ProjectID) *domain.ProjectID {
	return &id
}

func mockAnyContext() interface{} {
	return mock.Anything
}
