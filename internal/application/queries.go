package application

import (
	"time"

	"github.com/bnema/punch/internal/domain"
)

type TimesheetQuery struct {
	ClientID domain.ClientID
	WeekOf   string
	Projects []string
	Policy   domain.MergePolicy
	// Progress, when set, is called as BuildTimesheet moves between stages.
	Progress func(Progress)
}

type Stage string

const (
	StageProjects Stage = "projects"
	StageEntries  Stage = "entries"
	StageMerge    Stage = "merge"
)

// Progress describes what BuildTimesheet is about to do. Fields not yet known
// at a stage are zero.
type Progress struct {
	Stage    Stage
	ClientID domain.ClientID
	Window   domain.Window
	Projects int
	Entries  int
}

func (q TimesheetQuery) report(progress Progress) {
	if q.Progress != nil {
		q.Progress(progress)
	}
}

// Timesheet is the merged view of one report window.
type Timesheet struct {
	Window      domain.Window
	GeneratedAt time.Time
	Projects    []domain.Project
	Sessions    []domain.Session
	Entries     int
	Skipped     int
	Total       time.Duration
}

func (t Timesheet) TotalHours() float64 {
	return t.Total.Hours()
}

func (t Timesheet) HasRunning() bool {
	for _, session := range t.Sessions {
		if session.Running {
			return true
		}
	}
	return false
}
