package domain

import (
	"fmt"
	"slices"
	"time"
)

type ProjectID int64

type ClientID int64

type Project struct {
	ID       ProjectID
	Name     string
	ClientID ClientID
}

// TimeEntry is a raw entry as reported by the time-tracking service. A nil
// ProjectID means the entry has no project; a nil Stop means it is still
// running.
type TimeEntry struct {
	ID          int64
	Description string
	ProjectID   *ProjectID
	Start       time.Time
	Stop        *time.Time
}

func (e TimeEntry) Running() bool {
	return e.Stop == nil
}

func (e TimeEntry) Validate() error {
	if e.Start.IsZero() {
		return fmt.Errorf("%w: entry %d has no start", ErrInvalidEntry, e.ID)
	}
	if e.Stop != nil && e.Stop.Before(e.Start) {
		return fmt.Errorf("%w: entry %d stops before it starts", ErrInvalidEntry, e.ID)
	}

	return nil
}

type ProjectSet map[ProjectID]struct{}

func NewProjectSet(projects []Project) ProjectSet {
	set := make(ProjectSet, len(projects))
	for _, project := range projects {
		set[project.ID] = struct{}{}
	}
	return set
}

func (s ProjectSet) Contains(id ProjectID) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in ascending order.
func (s ProjectSet) IDs() []ProjectID {
	ids := make([]ProjectID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
