package domain

import (
	"fmt"
	"time"
)

const (
	DefaultGap      = 10 * time.Minute
	DefaultRounding = 5 * time.Minute
)

// MergePolicy controls how raw entries collapse into sessions. Location is
// used to detect sessions crossing local midnight.
type MergePolicy struct {
	Gap      time.Duration
	Rounding time.Duration
	Location *time.Location
}

func DefaultMergePolicy() MergePolicy {
	return MergePolicy{
		Gap:      DefaultGap,
		Rounding: DefaultRounding,
		Location: time.Local,
	}
}

func (p MergePolicy) Validate() error {
	if p.Gap < 0 {
		return fmt.Errorf("%w: gap must not be negative, got %s", ErrInvalidSettings, p.Gap)
	}
	if p.Rounding <= 0 {
		return fmt.Errorf("%w: rounding must be positive, got %s", ErrInvalidSettings, p.Rounding)
	}
	// Below twice the rounding, outward-rounded neighbours can overlap.
	if p.Gap < 2*p.Rounding {
		return fmt.Errorf("%w: gap must be at least twice the rounding, got gap %s with rounding %s", ErrInvalidSettings, p.Gap, p.Rounding)
	}

	return nil
}

func (p MergePolicy) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

// NormalizedEntry is an accepted entry with minute-precision bounds and its
// provisional stop resolved.
type NormalizedEntry struct {
	Start   time.Time
	Stop    time.Time
	Running bool
}

// Normalize resolves a running entry's stop to now, never earlier than its
// start, and truncates both bounds to whole minutes.
func Normalize(entry TimeEntry, now time.Time) NormalizedEntry {
	stop := now
	if stop.Before(entry.Start) {
		stop = entry.Start
	}
	running := true
	if entry.Stop != nil {
		stop = *entry.Stop
		running = false
	}

	return NormalizedEntry{
		Start:   truncateToMinute(entry.Start),
		Stop:    truncateToMinute(stop),
		Running: running,
	}
}

// Accepts reports whether the entry belongs to one of the accepted projects.
func Accepts(entry TimeEntry, accepted ProjectSet) bool {
	return entry.ProjectID != nil && accepted.Contains(*entry.ProjectID)
}

// MergeState is the open session carried between fold steps.
type MergeState struct {
	Open    bool
	Start   time.Time
	Stop    time.Time
	Running bool
}

// Step folds one normalized entry into the state. It returns the next state
// and the sessions completed by this entry, if any.
func Step(state MergeState, entry NormalizedEntry, policy MergePolicy) (MergeState, []Session) {
	var completed []Session

	if !state.Open || entry.Start.Sub(state.Stop) > policy.Gap {
		completed = Flush(state, policy)
		state = MergeState{Open: true, Start: entry.Start}
	}

	state.Stop = entry.Stop
	state.Running = entry.Running

	return state, completed
}

// Flush closes the open session. A session whose local stop time-of-day is
// earlier than its start time-of-day is split at the stop's local midnight.
func Flush(state MergeState, policy MergePolicy) []Session {
	if !state.Open {
		return nil
	}

	loc := policy.location()
	start := state.Start
	sessions := make([]Session, 0, 2)

	if timeOfDay(state.Stop, loc) < timeOfDay(start, loc) {
		midnight := localMidnight(state.Stop, loc)
		sessions = append(sessions, Session{
			Start:   FloorTo(start, policy.Rounding),
			Stop:    CeilTo(midnight, policy.Rounding),
			Running: state.Running,
		})
		start = midnight
	}

	sessions = append(sessions, Session{
		Start:   FloorTo(start, policy.Rounding),
		Stop:    CeilTo(state.Stop, policy.Rounding),
		Running: state.Running,
	})

	return sessions
}

// MergeHooks observes a MergeSessions run. Nil hooks are not called.
type MergeHooks struct {
	// Skip receives entries outside the accepted project set.
	Skip func(entry TimeEntry)
	// Merge receives each accepted entry with the state it is folded into.
	Merge func(entry TimeEntry, normalized NormalizedEntry, state MergeState)
}

// MergeSessions folds chronologically ordered entries into rounded sessions.
// Entries outside the accepted project set are ignored; running entries stop
// at now.
func MergeSessions(entries []TimeEntry, accepted ProjectSet, policy MergePolicy, now time.Time, hooks MergeHooks) []Session {
	sessions := make([]Session, 0, len(entries))
	state := MergeState{}

	for _, entry := range entries {
		if !Accepts(entry, accepted) {
			if hooks.Skip != nil {
				hooks.Skip(entry)
			}
			continue
		}

		normalized := Normalize(entry, now)
		if hooks.Merge != nil {
			hooks.Merge(entry, normalized, state)
		}

		var completed []Session
		state, completed = Step(state, normalized, policy)
		sessions = append(sessions, completed...)
	}

	return append(sessions, Flush(state, policy)...)
}
