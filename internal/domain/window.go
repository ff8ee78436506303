package domain

import "time"

// Window is the half-open report interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// WeekContaining returns the Monday-to-Monday window around t in loc.
func WeekContaining(t time.Time, loc *time.Location) Window {
	if loc == nil {
		loc = time.Local
	}

	local := t.In(loc)
	offset := (int(local.Weekday()) + 6) % 7
	year, month, day := local.Date()
	start := time.Date(year, month, day-offset, 0, 0, 0, 0, loc)

	return Window{
		Start: start,
		End:   start.AddDate(0, 0, 7),
	}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
