package domain

import "time"

// FloorTo snaps t down to a multiple of r counted from the zero time.
// Boundaries are epoch-relative, not relative to midnight of t's day.
func FloorTo(t time.Time, r time.Duration) time.Time {
	if r <= 0 {
		return t
	}

	return t.Truncate(r)
}

// CeilTo snaps t up to a multiple of r counted from the zero time.
func CeilTo(t time.Time, r time.Duration) time.Time {
	if r <= 0 {
		return t
	}

	floored := t.Truncate(r)
	if floored.Equal(t) {
		return floored
	}

	return floored.Add(r)
}

func truncateToMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}

func localMidnight(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	year, month, day := local.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func timeOfDay(t time.Time, loc *time.Location) time.Duration {
	local := t.In(loc)
	hour, minute, second := local.Clock()
	return time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second +
		time.Duration(local.Nanosecond())
}
