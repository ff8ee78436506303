package domain

import "time"

// Session is a merged block of continuous tracked time with rounded
// boundaries.
type Session struct {
	Start   time.Time
	Stop    time.Time
	Running bool
}

func (s Session) Duration() time.Duration {
	return s.Stop.Sub(s.Start)
}

// Hours returns the duration in decimal hours at minute resolution.
func (s Session) Hours() float64 {
	return float64(s.Duration()/time.Minute) / 60
}

func TotalDuration(sessions []Session) time.Duration {
	var total time.Duration
	for _, session := range sessions {
		total += session.Duration()
	}
	return total
}
