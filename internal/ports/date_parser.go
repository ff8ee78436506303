package ports

import "time"

// DateParser turns a human date expression into an instant relative to now.
type DateParser interface {
	Parse(expr string, now time.Time) (time.Time, error)
}
