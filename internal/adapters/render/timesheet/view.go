package timesheet

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/punch/internal/application"
	"github.com/bnema/punch/internal/domain"
)

const (
	headerCaption = "                Actual  Actual  Actual  Punch"
	headerColumns = "Day             In Date In      Out     Hours"
	headerRule    = "--------------- ------- ------- ------- -----"

	weekdayWidth  = 9
	runningMarker = "*"
)

type RenderOptions struct {
	Location *time.Location
	Color    bool
}

func (o RenderOptions) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

func renderView(sheet application.Timesheet, opts RenderOptions, s styles) string {
	loc := opts.location()

	lines := []string{
		"",
		s.paint(s.header, headerCaption),
		s.paint(s.header, headerColumns),
		s.paint(s.rule, headerRule),
	}

	for _, session := range sheet.Sessions {
		lines = append(lines, sessionRow(session, loc, s))
	}

	lines = append(lines,
		"",
		s.paint(s.count, fmt.Sprintf("%d entries", len(sheet.Sessions))),
		s.paint(s.total, fmt.Sprintf("total: %.2f hours (decimal)", sheet.TotalHours())),
	)

	return strings.Join(lines, "\n")
}

func sessionRow(session domain.Session, loc *time.Location, s styles) string {
	marker := ""
	if session.Running {
		marker = s.paint(s.running, runningMarker)
	}

	return fmt.Sprintf("%s\t%s\t%s%s\t%s",
		formatWeekday(session.Start, loc),
		formatDateTime(session.Start, loc),
		formatTime(session.Stop, loc),
		marker,
		formatHours(session.Duration()),
	)
}

func formatWeekday(t time.Time, loc *time.Location) string {
	return fmt.Sprintf("%-*s", weekdayWidth, t.In(loc).Weekday().String())
}

// formatDateTime renders "1/05/26 900A".
func formatDateTime(t time.Time, loc *time.Location) string {
	date := strings.TrimLeft(t.In(loc).Format("01/02/06"), "0")
	return date + " " + formatTime(t, loc)
}

// formatTime renders a 12-hour clock without separator: "900A", "1230P".
func formatTime(t time.Time, loc *time.Location) string {
	local := t.In(loc)
	meridiem := "A"
	if local.Hour() >= 12 {
		meridiem = "P"
	}
	return strings.TrimLeft(local.Format("0304"), "0") + meridiem
}

// formatHours renders whole minutes as decimal hours without a leading zero.
func formatHours(d time.Duration) string {
	minutes := int64(d / time.Minute)
	return strings.TrimLeft(fmt.Sprintf("%.2f", float64(minutes)/60), "0")
}
