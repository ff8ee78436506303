package timesheet

import (
	"encoding/json"
	"io"
	"math"
	"time"

	"github.com/bnema/punch/internal/application"
)

type jsonWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type jsonSession struct {
	Start   time.Time `json:"start"`
	Stop    time.Time `json:"stop"`
	Running bool      `json:"running"`
	Hours   float64   `json:"hours"`
}

type jsonReport struct {
	Window     jsonWindow    `json:"window"`
	Sessions   []jsonSession `json:"sessions"`
	Entries    int           `json:"entries"`
	TotalHours float64       `json:"total_hours"`
}

// WriteJSON encodes the timesheet with timestamps in opts.Location.
func WriteJSON(w io.Writer, sheet application.Timesheet, opts RenderOptions) error {
	loc := opts.location()

	report := jsonReport{
		Window: jsonWindow{
			Start: sheet.Window.Start.In(loc),
			End:   sheet.Window.End.In(loc),
		},
		Sessions:   make([]jsonSession, 0, len(sheet.Sessions)),
		Entries:    len(sheet.Sessions),
		TotalHours: roundHours(sheet.TotalHours()),
	}
	for _, session := range sheet.Sessions {
		report.Sessions = append(report.Sessions, jsonSession{
			Start:   session.Start.In(loc),
			Stop:    session.Stop.In(loc),
			Running: session.Running,
			Hours:   roundHours(session.Hours()),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func roundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}
