package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultClientID ClientID = 34710800
	DefaultBaseURL           = "https://api.track.toggl.com/api/v8"
)

// Settings are the startup-time knobs of a report run.
type Settings struct {
	ClientID ClientID
	Gap      time.Duration
	Rounding time.Duration
	BaseURL  string
	WeekOf   string
	Timezone string
	// Projects holds optional name globs; empty accepts every client project.
	Projects []string
}

func DefaultSettings() Settings {
	return Settings{
		ClientID: DefaultClientID,
		Gap:      DefaultGap,
		Rounding: DefaultRounding,
		BaseURL:  DefaultBaseURL,
	}
}

func (s Settings) Validate() error {
	if s.ClientID <= 0 {
		return fmt.Errorf("%w: client_id must be positive, got %d", ErrInvalidSettings, s.ClientID)
	}

	parsed, err := url.Parse(strings.TrimSpace(s.BaseURL))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: base_url must be an absolute http(s) url, got %q", ErrInvalidSettings, s.BaseURL)
	}

	if _, err := s.Location(); err != nil {
		return err
	}

	return s.MergePolicy(time.UTC).Validate()
}

// Location resolves the configured timezone, defaulting to the process zone.
func (s Settings) Location() (*time.Location, error) {
	name := strings.TrimSpace(s.Timezone)
	if name == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidSettings, name, err)
	}

	return loc, nil
}

func (s Settings) MergePolicy(loc *time.Location) MergePolicy {
	return MergePolicy{
		Gap:      s.Gap,
		Rounding: s.Rounding,
		Location: loc,
	}
}
