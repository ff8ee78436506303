package toml

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/punch/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int      `toml:"version"`
	ClientID int64    `toml:"client_id"`
	Gap      string   `toml:"gap"`
	Rounding string   `toml:"rounding"`
	BaseURL  string   `toml:"base_url"`
	WeekOf   string   `toml:"week_of,omitempty"`
	Timezone string   `toml:"timezone,omitempty"`
	Projects []string `toml:"projects,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func validateVersion(version int) error {
	if version > currentSchemaVersion {
		return fmt.Errorf("unsupported settings schema version %d (current %d)", version, currentSchemaVersion)
	}

	return nil
}

func toSchema(settings domain.Settings) fileSchema {
	return fileSchema{
		Version:  currentSchemaVersion,
		ClientID: int64(settings.ClientID),
		Gap:      formatDuration(settings.Gap),
		Rounding: formatDuration(settings.Rounding),
		BaseURL:  settings.BaseURL,
		WeekOf:   settings.WeekOf,
		Timezone: settings.Timezone,
		Projects: settings.Projects,
	}
}

// formatDuration renders 10m instead of 10m0s.
func formatDuration(d time.Duration) string {
	out := d.String()
	if strings.HasSuffix(out, "m0s") {
		out = strings.TrimSuffix(out, "0s")
	}
	if strings.HasSuffix(out, "h0m") {
		out = strings.TrimSuffix(out, "0m")
	}
	return out
}
