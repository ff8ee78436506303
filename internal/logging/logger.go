// Package logging builds the structured logger used by every punch command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// Common structured logging fields.
const (
	KeyRunID     = "run_id"
	KeyProject   = "project"
	KeyProjectID = "project_id"
	KeyEntryID   = "entry_id"
	KeyCount     = "count"
	KeyStart     = "start"
	KeyEnd       = "end"
	KeyError     = "error"
)

// Config holds logger configuration.
type Config struct {
	Level  slog.Level
	Format string
	Output io.Writer
}

func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelWarn,
		Format: FormatAuto,
		Output: os.Stderr,
	}
}

// New returns a logger for cfg. The auto format picks text when the output is
// a terminal and JSON otherwise.
func New(cfg Config) *slog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if resolveFormat(cfg.Format, output) == FormatJSON {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", raw)
	}
}

func ParseFormat(raw string) (string, error) {
	switch format := strings.ToLower(strings.TrimSpace(raw)); format {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatText, FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unknown log format %q (want auto, text or json)", raw)
	}
}

func resolveFormat(format string, output io.Writer) string {
	switch format {
	case FormatText, FormatJSON:
		return format
	}

	if isTerminal(output) {
		return FormatText
	}
	return FormatJSON
}

func isTerminal(output io.Writer) bool {
	file, ok := output.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
