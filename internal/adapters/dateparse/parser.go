package dateparse

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bnema/punch/internal/ports"
	"github.com/markusmobius/go-dateparser"
)

var ErrEmptyExpression = errors.New("date expression is empty")

var weekRelativeRegex = regexp.MustCompile(`(?i)^(this|current|last|previous|next)\s+week$`)

// Parser resolves expressions such as "2018-01-08", "last week" or
// "3 weeks ago" relative to a reference instant.
type Parser struct{}

var _ ports.DateParser = Parser{}

func (Parser) Parse(expr string, now time.Time) (time.Time, error) {
	input := strings.TrimSpace(expr)
	if input == "" {
		return time.Time{}, ErrEmptyExpression
	}

	if strings.EqualFold(input, "now") || strings.EqualFold(input, "today") {
		return now, nil
	}

	if match := weekRelativeRegex.FindStringSubmatch(input); match != nil {
		return shiftWeeks(now, strings.ToLower(match[1])), nil
	}

	if parsed, err := time.ParseInLocation(time.DateOnly, input, now.Location()); err == nil {
		return parsed, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", input, err)
	}
	if result.Time.IsZero() {
		return time.Time{}, fmt.Errorf("parse date %q: no date found", input)
	}

	return result.Time.In(now.Location()), nil
}

func shiftWeeks(now time.Time, modifier string) time.Time {
	switch modifier {
	case "last", "previous":
		return now.AddDate(0, 0, -7)
	case "next":
		return now.AddDate(0, 0, 7)
	default:
		return now
	}
}
