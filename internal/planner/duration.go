package planner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Duration strings follow a small grammar: "<n> minute(s)" or "<n> hour(s)",
// case-insensitive, with an optional decimal part. Anything else is worth
// zero minutes.
var (
	minutesPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*minutes?$`)
	hoursPattern   = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*hours?$`)
)

// ParseDurationToMinutes converts a duration string into total minutes.
// Unparseable input yields 0, never an error.
func ParseDurationToMinutes(duration string) float64 {
	trimmed := strings.ToLower(strings.TrimSpace(duration))
	if trimmed == "" {
		return 0
	}

	if m := minutesPattern.FindStringSubmatch(trimmed); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0
		}
		return v
	}

	if m := hoursPattern.FindStringSubmatch(trimmed); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0
		}
		return v * 60
	}

	return 0
}

// FormatMinutesToDuration renders total minutes as a human-readable string,
// e.g. "45 minutes", "1 hour", "1.5 hours". The round-trip with
// ParseDurationToMinutes is lossy: "90 minutes" formats back as "1.5 hours".
func FormatMinutesToDuration(totalMinutes float64) string {
	if totalMinutes < 60 {
		value := strconv.FormatFloat(totalMinutes, 'f', -1, 64)
		if totalMinutes == 1 {
			return value + " minute"
		}
		return value + " minutes"
	}

	hours := totalMinutes / 60
	if hours == 1 {
		return "1 hour"
	}

	formatted := strings.TrimSuffix(fmt.Sprintf("%.1f", hours), ".0")
	return formatted + " hours"
}
