package planner

import (
	"math"
	"time"

	"studentsathi/internal/models"
)

// nanosPerMilli converts the authenticated store's nanosecond ticks into the
// canonical millisecond representation.
const nanosPerMilli = 1_000_000

const (
	millisPerMinute = 60_000
	millisPerHour   = 3_600_000
)

// NanosToMillis converts a nanosecond-resolution tick count to epoch
// milliseconds.
func NanosToMillis(ns int64) int64 {
	return ns / nanosPerMilli
}

// MillisToTime converts canonical epoch milliseconds to a local-zone instant.
func MillisToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// WeekStart returns local-midnight Monday of the week containing now.
func WeekStart(now time.Time) time.Time {
	weekday := int(now.Weekday())
	offset := 1 - weekday
	if weekday == 0 { // Sunday belongs to the week that started six days ago
		offset = -6
	}
	monday := now.AddDate(0, 0, offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())
}

// WeekEnd returns Sunday 23:59:59.999 of the week containing now.
func WeekEnd(now time.Time) time.Time {
	sunday := WeekStart(now).AddDate(0, 0, 6)
	return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, 999*nanosPerMilli, now.Location())
}

// InCurrentWeek reports whether d falls inside the Monday-Sunday week
// containing now, inclusive at both ends.
func InCurrentWeek(d, now time.Time) bool {
	start := WeekStart(now)
	end := WeekEnd(now)
	return !d.Before(start) && !d.After(end)
}

// WeekDayIndex returns the day offset of d within the current week,
// 0=Monday through 6=Sunday. The second result is false when d is outside
// the week.
func WeekDayIndex(d, now time.Time) (int, bool) {
	if !InCurrentWeek(d, now) {
		return 0, false
	}
	dayStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	diff := int(dayStart.Sub(WeekStart(now)) / (24 * time.Hour))
	if diff < 0 || diff > 6 {
		return 0, false
	}
	return diff, true
}

// SortTimestamp is the combined date+time sort key of a task, in epoch
// milliseconds. Tasks without a date sort after every dated task; their time
// field, if any, is ignored.
func SortTimestamp(t models.Task) int64 {
	if t.Date == nil {
		return math.MaxInt64
	}
	key := *t.Date
	if t.Time != nil {
		key += int64(t.Time.Hour)*millisPerHour + int64(t.Time.Minute)*millisPerMinute
	}
	return key
}
