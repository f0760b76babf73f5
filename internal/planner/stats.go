package planner

import (
	"math"
	"sort"
	"time"

	"studentsathi/internal/models"
)

// Stats are the derived numbers shown above a displayed task list.
type Stats struct {
	Total           int    `json:"total"`
	Completed       int    `json:"completed"`
	Pending         int    `json:"pending"`
	ProgressPercent int    `json:"progressPercent"`
	TotalStudyTime  string `json:"totalStudyTime"`
}

// ComputeStats derives counts and the generic study-time total over a
// displayed task list. The total counts every displayed task's duration
// regardless of completion; the weekly summary widget uses
// SummaryStudyTime instead, which only counts completed tasks. The two
// totals are intentionally different and must not be unified.
func ComputeStats(tasks []models.Task) Stats {
	stats := Stats{Total: len(tasks)}
	var minutes float64
	for _, t := range tasks {
		if t.IsCompleted {
			stats.Completed++
		}
		minutes += ParseDurationToMinutes(t.Duration)
	}
	stats.Pending = stats.Total - stats.Completed
	if stats.Total > 0 {
		stats.ProgressPercent = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	stats.TotalStudyTime = FormatMinutesToDuration(minutes)
	return stats
}

// SummaryStudyTime formats the time spent on completed tasks only.
func SummaryStudyTime(tasks []models.Task) string {
	var minutes float64
	for _, t := range tasks {
		if t.IsCompleted {
			minutes += ParseDurationToMinutes(t.Duration)
		}
	}
	return FormatMinutesToDuration(minutes)
}

// SubjectCount pairs a subject with its task count for the filter dropdown.
type SubjectCount struct {
	Subject string `json:"subject"`
	Count   int    `json:"count"`
}

// SubjectCounts aggregates per-subject counts over the view-visible tasks,
// before the subject filter is applied, sorted alphabetically.
func SubjectCounts(tasks []models.Task) []SubjectCount {
	counts := make(map[string]int)
	for _, t := range tasks {
		counts[t.Subject]++
	}
	out := make([]SubjectCount, 0, len(counts))
	for subject, count := range counts {
		out = append(out, SubjectCount{Subject: subject, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subject < out[j].Subject })
	return out
}

// DayLoad is one bar of the weekly progress chart.
type DayLoad struct {
	Day   string  `json:"day"`
	Hours float64 `json:"hours"`
}

var weekDayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeeklyLoad buckets dated tasks of the current week into per-day study
// hours, Monday first, each rounded to one decimal.
func WeeklyLoad(tasks []models.Task, now time.Time) []DayLoad {
	var hours [7]float64
	for _, t := range tasks {
		if t.Date == nil {
			continue
		}
		idx, ok := WeekDayIndex(MillisToTime(*t.Date), now)
		if !ok {
			continue
		}
		hours[idx] += ParseDurationToMinutes(t.Duration) / 60
	}

	out := make([]DayLoad, 7)
	for i := range out {
		out[i] = DayLoad{Day: weekDayLabels[i], Hours: math.Round(hours[i]*10) / 10}
	}
	return out
}
