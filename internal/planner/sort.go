package planner

import (
	"sort"

	"studentsathi/internal/models"
)

// SortTasksByDefault orders tasks by ascending id, which reflects creation
// order since both sources assign monotonic ids. The input is not mutated.
func SortTasksByDefault(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// SortTasksByDateTime orders tasks chronologically by their combined
// date+time key. Undated tasks all share the maximal key and therefore land
// at the end; every tie is broken by ascending id so the order is total and
// repeatable.
func SortTasksByDateTime(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := SortTimestamp(out[i]), SortTimestamp(out[j])
		if a != b {
			return a < b
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// SortTasks applies the ordering selected by mode. Unknown modes fall back
// to the default creation order.
func SortTasks(tasks []models.Task, mode models.SortMode) []models.Task {
	if mode == models.SortDateTime {
		return SortTasksByDateTime(tasks)
	}
	return SortTasksByDefault(tasks)
}
