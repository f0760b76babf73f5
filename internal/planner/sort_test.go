package planner

import (
	"testing"

	"studentsathi/internal/models"
)

func taskIDs(tasks []models.Task) []int64 {
	ids := make([]int64, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortTasksByDefault(t *testing.T) {
	tasks := []models.Task{{ID: 3}, {ID: 1}, {ID: 2}}

	sorted := SortTasksByDefault(tasks)
	if !equalIDs(taskIDs(sorted), []int64{1, 2, 3}) {
		t.Fatalf("default sort = %v", taskIDs(sorted))
	}
	// Input order untouched.
	if !equalIDs(taskIDs(tasks), []int64{3, 1, 2}) {
		t.Fatalf("input mutated: %v", taskIDs(tasks))
	}
	// Stable under repeated application.
	again := SortTasksByDefault(sorted)
	if !equalIDs(taskIDs(again), []int64{1, 2, 3}) {
		t.Fatalf("repeated sort changed order: %v", taskIDs(again))
	}
}

func TestSortTasksByDateTimeScenario(t *testing.T) {
	day := int64(1_715_000_000_000)

	a := models.Task{ID: 1, Date: &day, Time: &models.TimeOfDay{Hour: 9, Minute: 0}}
	b := models.Task{ID: 2, Date: &day, Time: &models.TimeOfDay{Hour: 14, Minute: 30}}
	c := models.Task{ID: 3}

	sorted := SortTasksByDateTime([]models.Task{c, b, a})
	if !equalIDs(taskIDs(sorted), []int64{1, 2, 3}) {
		t.Fatalf("dateTime sort = %v, want [1 2 3]", taskIDs(sorted))
	}
}

func TestSortTasksByDateTimeUndatedLastByID(t *testing.T) {
	day := int64(1_715_000_000_000)
	later := day + 86_400_000

	tasks := []models.Task{
		{ID: 5},
		{ID: 2, Date: &later},
		{ID: 4},
		{ID: 1, Date: &day},
		{ID: 3},
	}

	sorted := SortTasksByDateTime(tasks)
	if !equalIDs(taskIDs(sorted), []int64{1, 2, 3, 4, 5}) {
		t.Fatalf("dateTime sort = %v", taskIDs(sorted))
	}
}

func TestSortTasksByDateTimeTieBreak(t *testing.T) {
	day := int64(1_715_000_000_000)

	// Same instant: id decides. A dated task with no time sorts as 00:00.
	tasks := []models.Task{
		{ID: 7, Date: &day},
		{ID: 2, Date: &day, Time: &models.TimeOfDay{Hour: 0, Minute: 0}},
	}

	sorted := SortTasksByDateTime(tasks)
	if !equalIDs(taskIDs(sorted), []int64{2, 7}) {
		t.Fatalf("tie break = %v, want [2 7]", taskIDs(sorted))
	}
}

func TestSortTasksMode(t *testing.T) {
	day := int64(1_715_000_000_000)
	tasks := []models.Task{{ID: 2}, {ID: 1, Date: &day}}

	if got := SortTasks(tasks, models.SortDateTime); !equalIDs(taskIDs(got), []int64{1, 2}) {
		t.Errorf("dateTime mode = %v", taskIDs(got))
	}
	if got := SortTasks(tasks, models.SortDefault); !equalIDs(taskIDs(got), []int64{1, 2}) {
		t.Errorf("default mode = %v", taskIDs(got))
	}
	// Unknown mode falls back to creation order.
	if got := SortTasks(tasks, models.SortMode("bogus")); !equalIDs(taskIDs(got), []int64{1, 2}) {
		t.Errorf("unknown mode = %v", taskIDs(got))
	}
}
