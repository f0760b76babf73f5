package guest

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"studentsathi/internal/models"
	"studentsathi/internal/storage/kv"
)

func newTestStore(t *testing.T) (*Store, kv.Store) {
	t.Helper()
	file, err := kv.OpenFile(filepath.Join(t.TempDir(), "local.json"))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	return New(file, nil), file
}

func draft(subject, topic string) models.TaskDraft {
	return models.TaskDraft{Subject: subject, Topic: topic, Duration: "30 minutes"}
}

func TestAddAndList(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Add(ctx, draft("Math", "Algebra")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Add(ctx, draft("Physics", "Optics")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	tasks, err := store.List(ctx, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks", len(tasks))
	}
	if tasks[0].ID != 1 || tasks[1].ID != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", tasks[0].ID, tasks[1].ID)
	}
	if tasks[0].Subject != "Math" || tasks[0].IsCompleted {
		t.Errorf("task 1 = %+v", tasks[0])
	}
	if tasks[0].Created == 0 {
		t.Error("created timestamp not set")
	}
}

func TestListByView(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	daily := draft("Math", "Algebra")
	daily.ViewType = models.ViewDaily
	weekly := draft("Physics", "Optics")
	weekly.ViewType = models.ViewWeekly
	untagged := draft("Urdu", "Poetry")

	for _, d := range []models.TaskDraft{daily, weekly, untagged} {
		if err := store.Add(ctx, d); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	view := models.ViewDaily
	tasks, err := store.List(ctx, &view)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("daily view: got %d tasks", len(tasks))
	}
	if tasks[0].Subject != "Math" || tasks[1].Subject != "Urdu" {
		t.Errorf("daily view = %q, %q", tasks[0].Subject, tasks[1].Subject)
	}
}

func TestToggleCompletion(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Add(ctx, draft("Math", "Algebra")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.ToggleCompletion(ctx, 1); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	tasks, _ := store.List(ctx, nil)
	if !tasks[0].IsCompleted {
		t.Error("task not completed after toggle")
	}

	if err := store.ToggleCompletion(ctx, 1); err != nil {
		t.Fatalf("Toggle back: %v", err)
	}
	tasks, _ = store.List(ctx, nil)
	if tasks[0].IsCompleted {
		t.Error("task still completed after second toggle")
	}

	// Missing id is a silent no-op.
	if err := store.ToggleCompletion(ctx, 99); err != nil {
		t.Errorf("toggle missing id: %v", err)
	}
}

func TestDeleteKeepsIDs(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.Add(ctx, draft("Math", "Topic")); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if err := store.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	tasks, _ := store.List(ctx, nil)
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks after delete", len(tasks))
	}
	if tasks[0].ID != 1 || tasks[1].ID != 3 {
		t.Errorf("remaining ids = %d, %d, want 1, 3", tasks[0].ID, tasks[1].ID)
	}

	// New ids keep counting past the deleted one.
	if err := store.Add(ctx, draft("Math", "Topic")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	tasks, _ = store.List(ctx, nil)
	if tasks[len(tasks)-1].ID != 4 {
		t.Errorf("next id = %d, want 4", tasks[len(tasks)-1].ID)
	}

	if err := store.Delete(ctx, 99); err != nil {
		t.Errorf("delete missing id: %v", err)
	}
}

func TestClearAllResetsCounter(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.Add(ctx, draft("Math", "Topic")); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if err := store.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}

	tasks, _ := store.List(ctx, nil)
	if len(tasks) != 0 {
		t.Fatalf("got %d tasks after clear", len(tasks))
	}

	if err := store.Add(ctx, draft("Math", "Topic")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	tasks, _ = store.List(ctx, nil)
	if tasks[0].ID != 1 {
		t.Errorf("id after clear = %d, want 1", tasks[0].ID)
	}
}

func TestCounterSurvivesNewStore(t *testing.T) {
	store, file := newTestStore(t)
	ctx := context.Background()

	if err := store.Add(ctx, draft("Math", "Topic")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Add(ctx, draft("Math", "Topic")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// A fresh store over the same namespace resumes from max(id)+1.
	fresh := New(file, nil)
	if err := fresh.Add(ctx, draft("Physics", "Topic")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	tasks, _ := fresh.List(ctx, nil)
	if tasks[len(tasks)-1].ID != 3 {
		t.Errorf("resumed id = %d, want 3", tasks[len(tasks)-1].ID)
	}
}

func TestLoadStripsColorOverride(t *testing.T) {
	store, file := newTestStore(t)
	ctx := context.Background()

	// A list persisted by an older build still carries colorOverride.
	legacy := `[{"id":1,"subject":"Math","topic":"Algebra","duration":"30 minutes","isCompleted":false,"created":1715000000000,"colorOverride":"red"}]`
	if err := file.Set("studyPlanner_guestTasks", legacy); err != nil {
		t.Fatalf("seed legacy list: %v", err)
	}

	tasks, err := store.List(ctx, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Subject != "Math" {
		t.Fatalf("tasks = %+v", tasks)
	}

	// Any write rewrites the list without the dropped field.
	if err := store.ToggleCompletion(ctx, 1); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	raw, ok, _ := file.Get("studyPlanner_guestTasks")
	if !ok {
		t.Fatal("task list missing after rewrite")
	}
	if strings.Contains(raw, "colorOverride") {
		t.Errorf("colorOverride survived rewrite: %s", raw)
	}
	var decoded []models.Task
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("decode rewritten list: %v", err)
	}
	if !decoded[0].IsCompleted {
		t.Error("toggle lost in rewrite")
	}
}

func TestCorruptListDegradesToEmpty(t *testing.T) {
	store, file := newTestStore(t)
	ctx := context.Background()

	if err := file.Set("studyPlanner_guestTasks", "{broken"); err != nil {
		t.Fatalf("seed corrupt list: %v", err)
	}

	tasks, err := store.List(ctx, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("corrupt list produced %d tasks", len(tasks))
	}
}
