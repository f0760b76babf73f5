// Package guest implements the local task store used by unauthenticated
// sessions. It mirrors the authenticated task contract without a database:
// the whole task list lives under one key in a durable key-value store and
// ids are assigned from a counter owned by the store.
package guest

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"studentsathi/internal/models"
	"studentsathi/internal/storage/kv"
)

const tasksKey = "studyPlanner_guestTasks"

// Store is the guest-mode task source. Storage failures never propagate:
// reads degrade to an empty list and writes to a logged no-op, so a broken
// store can stall persistence but never the caller.
type Store struct {
	mu     sync.Mutex
	kv     kv.Store
	logger *slog.Logger
	nextID int64
	now    func() time.Time
}

// New builds a guest store over a key-value namespace.
func New(store kv.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: store, logger: logger, nextID: 1, now: time.Now}
}

// legacyTask is the persisted shape including fields dropped from the
// schema. Decoding through it strips anything not listed here, which
// migrates old lists that still carry a colorOverride.
type legacyTask struct {
	ID           int64             `json:"id"`
	Subject      string            `json:"subject"`
	Topic        string            `json:"topic"`
	Duration     string            `json:"duration"`
	Priority     string            `json:"priority,omitempty"`
	IsCompleted  bool              `json:"isCompleted"`
	ViewType     models.ViewType   `json:"viewType,omitempty"`
	SubjectColor string            `json:"subjectColor,omitempty"`
	Created      int64             `json:"created"`
	Date         *int64            `json:"date,omitempty"`
	Time         *models.TimeOfDay `json:"time,omitempty"`
}

// load reads and migrates the persisted list and refreshes the id counter
// to max(id)+1. The caller must hold the lock.
func (s *Store) load() []models.Task {
	raw, ok, err := s.kv.Get(tasksKey)
	if err != nil {
		s.logger.Error("load guest tasks", slog.String("error", err.Error()))
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var stored []legacyTask
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Error("decode guest tasks", slog.String("error", err.Error()))
		return nil
	}

	tasks := make([]models.Task, 0, len(stored))
	var maxID int64
	for _, t := range stored {
		if t.ID > maxID {
			maxID = t.ID
		}
		tasks = append(tasks, models.Task{
			ID:           t.ID,
			Subject:      t.Subject,
			Topic:        t.Topic,
			Duration:     t.Duration,
			Priority:     t.Priority,
			IsCompleted:  t.IsCompleted,
			ViewType:     t.ViewType,
			SubjectColor: t.SubjectColor,
			Created:      t.Created,
			Date:         t.Date,
			Time:         t.Time,
		})
	}
	if maxID >= s.nextID {
		s.nextID = maxID + 1
	}
	return tasks
}

func (s *Store) save(tasks []models.Task) {
	raw, err := json.Marshal(tasks)
	if err != nil {
		s.logger.Error("encode guest tasks", slog.String("error", err.Error()))
		return
	}
	if err := s.kv.Set(tasksKey, string(raw)); err != nil {
		s.logger.Error("save guest tasks", slog.String("error", err.Error()))
	}
}

// List returns the stored tasks, optionally restricted to a view. Untagged
// tasks are visible in every view.
func (s *Store) List(_ context.Context, view *models.ViewType) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.load()
	if view == nil {
		return tasks, nil
	}
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ViewType == "" || t.ViewType == *view {
			out = append(out, t)
		}
	}
	return out, nil
}

// Add assigns the next monotonic id and appends the task.
func (s *Store) Add(_ context.Context, draft models.TaskDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.load()
	task := models.Task{
		ID:           s.nextID,
		Subject:      draft.Subject,
		Topic:        draft.Topic,
		Duration:     draft.Duration,
		Priority:     draft.Priority,
		IsCompleted:  false,
		ViewType:     draft.ViewType,
		SubjectColor: draft.SubjectColor,
		Created:      s.now().UnixMilli(),
		Date:         draft.Date,
		Time:         draft.Time,
	}
	s.nextID++
	s.save(append(tasks, task))
	return nil
}

// ToggleCompletion flips the matching task's completion flag. A missing id
// is a silent no-op.
func (s *Store) ToggleCompletion(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.load()
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].IsCompleted = !tasks[i].IsCompleted
			s.save(tasks)
			return nil
		}
	}
	return nil
}

// Delete removes the matching task. A missing id is a silent no-op and ids
// of the remaining tasks are untouched.
func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.load()
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return nil
	}
	s.save(kept)
	return nil
}

// ClearAll empties the store and resets the id counter, so the next task
// gets id 1 again.
func (s *Store) ClearAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(tasksKey); err != nil {
		s.logger.Error("clear guest tasks", slog.String("error", err.Error()))
		return nil
	}
	s.nextID = 1
	return nil
}
