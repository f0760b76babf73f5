package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"studentsathi/internal/models"
)

// TaskSource is a task backend the controller can drive: the guest store
// for anonymous sessions or the authenticated store otherwise. A session is
// bound to exactly one source; the two are never merged.
type TaskSource interface {
	// List returns the source's tasks, optionally pre-filtered to a view.
	// Sources that cannot filter may return everything; the controller
	// re-applies view visibility either way.
	List(ctx context.Context, view *models.ViewType) ([]models.Task, error)
	Add(ctx context.Context, draft models.TaskDraft) error
	ToggleCompletion(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	ClearAll(ctx context.Context) error
}

// ErrAddInFlight is returned when an add is requested while a previous add
// for the same session has not finished yet.
var ErrAddInFlight = errors.New("add task already in progress")

// Controller unifies a task source with the persisted view, sort and filter
// preferences and derives everything a planner page displays.
type Controller struct {
	source TaskSource
	prefs  *Prefs
	logger *slog.Logger
	now    func() time.Time

	adding atomic.Bool
}

// NewController builds a controller over a task source and its preference
// store.
func NewController(source TaskSource, prefs *Prefs, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{source: source, prefs: prefs, logger: logger, now: time.Now}
}

// VisibleTasks filters tasks to those belonging to the active view. Tasks
// without a view tag are visible everywhere.
func VisibleTasks(tasks []models.Task, view models.ViewType) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ViewType == "" || t.ViewType == view {
			out = append(out, t)
		}
	}
	return out
}

// ApplySubjectFilter restricts tasks to an exact subject match. An empty
// subject is the identity.
func ApplySubjectFilter(tasks []models.Task, subject string) []models.Task {
	if subject == "" {
		return tasks
	}
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Subject == subject {
			out = append(out, t)
		}
	}
	return out
}

// Display is the fully derived planner page state.
type Display struct {
	View             models.ViewType `json:"view"`
	SortMode         models.SortMode `json:"sortMode"`
	SubjectFilter    string          `json:"subjectFilter,omitempty"`
	Tasks            []models.Task   `json:"tasks"`
	SubjectCounts    []SubjectCount  `json:"subjectCounts"`
	Stats            Stats           `json:"stats"`
	SummaryStudyTime string          `json:"summaryStudyTime"`
	WeeklyLoad       []DayLoad       `json:"weeklyLoad"`
}

// BuildDisplay lists the active source and applies the full pipeline:
// view visibility, subject filter, sort, then derived statistics. Subject
// counts are taken before the subject filter so the dropdown always shows
// every subject of the view.
func (c *Controller) BuildDisplay(ctx context.Context) (Display, error) {
	view := c.prefs.View()

	tasks, err := c.source.List(ctx, &view)
	if err != nil {
		return Display{}, fmt.Errorf("list tasks: %w", err)
	}

	visible := VisibleTasks(tasks, view)
	filter := c.prefs.SubjectFilter(view)
	sorted := SortTasks(ApplySubjectFilter(visible, filter), c.prefs.SortMode())

	return Display{
		View:             view,
		SortMode:         c.prefs.SortMode(),
		SubjectFilter:    filter,
		Tasks:            sorted,
		SubjectCounts:    SubjectCounts(visible),
		Stats:            ComputeStats(sorted),
		SummaryStudyTime: SummaryStudyTime(sorted),
		WeeklyLoad:       WeeklyLoad(visible, c.now()),
	}, nil
}

// ListTasks lists the active source, optionally restricted to a view.
func (c *Controller) ListTasks(ctx context.Context, view *models.ViewType) ([]models.Task, error) {
	tasks, err := c.source.List(ctx, view)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if view != nil {
		tasks = VisibleTasks(tasks, *view)
	}
	return tasks, nil
}

// AddTask validates a draft, fills in the persisted subject color and
// dispatches it to the active source. Concurrent adds for the same session
// are rejected with ErrAddInFlight rather than queued.
func (c *Controller) AddTask(ctx context.Context, draft models.TaskDraft) error {
	draft.Subject = strings.TrimSpace(draft.Subject)
	draft.Topic = strings.TrimSpace(draft.Topic)
	draft.Duration = strings.TrimSpace(draft.Duration)
	draft.Priority = strings.TrimSpace(draft.Priority)

	if draft.Subject == "" || draft.Topic == "" || draft.Duration == "" {
		return errors.New("all fields are required")
	}

	if !c.adding.CompareAndSwap(false, true) {
		return ErrAddInFlight
	}
	defer c.adding.Store(false)

	if draft.SubjectColor == "" {
		draft.SubjectColor = PersistedSubjectColor(draft.Subject)
	}
	if draft.ViewType == "" {
		draft.ViewType = c.prefs.View()
	}

	if err := c.source.Add(ctx, draft); err != nil {
		return fmt.Errorf("add task: %w", err)
	}
	return nil
}

// ToggleCompletion flips completion on the active source.
func (c *Controller) ToggleCompletion(ctx context.Context, id int64) error {
	return c.source.ToggleCompletion(ctx, id)
}

// DeleteTask removes a task from the active source.
func (c *Controller) DeleteTask(ctx context.Context, id int64) error {
	return c.source.Delete(ctx, id)
}

// ClearAll removes every task from the active source.
func (c *Controller) ClearAll(ctx context.Context) error {
	return c.source.ClearAll(ctx)
}

// SetView persists the active view.
func (c *Controller) SetView(view models.ViewType) { c.prefs.SetView(view) }

// SetSortMode persists the sort mode.
func (c *Controller) SetSortMode(mode models.SortMode) { c.prefs.SetSortMode(mode) }

// SetSubjectFilter persists the subject filter for a view.
func (c *Controller) SetSubjectFilter(view models.ViewType, subject string) {
	c.prefs.SetSubjectFilter(view, subject)
}

// Prefs exposes the underlying preference store.
func (c *Controller) Prefs() *Prefs { return c.prefs }
