package models

// ViewType scopes a task to the daily or weekly planner view. Tasks with an
// empty view type are visible in every view.
type ViewType string

const (
	ViewDaily  ViewType = "daily"
	ViewWeekly ViewType = "weekly"
)

// ParseViewType validates a raw view string.
func ParseViewType(raw string) (ViewType, bool) {
	switch ViewType(raw) {
	case ViewDaily, ViewWeekly:
		return ViewType(raw), true
	}
	return "", false
}

// SortMode selects the ordering of a displayed task list.
type SortMode string

const (
	SortDefault  SortMode = "default"
	SortDateTime SortMode = "dateTime"
)

// ParseSortMode validates a raw sort mode string.
func ParseSortMode(raw string) (SortMode, bool) {
	switch SortMode(raw) {
	case SortDefault, SortDateTime:
		return SortMode(raw), true
	}
	return "", false
}

// Task priorities. Priority is free-form at the storage level and an empty
// string means absent.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// TimeOfDay is an optional wall-clock time attached to a task. It is only
// meaningful together with a date.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Task is the canonical study task shape shared by the guest and
// authenticated sources. Dates and the creation instant are epoch
// milliseconds regardless of how the owning source encodes them.
type Task struct {
	ID           int64      `json:"id"`
	Subject      string     `json:"subject"`
	Topic        string     `json:"topic"`
	Duration     string     `json:"duration"`
	Priority     string     `json:"priority,omitempty"`
	IsCompleted  bool       `json:"isCompleted"`
	ViewType     ViewType   `json:"viewType,omitempty"`
	SubjectColor string     `json:"subjectColor,omitempty"`
	Created      int64      `json:"created"`
	Date         *int64     `json:"date,omitempty"`
	Time         *TimeOfDay `json:"time,omitempty"`
}

// TaskDraft carries the user-supplied fields of a new task. The owning
// source assigns id, completion state and creation instant.
type TaskDraft struct {
	Subject      string     `json:"subject"`
	Topic        string     `json:"topic"`
	Duration     string     `json:"duration"`
	Priority     string     `json:"priority"`
	ViewType     ViewType   `json:"viewType"`
	SubjectColor string     `json:"subjectColor"`
	Date         *int64     `json:"date"`
	Time         *TimeOfDay `json:"time"`
}

// User is an authenticated account.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	IsAdmin      bool   `json:"isAdmin"`
	PasswordHash string `json:"-"`
}

// Announcement is a broadcast message created by an admin.
type Announcement struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
	Created int64  `json:"created"`
}

// FeatureRequest is user feedback submitted from the request-feature page.
type FeatureRequest struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
	Email   string `json:"email,omitempty"`
	Created int64  `json:"created"`
}

// ConversationEntry is a stored assistant question/answer pair.
type ConversationEntry struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Created  int64  `json:"created"`
}
