package planner

import (
	"log/slog"

	"studentsathi/internal/models"
	"studentsathi/internal/storage/kv"
)

// Preference storage keys, one independent subject filter per view.
const (
	keyViewPreference      = "studyPlanner_viewPreference"
	keySortMode            = "studyPlanner_sortMode"
	keySubjectFilterDaily  = "studyPlanner_subjectFilter_daily"
	keySubjectFilterWeekly = "studyPlanner_subjectFilter_weekly"
)

// Prefs persists the view, sort mode and per-view subject filter. Missing,
// corrupted or foreign values silently fall back to the defaults; write
// failures are logged and otherwise ignored.
type Prefs struct {
	kv     kv.Store
	logger *slog.Logger
}

// NewPrefs builds a preference store over the given key-value namespace.
func NewPrefs(store kv.Store, logger *slog.Logger) *Prefs {
	if logger == nil {
		logger = slog.Default()
	}
	return &Prefs{kv: store, logger: logger}
}

// View returns the persisted planner view, defaulting to weekly.
func (p *Prefs) View() models.ViewType {
	raw, ok, err := p.kv.Get(keyViewPreference)
	if err != nil {
		p.logger.Error("read view preference", slog.String("error", err.Error()))
		return models.ViewWeekly
	}
	if !ok {
		return models.ViewWeekly
	}
	if view, valid := models.ParseViewType(raw); valid {
		return view
	}
	return models.ViewWeekly
}

// SetView persists the planner view.
func (p *Prefs) SetView(view models.ViewType) {
	if err := p.kv.Set(keyViewPreference, string(view)); err != nil {
		p.logger.Error("save view preference", slog.String("error", err.Error()))
	}
}

// SortMode returns the persisted sort mode, defaulting to creation order.
func (p *Prefs) SortMode() models.SortMode {
	raw, ok, err := p.kv.Get(keySortMode)
	if err != nil {
		p.logger.Error("read sort mode", slog.String("error", err.Error()))
		return models.SortDefault
	}
	if !ok {
		return models.SortDefault
	}
	if mode, valid := models.ParseSortMode(raw); valid {
		return mode
	}
	return models.SortDefault
}

// SetSortMode persists the sort mode.
func (p *Prefs) SetSortMode(mode models.SortMode) {
	if err := p.kv.Set(keySortMode, string(mode)); err != nil {
		p.logger.Error("save sort mode", slog.String("error", err.Error()))
	}
}

func subjectFilterKey(view models.ViewType) string {
	if view == models.ViewDaily {
		return keySubjectFilterDaily
	}
	return keySubjectFilterWeekly
}

// SubjectFilter returns the persisted subject filter for a view, empty when
// no filter is set.
func (p *Prefs) SubjectFilter(view models.ViewType) string {
	raw, _, err := p.kv.Get(subjectFilterKey(view))
	if err != nil {
		p.logger.Error("read subject filter", slog.String("view", string(view)), slog.String("error", err.Error()))
		return ""
	}
	return raw
}

// SetSubjectFilter persists the subject filter for a view. An empty subject
// clears the filter.
func (p *Prefs) SetSubjectFilter(view models.ViewType, subject string) {
	if err := p.kv.Set(subjectFilterKey(view), subject); err != nil {
		p.logger.Error("save subject filter", slog.String("view", string(view)), slog.String("error", err.Error()))
	}
}
