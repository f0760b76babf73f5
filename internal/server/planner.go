package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"studentsathi/internal/models"
)

// handlePlanner returns the fully derived planner page state for the
// session: the displayed task list plus stats, subject counts and the
// weekly chart buckets.
func (s *Server) handlePlanner(c *gin.Context) {
	ctrl := s.controller(c)

	if raw := c.Query("view"); raw != "" {
		view, ok := models.ParseViewType(raw)
		if !ok {
			s.respondError(c, http.StatusBadRequest, fmt.Errorf("unknown view %q", raw))
			return
		}
		ctrl.SetView(view)
	}
	if raw := c.Query("subject"); c.Request.URL.Query().Has("subject") {
		ctrl.SetSubjectFilter(ctrl.Prefs().View(), raw)
	}

	display, err := ctrl.BuildDisplay(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, display)
}

type preferencesResponse struct {
	View                models.ViewType `json:"view"`
	SortMode            models.SortMode `json:"sortMode"`
	SubjectFilterDaily  string          `json:"subjectFilterDaily"`
	SubjectFilterWeekly string          `json:"subjectFilterWeekly"`
}

// handleGetPreferences returns the persisted planner preferences.
func (s *Server) handleGetPreferences(c *gin.Context) {
	prefs := s.controller(c).Prefs()
	respondSuccess(c, http.StatusOK, preferencesResponse{
		View:                prefs.View(),
		SortMode:            prefs.SortMode(),
		SubjectFilterDaily:  prefs.SubjectFilter(models.ViewDaily),
		SubjectFilterWeekly: prefs.SubjectFilter(models.ViewWeekly),
	})
}

type preferencesRequest struct {
	View                *string `json:"view"`
	SortMode            *string `json:"sortMode"`
	SubjectFilterDaily  *string `json:"subjectFilterDaily"`
	SubjectFilterWeekly *string `json:"subjectFilterWeekly"`
}

// handleSetPreferences updates any subset of the planner preferences.
// Unknown view or sort values are rejected rather than silently stored.
func (s *Server) handleSetPreferences(c *gin.Context) {
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	prefs := s.controller(c).Prefs()

	if req.View != nil {
		view, ok := models.ParseViewType(*req.View)
		if !ok {
			s.respondError(c, http.StatusBadRequest, fmt.Errorf("unknown view %q", *req.View))
			return
		}
		prefs.SetView(view)
	}
	if req.SortMode != nil {
		mode, ok := models.ParseSortMode(*req.SortMode)
		if !ok {
			s.respondError(c, http.StatusBadRequest, fmt.Errorf("unknown sort mode %q", *req.SortMode))
			return
		}
		prefs.SetSortMode(mode)
	}
	if req.SubjectFilterDaily != nil {
		prefs.SetSubjectFilter(models.ViewDaily, *req.SubjectFilterDaily)
	}
	if req.SubjectFilterWeekly != nil {
		prefs.SetSubjectFilter(models.ViewWeekly, *req.SubjectFilterWeekly)
	}

	s.handleGetPreferences(c)
}
