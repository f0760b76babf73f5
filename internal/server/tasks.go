package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"studentsathi/internal/models"
	"studentsathi/internal/planner"
	"studentsathi/internal/storage/sqlite"
)

// handleListTasks returns the session's tasks, optionally filtered by view.
func (s *Server) handleListTasks(c *gin.Context) {
	ctrl := s.controller(c)

	var view *models.ViewType
	if raw := c.Query("view"); raw != "" {
		v, ok := models.ParseViewType(raw)
		if !ok {
			s.respondError(c, http.StatusBadRequest, fmt.Errorf("unknown view %q", raw))
			return
		}
		view = &v
	}

	tasks, err := ctrl.ListTasks(c.Request.Context(), view)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"tasks": tasks})
}

// handleAddTask creates a task in the session's source.
func (s *Server) handleAddTask(c *gin.Context) {
	var draft models.TaskDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	if err := s.controller(c).AddTask(c.Request.Context(), draft); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, planner.ErrAddInFlight) {
			status = http.StatusConflict
		}
		s.respondError(c, status, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"status": "created"})
}

// handleToggleTask flips completion on a task.
func (s *Server) handleToggleTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.controller(c).ToggleCompletion(c.Request.Context(), id); err != nil {
		s.respondError(c, statusForStoreError(err), err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "toggled"})
}

// handleDeleteTask removes a task completely.
func (s *Server) handleDeleteTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.controller(c).DeleteTask(c.Request.Context(), id); err != nil {
		s.respondError(c, statusForStoreError(err), err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "deleted"})
}

// handleClearTasks removes every task of the session.
func (s *Server) handleClearTasks(c *gin.Context) {
	if err := s.controller(c).ClearAll(c.Request.Context()); err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "cleared"})
}

// handleTaskCount reports how many tasks the session has.
func (s *Server) handleTaskCount(c *gin.Context) {
	if userID, ok := authedUserID(c); ok {
		count, err := s.store.TaskCount(c.Request.Context(), userID)
		if err != nil {
			s.respondError(c, http.StatusInternalServerError, err)
			return
		}
		respondSuccess(c, http.StatusOK, gin.H{"count": count})
		return
	}

	tasks, err := s.controller(c).ListTasks(c.Request.Context(), nil)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"count": len(tasks)})
}

type reorderRequest struct {
	Order []int64 `json:"order"`
}

// handleReorderTasks rewrites board order; authenticated sessions only.
func (s *Server) handleReorderTasks(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		s.respondError(c, http.StatusForbidden, fmt.Errorf("reorder requires an account"))
		return
	}

	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := s.store.ReorderTasks(c.Request.Context(), userID, req.Order); err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "reordered"})
}

// handleUndoTask removes the most recently created task; authenticated
// sessions only.
func (s *Server) handleUndoTask(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		s.respondError(c, http.StatusForbidden, fmt.Errorf("undo requires an account"))
		return
	}
	if err := s.store.UndoLastTask(c.Request.Context(), userID); err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "undone"})
}

func statusForStoreError(err error) int {
	if errors.Is(err, sqlite.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
