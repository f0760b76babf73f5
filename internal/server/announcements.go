package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type announcementRequest struct {
	Message string `json:"message"`
}

// handleListAnnouncements returns all announcements, newest first.
func (s *Server) handleListAnnouncements(c *gin.Context) {
	announcements, err := s.store.ListAnnouncements(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"announcements": announcements})
}

// handleCreateAnnouncement stores a new broadcast message.
func (s *Server) handleCreateAnnouncement(c *gin.Context) {
	var req announcementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	announcement, err := s.store.CreateAnnouncement(c.Request.Context(), req.Message)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"announcement": announcement})
}

// handleDeleteAnnouncement removes an announcement.
func (s *Server) handleDeleteAnnouncement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteAnnouncement(c.Request.Context(), id); err != nil {
		s.respondError(c, statusForStoreError(err), err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "deleted"})
}

type featureRequestBody struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// handleSubmitFeatureRequest stores user feedback.
func (s *Server) handleSubmitFeatureRequest(c *gin.Context) {
	var req featureRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := s.store.SubmitFeatureRequest(c.Request.Context(), req.Message, req.Email); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"status": "submitted"})
}
