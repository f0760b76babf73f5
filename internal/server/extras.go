package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studentsathi/internal/assistant"
	"studentsathi/internal/letters"
	"studentsathi/internal/notes"
)

type chatRequest struct {
	Message string `json:"message"`
}

// handleAssistantChat runs one turn of the rule-based assistant for the
// session's conversation. Authenticated turns are appended to the stored
// conversation log; a failed save never fails the chat.
func (s *Server) handleAssistantChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	scope := c.GetString(ctxScope)
	cached, _ := s.assistants.LoadOrStore(scope, assistant.NewSession())
	session := cached.(*assistant.Session)

	reply := session.Respond(req.Message)

	if userID, ok := authedUserID(c); ok {
		if err := s.store.SaveConversationEntry(c.Request.Context(), userID, req.Message, reply.Text); err != nil {
			s.logger.Error("save conversation entry", slog.String("error", err.Error()))
		}
	}

	respondSuccess(c, http.StatusOK, reply)
}

type leaveLetterRequest struct {
	Name   string `json:"name"`
	Period string `json:"period"`
	Reason string `json:"reason"`
}

// handleLeaveLetter generates a leave application letter.
func (s *Server) handleLeaveLetter(c *gin.Context) {
	var req leaveLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	letter, err := letters.LeaveApplication(req.Name, req.Period, req.Reason, time.Now())
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"letter": letter})
}

// handleResume generates a plain-text resume.
func (s *Server) handleResume(c *gin.Context) {
	var req letters.ResumeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	resume, err := letters.Resume(req)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"resume": resume})
}

type cleanNotesRequest struct {
	Notes string `json:"notes"`
}

// handleCleanNotes formats rough notes into clean text.
func (s *Server) handleCleanNotes(c *gin.Context) {
	var req cleanNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"notes": notes.Clean(req.Notes)})
}

type profileRequest struct {
	Name string `json:"name"`
}

// handleSaveProfile updates the authenticated user's display name.
func (s *Server) handleSaveProfile(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		s.respondError(c, http.StatusForbidden, fmt.Errorf("profile requires an account"))
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := s.store.SaveProfile(c.Request.Context(), userID, req.Name); err != nil {
		s.respondError(c, statusForStoreError(err), err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "saved"})
}
