package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studentsathi/internal/auth"
	"studentsathi/internal/storage/kv"
	"studentsathi/internal/storage/sqlite"
)

// Server provides the HTTP handlers for the StudentSathi backend.
type Server struct {
	engine    *gin.Engine
	store     *sqlite.Store
	local     kv.Store
	tokens    *auth.TokenManager
	hasher    *auth.PasswordHasher
	logger    *slog.Logger
	staticDir string

	// Per-session planner controllers and assistant conversations, keyed
	// by session scope. Controllers carry the add-submission guard, so
	// they must outlive a single request.
	controllers sync.Map
	assistants  sync.Map
}

// New constructs the HTTP server with routes and middleware configured.
func New(store *sqlite.Store, local kv.Store, tokens *auth.TokenManager, logger *slog.Logger, staticDir string) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/api"))
	router.Use(requestID())

	srv := &Server{
		engine:    router,
		store:     store,
		local:     local,
		tokens:    tokens,
		hasher:    auth.NewPasswordHasher(),
		logger:    logger,
		staticDir: staticDir,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// requestID tags every request with an id for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// registerRoutes wires all API and static handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)

		api.POST("/auth/register", s.handleRegister)
		api.POST("/auth/login", s.handleLogin)
		api.GET("/session/guest", s.handleGuestSession)

		api.POST("/feature-requests", s.handleSubmitFeatureRequest)
		api.GET("/announcements", s.handleListAnnouncements)
		api.POST("/announcements", s.requireAdmin(), s.handleCreateAnnouncement)
		api.DELETE("/announcements/:id", s.requireAdmin(), s.handleDeleteAnnouncement)

		api.POST("/letters/leave", s.handleLeaveLetter)
		api.POST("/letters/resume", s.handleResume)
		api.POST("/notes/clean", s.handleCleanNotes)

		session := api.Group("", s.resolveSession())
		{
			session.GET("/tasks", s.handleListTasks)
			session.POST("/tasks", s.handleAddTask)
			session.POST("/tasks/:id/toggle", s.handleToggleTask)
			session.DELETE("/tasks/:id", s.handleDeleteTask)
			session.DELETE("/tasks", s.handleClearTasks)
			session.GET("/tasks/count", s.handleTaskCount)
			session.POST("/tasks/reorder", s.handleReorderTasks)
			session.POST("/tasks/undo", s.handleUndoTask)

			session.GET("/planner", s.handlePlanner)
			session.GET("/preferences", s.handleGetPreferences)
			session.PUT("/preferences", s.handleSetPreferences)

			session.POST("/assistant/chat", s.handleAssistantChat)
			session.POST("/profile", s.handleSaveProfile)
		}
	}

	s.mountStatic()
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseID converts a path parameter to int64 with error handling.
func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
		return 0, false
	}
	return id, true
}

// respondError logs the error and returns a JSON payload.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	if err != nil {
		s.logger.Error("request failed",
			slog.String("path", c.FullPath()),
			slog.String("request_id", c.GetString("requestID")),
			slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondSuccess wraps a payload in a JSON envelope for consistency.
func respondSuccess(c *gin.Context, status int, payload any) {
	if payload == nil {
		c.Status(status)
		return
	}
	c.JSON(status, payload)
}
