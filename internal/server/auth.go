package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studentsathi/internal/planner"
	"studentsathi/internal/storage/guest"
	"studentsathi/internal/storage/kv"
)

const (
	ctxUserID = "userID"
	ctxScope  = "sessionScope"

	guestSessionHeader = "X-Guest-Session"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// handleRegister creates an account and issues a session token.
func (s *Server) handleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("email and password are required"))
		return
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}

	user, err := s.store.CreateUser(c.Request.Context(), req.Email, hash, req.Name)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"token": token, "user": user})
}

// handleLogin verifies credentials and issues a session token.
func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := s.store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil || !s.hasher.Verify(req.Password, user.PasswordHash) {
		s.respondError(c, http.StatusUnauthorized, fmt.Errorf("invalid credentials"))
		return
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"token": token, "user": user})
}

// handleGuestSession issues a guest session id. The client echoes it back
// in the X-Guest-Session header to keep its local task namespace.
func (s *Server) handleGuestSession(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"session": uuid.NewString()})
}

// resolveSession binds the request to exactly one task source: the
// authenticated store when a valid bearer token is present, the guest store
// when a guest session id is supplied.
func (s *Server) resolveSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			claims, err := s.tokens.Validate(token)
			if err != nil {
				s.respondError(c, http.StatusUnauthorized, err)
				c.Abort()
				return
			}
			c.Set(ctxUserID, claims.UserID)
			c.Set(ctxScope, fmt.Sprintf("user:%d", claims.UserID))
			c.Next()
			return
		}

		if session := c.GetHeader(guestSessionHeader); session != "" {
			if _, err := uuid.Parse(session); err != nil {
				s.respondError(c, http.StatusBadRequest, fmt.Errorf("invalid guest session"))
				c.Abort()
				return
			}
			c.Set(ctxScope, "guest:"+session)
			c.Next()
			return
		}

		s.respondError(c, http.StatusUnauthorized, errors.New("missing bearer token or guest session"))
		c.Abort()
	}
}

// requireAdmin authenticates the bearer token and checks the admin flag.
func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			s.respondError(c, http.StatusUnauthorized, errors.New("missing bearer token"))
			c.Abort()
			return
		}
		claims, err := s.tokens.Validate(token)
		if err != nil {
			s.respondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}
		user, err := s.store.GetUser(c.Request.Context(), claims.UserID)
		if err != nil || !user.IsAdmin {
			s.respondError(c, http.StatusForbidden, errors.New("admin access required"))
			c.Abort()
			return
		}
		c.Set(ctxUserID, user.ID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// authedUserID returns the authenticated user id, false for guest sessions.
func authedUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// controller returns the planner controller for the request's session,
// creating it on first use. Each scope gets its own preference namespace
// and, for guests, its own task namespace.
func (s *Server) controller(c *gin.Context) *planner.Controller {
	scope := c.GetString(ctxScope)
	if cached, ok := s.controllers.Load(scope); ok {
		return cached.(*planner.Controller)
	}

	ns := kv.Namespaced(s.local, scope+":")
	prefs := planner.NewPrefs(ns, s.logger)

	var source planner.TaskSource
	if userID, ok := authedUserID(c); ok {
		source = s.store.ForUser(userID)
	} else {
		source = guest.New(ns, s.logger)
	}

	ctrl := planner.NewController(source, prefs, s.logger.With(slog.String("scope", scope)))
	cached, _ := s.controllers.LoadOrStore(scope, ctrl)
	return cached.(*planner.Controller)
}
