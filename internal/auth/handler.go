package auth

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"

	"classmate/internal/identity"
	"classmate/internal/profile"
	"classmate/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the session cookie
const SessionCookie = "session_id"

// Handler handles authentication-related HTTP requests
type Handler struct {
	service    Service
	sessionMgr session.Manager
}

// NewHandler creates a new authentication handler
func NewHandler(service Service, sessionMgr session.Manager) *Handler {
	return &Handler{
		service:    service,
		sessionMgr: sessionMgr,
	}
}

// Login handles POST /auth/login. On success it creates a session carrying
// the resolved role and sets the session cookie; on any failure the caller
// stays logged out.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resolved, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		log.Printf("Login failed for %s: %v", req.Email, err)

		var lookupErr *LookupError
		switch {
		case errors.Is(err, identity.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": identity.ErrInvalidCredentials.Error()})
		case errors.Is(err, identity.ErrAccountDisabled):
			c.JSON(http.StatusUnauthorized, gin.H{"error": identity.ErrAccountDisabled.Error()})
		case errors.Is(err, ErrProfileNotFound):
			c.JSON(http.StatusForbidden, gin.H{"error": ErrProfileNotFound.Error()})
		case errors.As(err, &lookupErr):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "profile lookup failed, try again later"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}

	maxAge := sessionMaxAge()

	sessionID, err := h.sessionMgr.Create(c.Request.Context(), resolved.UserID, resolved.Email, resolved.Role, maxAge)
	if err != nil {
		log.Printf("Failed to create session for user %s: %v", resolved.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	secure := os.Getenv("APP_ENV") == "production"
	c.SetCookie(SessionCookie, sessionID, maxAge, "/", "", secure, true)

	c.JSON(http.StatusOK, LoginResponse{
		UserID:    resolved.UserID,
		Email:     resolved.Email,
		Role:      resolved.Role,
		SessionID: sessionID,
	})
}

// Logout handles POST /auth/logout. Logging out twice behaves the same as
// logging out once.
func (h *Handler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(SessionCookie)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "already logged out"})
		return
	}

	if err := h.sessionMgr.Delete(c.Request.Context(), sessionID); err != nil {
		log.Printf("Failed to delete session %s: %v", sessionID, err)
	}

	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

// Me handles GET /auth/me and returns the session's user
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		UserID: userID,
		Email:  c.GetString("email"),
		Role:   sessionRole(c),
	})
}

func sessionRole(c *gin.Context) profile.Role {
	return profile.Role(c.GetString("role"))
}

func sessionMaxAge() int {
	const defaultSessionMaxAge = 3600 // 1 hour
	if v := os.Getenv("SESSION_MAX_AGE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return defaultSessionMaxAge
}
