package server

import (
	"log/slog"
	"net/http"
	"time"

	"classmate/internal/profile"
	"classmate/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionAuthMiddleware validates the session cookie and injects the user's
// id, email and resolved role into the request context
func SessionAuthMiddleware(sessionMgr session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie("session_id")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized: no session cookie",
			})
			return
		}

		sess, err := sessionMgr.Get(c.Request.Context(), sessionID)
		if err != nil {
			slog.Warn("Invalid session",
				"session_id", sessionID,
				"error", err.Error(),
				"request_id", c.GetString("request_id"),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized: invalid session",
			})
			return
		}

		if time.Now().After(sess.ExpiresAt) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized: session expired",
			})
			return
		}

		c.Set("user_id", sess.UserID)
		c.Set("email", sess.Email)
		c.Set("role", string(sess.Role))

		c.Next()
	}
}

// RequireRoles rejects requests whose session role is not in the allowed set.
// It must run after SessionAuthMiddleware.
func RequireRoles(allowed ...profile.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := profile.Role(c.GetString("role"))
		if !role.Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
			})
			return
		}

		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "forbidden: insufficient role",
		})
	}
}

// RequestIDMiddleware tags every request with a unique id for log correlation
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()

		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()
	}
}

// LoggingMiddleware logs every request with structured attributes
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rw := newResponseWriter(c.Writer)
		c.Writer = rw

		c.Next()

		latency := time.Since(start)

		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		status := c.Writer.Status()

		attrs := []any{
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", float64(latency.Milliseconds()),
			"client_ip", c.ClientIP(),
			"response_size", rw.Size(),
		}

		if query != "" {
			attrs = append(attrs, "query", query)
		}
		if userID, exists := c.Get("user_id"); exists {
			attrs = append(attrs, "user_id", userID)
		}
		if role, exists := c.Get("role"); exists {
			attrs = append(attrs, "role", role)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			slog.Error("Request failed - server error", attrs...)
		case status >= 400:
			slog.Warn("Request failed - client error", attrs...)
		default:
			slog.Info("Request completed", attrs...)
		}
	}
}
