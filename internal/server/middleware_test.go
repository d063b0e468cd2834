package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"classmate/internal/profile"
	"classmate/internal/session"
)

type mockSessionManager struct {
	sessions map[string]*session.Session
}

func (m *mockSessionManager) Create(ctx context.Context, userID, email string, role profile.Role, maxAge int) (string, error) {
	return "", nil
}

func (m *mockSessionManager) Get(ctx context.Context, sessionID string) (*session.Session, error) {
	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return sess, nil
}

func (m *mockSessionManager) Delete(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

func (m *mockSessionManager) Validate(ctx context.Context, sessionID string) (bool, error) {
	_, ok := m.sessions[sessionID]
	return ok, nil
}

func newTestRouter(mgr session.Manager, allowed ...profile.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	group := r.Group("/", SessionAuthMiddleware(mgr))
	if len(allowed) > 0 {
		group.Use(RequireRoles(allowed...))
	}
	group.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"email":   c.GetString("email"),
			"role":    c.GetString("role"),
		})
	})

	return r
}

func TestSessionAuthMiddlewareInjectsIdentity(t *testing.T) {
	mgr := &mockSessionManager{sessions: map[string]*session.Session{
		"sess-1": {
			ID:        "sess-1",
			UserID:    "user-1",
			Email:     "teacher@school.edu",
			Role:      profile.RoleTeacher,
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}}
	router := newTestRouter(mgr)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{"user-1", "teacher@school.edu", "teacher"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected response to contain %q, got %s", want, body)
		}
	}
}

func TestSessionAuthMiddlewareRejectsMissingCookie(t *testing.T) {
	router := newTestRouter(&mockSessionManager{sessions: map[string]*session.Session{}})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestSessionAuthMiddlewareRejectsUnknownSession(t *testing.T) {
	router := newTestRouter(&mockSessionManager{sessions: map[string]*session.Session{}})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "nope"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestSessionAuthMiddlewareRejectsExpiredSession(t *testing.T) {
	mgr := &mockSessionManager{sessions: map[string]*session.Session{
		"sess-old": {
			ID:        "sess-old",
			UserID:    "user-1",
			Role:      profile.RoleStudent,
			ExpiresAt: time.Now().Add(-time.Minute),
		},
	}}
	router := newTestRouter(mgr)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-old"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestRequireRolesForbidsWrongRole(t *testing.T) {
	mgr := &mockSessionManager{sessions: map[string]*session.Session{
		"sess-student": {
			ID:        "sess-student",
			UserID:    "user-2",
			Role:      profile.RoleStudent,
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}}
	router := newTestRouter(mgr, profile.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-student"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	mgr := &mockSessionManager{sessions: map[string]*session.Session{
		"sess-admin": {
			ID:        "sess-admin",
			UserID:    "user-3",
			Role:      profile.RoleAdmin,
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}}
	router := newTestRouter(mgr, profile.RoleAdmin, profile.RoleTeacher)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-admin"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
