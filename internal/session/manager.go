// Package session provides session management for the classmate service.
// Sessions are stored in Redis with TTL-based expiration and carry the user's
// resolved role so that every request can be authorized without re-resolving.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"classmate/internal/profile"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session has expired
	ErrSessionExpired = errors.New("session expired")
	// ErrInvalidSession is returned when session data is invalid
	ErrInvalidSession = errors.New("invalid session")
)

// Manager defines the interface for session management operations
type Manager interface {
	Create(ctx context.Context, userID, email string, role profile.Role, maxAge int) (string, error)
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
	Validate(ctx context.Context, sessionID string) (bool, error)
}

// manager implements Manager interface
type manager struct {
	store Store
}

// NewManager creates a new session manager
func NewManager(store Store) Manager {
	return &manager{
		store: store,
	}
}

// Create creates a new session and returns the session ID. The session is
// written as a single atomic value; a login either fully establishes a session
// or leaves no trace.
func (m *manager) Create(ctx context.Context, userID, email string, role profile.Role, maxAge int) (string, error) {
	sessionID := uuid.New().String()

	now := time.Now()
	sess := &Session{
		ID:        sessionID,
		UserID:    userID,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(maxAge) * time.Second),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	key := sessionKey(sessionID)
	ttl := time.Duration(maxAge) * time.Second

	if err := m.store.Set(ctx, key, string(data), ttl); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return sessionID, nil
}

// Get retrieves a session by ID
func (m *manager) Get(ctx context.Context, sessionID string) (*Session, error) {
	key := sessionKey(sessionID)

	data, err := m.store.Get(ctx, key)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, ErrInvalidSession
	}

	// Redis TTL should have evicted it already, but trust the timestamp
	if time.Now().After(sess.ExpiresAt) {
		m.store.Delete(ctx, key)
		return nil, ErrSessionExpired
	}

	return &sess, nil
}

// Delete removes a session. Deleting a session that does not exist is not an
// error, so logout is idempotent.
func (m *manager) Delete(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionKey(sessionID))
}

// Validate checks if a session exists and is valid
func (m *manager) Validate(ctx context.Context, sessionID string) (bool, error) {
	sess, err := m.Get(ctx, sessionID)
	if err != nil {
		return false, err
	}

	return sess != nil, nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}
