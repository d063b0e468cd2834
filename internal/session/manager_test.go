package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"classmate/internal/profile"
)

// In-memory store standing in for Redis
type fakeStore struct {
	data map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (s *fakeStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.data[key] = value
	return nil
}

func (s *fakeStore) Get(ctx context.Context, key string) (string, error) {
	v, ok := s.data[key]
	if !ok {
		return "", errors.New("key not found")
	}
	return v, nil
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func (s *fakeStore) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := s.data[key]
	return ok, nil
}

func (s *fakeStore) Health(ctx context.Context) error {
	return nil
}

func TestManager_CreateAndGet(t *testing.T) {
	mgr := NewManager(newFakeStore())
	ctx := context.Background()

	id, err := mgr.Create(ctx, "user-1", "a@x.com", profile.RoleAdmin, 3600)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty session id")
	}

	sess, err := mgr.Get(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if sess.UserID != "user-1" {
		t.Errorf("expected user-1, got %s", sess.UserID)
	}
	if sess.Role != profile.RoleAdmin {
		t.Errorf("expected role admin, got %s", sess.Role)
	}
	if sess.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", sess.Email)
	}
}

func TestManager_GetUnknownSession(t *testing.T) {
	mgr := NewManager(newFakeStore())

	_, err := mgr.Get(context.Background(), "missing")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestManager_ExpiredSessionIsRejected(t *testing.T) {
	store := newFakeStore()
	mgr := NewManager(store)
	ctx := context.Background()

	// maxAge 0 yields an already-expired session even though the fake store
	// never evicts
	id, err := mgr.Create(ctx, "user-2", "t@x.com", profile.RoleTeacher, 0)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	_, err = mgr.Get(ctx, id)
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	// Expired sessions are removed on read
	if _, ok := store.data[sessionKey(id)]; ok {
		t.Error("expected expired session to be deleted from the store")
	}
}

func TestManager_DeleteIsIdempotent(t *testing.T) {
	mgr := NewManager(newFakeStore())
	ctx := context.Background()

	id, err := mgr.Create(ctx, "user-3", "s@x.com", profile.RoleStudent, 3600)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := mgr.Delete(ctx, id); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := mgr.Delete(ctx, id); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}

	if _, err := mgr.Get(ctx, id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}
