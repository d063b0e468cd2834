package auth

import (
	"context"
	"errors"
	"testing"

	"classmate/internal/identity"
	"classmate/internal/profile"
)

// Mock identity provider for testing
type mockProvider struct {
	signInFunc func(ctx context.Context, email, password string) (string, error)
}

func (m *mockProvider) SignIn(ctx context.Context, email, password string) (string, error) {
	if m.signInFunc != nil {
		return m.signInFunc(ctx, email, password)
	}
	return "", identity.ErrInvalidCredentials
}

func (m *mockProvider) CreateAccount(ctx context.Context, email, password string) (*identity.Account, error) {
	return nil, errors.New("not implemented")
}

func (m *mockProvider) GetAccountByEmail(ctx context.Context, email string) (*identity.Account, error) {
	return nil, errors.New("not implemented")
}

// Mock directory that records every probe in order
type mockDirectory struct {
	probed     []string
	existsFunc func(partition, accountID string) (bool, error)
}

func (m *mockDirectory) Exists(ctx context.Context, partition, accountID string) (bool, error) {
	m.probed = append(m.probed, partition)
	if m.existsFunc != nil {
		return m.existsFunc(partition, accountID)
	}
	return false, nil
}

func signInAs(uid string) *mockProvider {
	return &mockProvider{
		signInFunc: func(ctx context.Context, email, password string) (string, error) {
			return uid, nil
		},
	}
}

func memberOf(partition string) func(string, string) (bool, error) {
	return func(p, accountID string) (bool, error) {
		return p == partition, nil
	}
}

func TestLogin_AdminResolvesWithOneProbe(t *testing.T) {
	dir := &mockDirectory{existsFunc: memberOf("admins")}
	svc := NewService(signInAs("uid-1"), dir)

	resolved, err := svc.Login(context.Background(), "a@x.com", "pw123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Role != profile.RoleAdmin {
		t.Errorf("expected role admin, got %s", resolved.Role)
	}
	if resolved.UserID != "uid-1" {
		t.Errorf("expected user id uid-1, got %s", resolved.UserID)
	}
	if len(dir.probed) != 1 || dir.probed[0] != "admins" {
		t.Errorf("expected exactly one probe of admins, got %v", dir.probed)
	}
}

func TestLogin_TeacherResolvesWithTwoProbes(t *testing.T) {
	dir := &mockDirectory{existsFunc: memberOf("teachers")}
	svc := NewService(signInAs("uid-2"), dir)

	resolved, err := svc.Login(context.Background(), "t@x.com", "pw123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Role != profile.RoleTeacher {
		t.Errorf("expected role teacher, got %s", resolved.Role)
	}
	want := []string{"admins", "teachers"}
	if len(dir.probed) != len(want) {
		t.Fatalf("expected probes %v, got %v", want, dir.probed)
	}
	for i := range want {
		if dir.probed[i] != want[i] {
			t.Errorf("probe %d: expected %s, got %s", i, want[i], dir.probed[i])
		}
	}
}

func TestLogin_StudentResolvesWithThreeProbes(t *testing.T) {
	dir := &mockDirectory{existsFunc: memberOf("students")}
	svc := NewService(signInAs("uid-3"), dir)

	resolved, err := svc.Login(context.Background(), "s@x.com", "pw123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Role != profile.RoleStudent {
		t.Errorf("expected role student, got %s", resolved.Role)
	}
	want := []string{"admins", "teachers", "students"}
	if len(dir.probed) != len(want) {
		t.Fatalf("expected probes %v, got %v", want, dir.probed)
	}
	for i := range want {
		if dir.probed[i] != want[i] {
			t.Errorf("probe %d: expected %s, got %s", i, want[i], dir.probed[i])
		}
	}
}

func TestLogin_NoProfileAfterThreeProbes(t *testing.T) {
	dir := &mockDirectory{}
	svc := NewService(signInAs("uid-4"), dir)

	_, err := svc.Login(context.Background(), "a@x.com", "pw123456")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if err.Error() != "no profile found" {
		t.Errorf("expected message %q, got %q", "no profile found", err.Error())
	}
	if len(dir.probed) != 3 {
		t.Errorf("expected exactly three probes, got %v", dir.probed)
	}
}

func TestLogin_LookupErrorShortCircuits(t *testing.T) {
	netErr := errors.New("connection reset")
	dir := &mockDirectory{
		existsFunc: func(partition, accountID string) (bool, error) {
			if partition == "teachers" {
				return false, netErr
			}
			return false, nil
		},
	}
	svc := NewService(signInAs("uid-5"), dir)

	_, err := svc.Login(context.Background(), "t@x.com", "pw123456")

	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected LookupError, got %v", err)
	}
	if lookupErr.Partition != "teachers" {
		t.Errorf("expected failing partition teachers, got %s", lookupErr.Partition)
	}
	if !errors.Is(err, netErr) {
		t.Errorf("expected wrapped cause to be reachable via errors.Is")
	}
	// The student partition must never be queried after a lookup failure
	for _, p := range dir.probed {
		if p == "students" {
			t.Errorf("students partition was probed after lookup error: %v", dir.probed)
		}
	}
	want := []string{"admins", "teachers"}
	if len(dir.probed) != len(want) {
		t.Errorf("expected probes %v, got %v", want, dir.probed)
	}
}

func TestLogin_AuthFailureSkipsAllProbes(t *testing.T) {
	dir := &mockDirectory{}
	svc := NewService(&mockProvider{}, dir)

	_, err := svc.Login(context.Background(), "a@x.com", "wrongpass")
	if !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(dir.probed) != 0 {
		t.Errorf("expected no partition probes on auth failure, got %v", dir.probed)
	}
}

func TestLogin_DuplicatePartitionsPickHighestPrivilege(t *testing.T) {
	// Present in both teachers and students: the fixed probe order must
	// resolve teacher, never student.
	dir := &mockDirectory{
		existsFunc: func(partition, accountID string) (bool, error) {
			return partition == "teachers" || partition == "students", nil
		},
	}
	svc := NewService(signInAs("uid-6"), dir)

	resolved, err := svc.Login(context.Background(), "dup@x.com", "pw123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Role != profile.RoleTeacher {
		t.Errorf("expected teacher for duplicate membership, got %s", resolved.Role)
	}
}
