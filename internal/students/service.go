// Package students manages student profiles: the directory the admin
// maintains and the partition the role resolver probes for the student role.
package students

import (
	"context"
	"fmt"
	"strings"

	"classmate/internal/identity"
)

// Service handles business logic for students
type Service struct {
	repo *Repository
	idp  identity.Provider
}

// NewService creates a new students service
func NewService(repo *Repository, idp identity.Provider) *Service {
	return &Service{repo: repo, idp: idp}
}

// List retrieves students, optionally filtered by classroom
func (s *Service) List(ctx context.Context, classroomID string) ([]Student, error) {
	return s.repo.List(ctx, classroomID)
}

// Get retrieves a single student
func (s *Service) Get(ctx context.Context, id string) (*Student, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByAccount retrieves the student profile for a login account
func (s *Service) GetByAccount(ctx context.Context, accountID string) (*Student, error) {
	return s.repo.GetByAccountID(ctx, accountID)
}

// Create enrolls a student. When a password is provided a login account is
// created first and linked, so the student can sign in and resolve to the
// student role.
func (s *Service) Create(ctx context.Context, req CreateStudentRequest) (*Student, error) {
	var accountID *string
	if req.Password != "" {
		account, err := s.idp.CreateAccount(ctx, req.Email, req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to create student account: %w", err)
		}
		accountID = &account.ID
	}

	return s.repo.Create(ctx, accountID, strings.TrimSpace(req.Name), req.Email, req.RollNumber, req.ClassroomID)
}

// Update modifies a student profile
func (s *Service) Update(ctx context.Context, id string, req UpdateStudentRequest) (*Student, error) {
	return s.repo.Update(ctx, id, req.Name, req.RollNumber, req.ClassroomID)
}

// Delete removes a student profile. The linked account, if any, survives but
// can no longer resolve the student role once the partition row is gone.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
