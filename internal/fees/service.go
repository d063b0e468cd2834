// Package fees manages fee records and their paid/unpaid views.
package fees

import (
	"context"
	"fmt"
	"time"
)

// Service handles business logic for fee records
type Service struct {
	repo *Repository
}

// NewService creates a new fees service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// View fetches the fee list once and partitions it into paid/unpaid
// sub-views in memory
func (s *Service) View(ctx context.Context, studentID string) (*FeesView, error) {
	fees, err := s.repo.List(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return partition(fees), nil
}

// ViewForAccount returns the fee view of the student linked to a login
// account. Used when a student asks for their own fees.
func (s *Service) ViewForAccount(ctx context.Context, accountID string) (*FeesView, error) {
	studentID, err := s.repo.StudentIDForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.View(ctx, studentID)
}

// Create creates a fee record
func (s *Service) Create(ctx context.Context, req CreateFeeRequest) (*Fee, error) {
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid due date: %w", err)
	}
	return s.repo.Create(ctx, req.StudentID, req.Title, req.Amount, dueDate)
}

// Update updates a fee record
func (s *Service) Update(ctx context.Context, id string, req UpdateFeeRequest) (*Fee, error) {
	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid due date: %w", err)
		}
		dueDate = &parsed
	}
	return s.repo.Update(ctx, id, req.Title, req.Amount, dueDate)
}

// MarkPaid marks a fee record as paid
func (s *Service) MarkPaid(ctx context.Context, id string) (*Fee, error) {
	return s.repo.MarkPaid(ctx, id)
}

// Delete removes a fee record
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func partition(fees []Fee) *FeesView {
	view := &FeesView{
		Fees:   fees,
		Paid:   []Fee{},
		Unpaid: []Fee{},
	}
	for _, f := range fees {
		if f.Status == StatusPaid {
			view.Paid = append(view.Paid, f)
		} else {
			view.Unpaid = append(view.Unpaid, f)
		}
	}
	return view
}
