package leaves

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockRepository struct {
	leaves     []Leave
	respondRes *Leave
	respondErr error
}

func (m *mockRepository) List(ctx context.Context) ([]Leave, error) {
	return m.leaves, nil
}

func (m *mockRepository) ListByApplicant(ctx context.Context, applicantID string) ([]Leave, error) {
	out := []Leave{}
	for _, l := range m.leaves {
		if l.ApplicantID == applicantID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*Leave, error) {
	for _, l := range m.leaves {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, ErrLeaveNotFound
}

func (m *mockRepository) Create(ctx context.Context, applicantID, applicantRole, reason string, fromDate, toDate time.Time) (*Leave, error) {
	return &Leave{
		ID:            "leave-1",
		ApplicantID:   applicantID,
		ApplicantRole: applicantRole,
		Reason:        reason,
		FromDate:      fromDate,
		ToDate:        toDate,
		Status:        StatusPending,
	}, nil
}

func (m *mockRepository) Respond(ctx context.Context, id, status, response, responderID string) (*Leave, error) {
	return m.respondRes, m.respondErr
}

func (m *mockRepository) DeleteOwnPending(ctx context.Context, id, applicantID string) error {
	return nil
}

type mockMailer struct {
	sent []string
	err  error
}

func (m *mockMailer) SendNotification(to, subject, body string) error {
	m.sent = append(m.sent, to)
	return m.err
}

func TestViewAllPartitionsByStatus(t *testing.T) {
	repo := &mockRepository{leaves: []Leave{
		{ID: "1", Status: StatusPending},
		{ID: "2", Status: StatusApproved},
		{ID: "3", Status: StatusRejected},
		{ID: "4", Status: StatusPending},
	}}
	svc := NewService(repo, nil, nil)

	view, err := svc.ViewAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(view.Leaves) != 4 {
		t.Errorf("expected 4 leaves, got %d", len(view.Leaves))
	}
	if len(view.Pending) != 2 {
		t.Errorf("expected 2 pending, got %d", len(view.Pending))
	}
	if len(view.Approved) != 1 {
		t.Errorf("expected 1 approved, got %d", len(view.Approved))
	}
	if len(view.Rejected) != 1 {
		t.Errorf("expected 1 rejected, got %d", len(view.Rejected))
	}
}

func TestSubmitRejectsInvertedDateRange(t *testing.T) {
	svc := NewService(&mockRepository{}, nil, nil)

	_, err := svc.Submit(context.Background(), "user-1", "student", SubmitLeaveRequest{
		Reason:   "family event",
		FromDate: "2026-09-10",
		ToDate:   "2026-09-01",
	})
	if err == nil {
		t.Fatal("expected error for to_date before from_date")
	}
}

func TestRespondNotifiesApplicant(t *testing.T) {
	repo := &mockRepository{respondRes: &Leave{
		ID:             "leave-1",
		ApplicantEmail: "student@school.edu",
		Status:         StatusApproved,
		FromDate:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ToDate:         time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
	}}
	mailer := &mockMailer{}
	svc := NewService(repo, nil, mailer)

	leave, err := svc.Respond(context.Background(), "leave-1", "admin-1", RespondLeaveRequest{Status: StatusApproved})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if leave.Status != StatusApproved {
		t.Errorf("expected status approved, got %s", leave.Status)
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "student@school.edu" {
		t.Errorf("expected one notification to applicant, got %v", mailer.sent)
	}
}

func TestRespondSucceedsWhenNotificationFails(t *testing.T) {
	repo := &mockRepository{respondRes: &Leave{
		ID:             "leave-1",
		ApplicantEmail: "student@school.edu",
		Status:         StatusRejected,
	}}
	mailer := &mockMailer{err: errors.New("smtp unreachable")}
	svc := NewService(repo, nil, mailer)

	leave, err := svc.Respond(context.Background(), "leave-1", "admin-1", RespondLeaveRequest{Status: StatusRejected})
	if err != nil {
		t.Fatalf("decision should not fail on notification error: %v", err)
	}
	if leave.Status != StatusRejected {
		t.Errorf("expected status rejected, got %s", leave.Status)
	}
}

func TestRespondAlreadyDecided(t *testing.T) {
	repo := &mockRepository{respondErr: ErrAlreadyDecided}
	svc := NewService(repo, nil, &mockMailer{})

	_, err := svc.Respond(context.Background(), "leave-1", "admin-1", RespondLeaveRequest{Status: StatusApproved})
	if !errors.Is(err, ErrAlreadyDecided) {
		t.Fatalf("expected ErrAlreadyDecided, got %v", err)
	}
}
