package leaves

import (
	"context"
	"fmt"
	"log"
	"time"

	"classmate/internal/email"
	"classmate/internal/kafka"
)

// Service handles business logic for leave applications
type Service interface {
	Submit(ctx context.Context, applicantID, applicantRole string, req SubmitLeaveRequest) (*Leave, error)
	ListMine(ctx context.Context, applicantID string) ([]Leave, error)
	ViewAll(ctx context.Context) (*LeavesView, error)
	Respond(ctx context.Context, id, responderID string, req RespondLeaveRequest) (*Leave, error)
	DeleteOwnPending(ctx context.Context, id, applicantID string) error
}

type service struct {
	repo     Repository
	producer *kafka.Producer
	mailer   email.Sender
}

// NewService creates a leave application service. producer may be nil, in
// which case decision notifications go out through the mailer directly.
func NewService(repo Repository, producer *kafka.Producer, mailer email.Sender) Service {
	return &service{repo: repo, producer: producer, mailer: mailer}
}

func (s *service) Submit(ctx context.Context, applicantID, applicantRole string, req SubmitLeaveRequest) (*Leave, error) {
	fromDate, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		return nil, fmt.Errorf("invalid from_date: %w", err)
	}
	toDate, err := time.Parse("2006-01-02", req.ToDate)
	if err != nil {
		return nil, fmt.Errorf("invalid to_date: %w", err)
	}
	if toDate.Before(fromDate) {
		return nil, fmt.Errorf("to_date must not be before from_date")
	}

	return s.repo.Create(ctx, applicantID, applicantRole, req.Reason, fromDate, toDate)
}

func (s *service) ListMine(ctx context.Context, applicantID string) ([]Leave, error) {
	return s.repo.ListByApplicant(ctx, applicantID)
}

func (s *service) ViewAll(ctx context.Context) (*LeavesView, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return partition(all), nil
}

func (s *service) Respond(ctx context.Context, id, responderID string, req RespondLeaveRequest) (*Leave, error) {
	leave, err := s.repo.Respond(ctx, id, req.Status, req.Response, responderID)
	if err != nil {
		return nil, err
	}

	// Notification failures never fail the decision itself
	s.notifyApplicant(leave)

	return leave, nil
}

func (s *service) DeleteOwnPending(ctx context.Context, id, applicantID string) error {
	return s.repo.DeleteOwnPending(ctx, id, applicantID)
}

func (s *service) notifyApplicant(leave *Leave) {
	if leave.ApplicantEmail == "" {
		return
	}

	subject := fmt.Sprintf("Leave application %s", leave.Status)
	body := fmt.Sprintf("Your leave application from %s to %s has been %s.",
		leave.FromDate.Format("2006-01-02"), leave.ToDate.Format("2006-01-02"), leave.Status)
	if leave.Response != "" {
		body += " Response: " + leave.Response
	}

	if s.producer != nil {
		event := kafka.NotificationEvent{
			Type:      "leave_decision",
			To:        leave.ApplicantEmail,
			Subject:   subject,
			Body:      body,
			Timestamp: time.Now(),
		}
		if err := s.producer.PublishNotification(event); err != nil {
			log.Printf("Failed to publish leave decision notification for %s: %v", leave.ID, err)
		}
		return
	}

	if s.mailer != nil {
		if err := s.mailer.SendNotification(leave.ApplicantEmail, subject, body); err != nil {
			log.Printf("Failed to send leave decision notification for %s: %v", leave.ID, err)
		}
	}
}

func partition(all []Leave) *LeavesView {
	view := &LeavesView{
		Leaves:   all,
		Pending:  []Leave{},
		Approved: []Leave{},
		Rejected: []Leave{},
	}
	for _, leave := range all {
		switch leave.Status {
		case StatusPending:
			view.Pending = append(view.Pending, leave)
		case StatusApproved:
			view.Approved = append(view.Approved, leave)
		case StatusRejected:
			view.Rejected = append(view.Rejected, leave)
		}
	}
	return view
}
