package complaints

import (
	"context"
	"log"
	"time"

	"classmate/internal/email"
	"classmate/internal/kafka"
)

// Service handles business logic for complaints
type Service interface {
	File(ctx context.Context, authorID, authorRole string, req FileComplaintRequest) (*Complaint, error)
	ListMine(ctx context.Context, authorID string) ([]Complaint, error)
	ViewAll(ctx context.Context) (*ComplaintsView, error)
	Resolve(ctx context.Context, id, resolverID string, req ResolveComplaintRequest) (*Complaint, error)
	DeleteOwnPending(ctx context.Context, id, authorID string) error
}

type service struct {
	repo     Repository
	producer *kafka.Producer
	mailer   email.Sender
}

// NewService creates a complaint service. producer may be nil, in which
// case resolution notifications go out through the mailer directly.
func NewService(repo Repository, producer *kafka.Producer, mailer email.Sender) Service {
	return &service{repo: repo, producer: producer, mailer: mailer}
}

func (s *service) File(ctx context.Context, authorID, authorRole string, req FileComplaintRequest) (*Complaint, error) {
	return s.repo.Create(ctx, authorID, authorRole, req.Subject, req.Body)
}

func (s *service) ListMine(ctx context.Context, authorID string) ([]Complaint, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *service) ViewAll(ctx context.Context) (*ComplaintsView, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return partition(all), nil
}

func (s *service) Resolve(ctx context.Context, id, resolverID string, req ResolveComplaintRequest) (*Complaint, error) {
	complaint, err := s.repo.Resolve(ctx, id, req.Response, resolverID)
	if err != nil {
		return nil, err
	}

	// Notification failures never fail the resolution itself
	s.notifyAuthor(complaint)

	return complaint, nil
}

func (s *service) DeleteOwnPending(ctx context.Context, id, authorID string) error {
	return s.repo.DeleteOwnPending(ctx, id, authorID)
}

func (s *service) notifyAuthor(complaint *Complaint) {
	if complaint.AuthorEmail == "" {
		return
	}

	subject := "Complaint resolved: " + complaint.Subject
	body := "Your complaint has been resolved. Response: " + complaint.Response

	if s.producer != nil {
		event := kafka.NotificationEvent{
			Type:      "complaint_resolution",
			To:        complaint.AuthorEmail,
			Subject:   subject,
			Body:      body,
			Timestamp: time.Now(),
		}
		if err := s.producer.PublishNotification(event); err != nil {
			log.Printf("Failed to publish complaint resolution notification for %s: %v", complaint.ID, err)
		}
		return
	}

	if s.mailer != nil {
		if err := s.mailer.SendNotification(complaint.AuthorEmail, subject, body); err != nil {
			log.Printf("Failed to send complaint resolution notification for %s: %v", complaint.ID, err)
		}
	}
}

func partition(all []Complaint) *ComplaintsView {
	view := &ComplaintsView{
		Complaints: all,
		Pending:    []Complaint{},
		Resolved:   []Complaint{},
	}
	for _, complaint := range all {
		switch complaint.Status {
		case StatusPending:
			view.Pending = append(view.Pending, complaint)
		case StatusResolved:
			view.Resolved = append(view.Resolved, complaint)
		}
	}
	return view
}
