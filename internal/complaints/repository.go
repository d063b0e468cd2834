package complaints

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"classmate/internal/database"
)

var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrAlreadyResolved   = errors.New("complaint already resolved")
)

// Repository handles database operations for complaints
type Repository interface {
	List(ctx context.Context) ([]Complaint, error)
	ListByAuthor(ctx context.Context, authorID string) ([]Complaint, error)
	GetByID(ctx context.Context, id string) (*Complaint, error)
	Create(ctx context.Context, authorID, authorRole, subject, body string) (*Complaint, error)
	Resolve(ctx context.Context, id, response, resolverID string) (*Complaint, error)
	DeleteOwnPending(ctx context.Context, id, authorID string) error
}

type repository struct {
	db database.Service
}

func NewRepository(db database.Service) Repository {
	return &repository{db: db}
}

const complaintColumns = `c.id, c.author_id, c.author_role, COALESCE(a.email, ''),
		c.subject, c.body, c.status, COALESCE(c.response, ''),
		c.resolved_by, c.created_at, c.updated_at`

func (r *repository) List(ctx context.Context) ([]Complaint, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM complaints c
		LEFT JOIN accounts a ON a.id = c.author_id
		ORDER BY c.created_at DESC`, complaintColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer rows.Close()

	return scanComplaints(rows)
}

func (r *repository) ListByAuthor(ctx context.Context, authorID string) ([]Complaint, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM complaints c
		LEFT JOIN accounts a ON a.id = c.author_id
		WHERE c.author_id = $1
		ORDER BY c.created_at DESC`, complaintColumns)

	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer rows.Close()

	return scanComplaints(rows)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Complaint, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM complaints c
		LEFT JOIN accounts a ON a.id = c.author_id
		WHERE c.id = $1`, complaintColumns)

	complaint, err := scanComplaint(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}
	return complaint, nil
}

func (r *repository) Create(ctx context.Context, authorID, authorRole, subject, body string) (*Complaint, error) {
	query := `
		INSERT INTO complaints (id, author_id, author_role, subject, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, author_id, author_role, '', subject, body,
			status, response, resolved_by, created_at, updated_at`

	complaint, err := scanComplaint(r.db.QueryRow(ctx, query, uuid.New().String(), authorID, authorRole, subject, body))
	if err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}
	return complaint, nil
}

func (r *repository) Resolve(ctx context.Context, id, response, resolverID string) (*Complaint, error) {
	// The author email rides along so the resolution notification can be
	// sent without a second query
	query := `
		UPDATE complaints c
		SET status = 'resolved', response = $2, resolved_by = $3, updated_at = NOW()
		FROM accounts a
		WHERE c.id = $1 AND c.status = 'pending' AND a.id = c.author_id
		RETURNING c.id, c.author_id, c.author_role, COALESCE(a.email, ''),
			c.subject, c.body, c.status, c.response,
			c.resolved_by, c.created_at, c.updated_at`

	complaint, err := scanComplaint(r.db.QueryRow(ctx, query, id, response, resolverID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			existing, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return nil, getErr
			}
			if existing.Status != StatusPending {
				return nil, ErrAlreadyResolved
			}
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("failed to resolve complaint: %w", err)
	}
	return complaint, nil
}

func (r *repository) DeleteOwnPending(ctx context.Context, id, authorID string) error {
	query := `DELETE FROM complaints WHERE id = $1 AND author_id = $2 AND status = 'pending'`

	result, err := r.db.Exec(ctx, query, id, authorID)
	if err != nil {
		return fmt.Errorf("failed to delete complaint: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrComplaintNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComplaint(row rowScanner) (*Complaint, error) {
	var complaint Complaint
	err := row.Scan(
		&complaint.ID, &complaint.AuthorID, &complaint.AuthorRole, &complaint.AuthorEmail,
		&complaint.Subject, &complaint.Body, &complaint.Status, &complaint.Response,
		&complaint.ResolvedBy, &complaint.CreatedAt, &complaint.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

func scanComplaints(rows *sql.Rows) ([]Complaint, error) {
	complaints := []Complaint{}
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan complaint: %w", err)
		}
		complaints = append(complaints, *complaint)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate complaints: %w", err)
	}
	return complaints, nil
}
