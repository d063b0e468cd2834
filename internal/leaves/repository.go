package leaves

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"classmate/internal/database"
)

var (
	ErrLeaveNotFound  = errors.New("leave application not found")
	ErrAlreadyDecided = errors.New("leave application already decided")
)

// Repository handles database operations for leave applications
type Repository interface {
	List(ctx context.Context) ([]Leave, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]Leave, error)
	GetByID(ctx context.Context, id string) (*Leave, error)
	Create(ctx context.Context, applicantID, applicantRole, reason string, fromDate, toDate time.Time) (*Leave, error)
	Respond(ctx context.Context, id, status, response, responderID string) (*Leave, error)
	DeleteOwnPending(ctx context.Context, id, applicantID string) error
}

type repository struct {
	db database.Service
}

func NewRepository(db database.Service) Repository {
	return &repository{db: db}
}

const leaveColumns = `l.id, l.applicant_id, l.applicant_role, COALESCE(a.email, ''),
		l.reason, l.from_date, l.to_date, l.status, COALESCE(l.response, ''),
		l.responded_by, l.created_at, l.updated_at`

func (r *repository) List(ctx context.Context) ([]Leave, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_applications l
		LEFT JOIN accounts a ON a.id = l.applicant_id
		ORDER BY l.created_at DESC`, leaveColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave applications: %w", err)
	}
	defer rows.Close()

	return scanLeaves(rows)
}

func (r *repository) ListByApplicant(ctx context.Context, applicantID string) ([]Leave, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_applications l
		LEFT JOIN accounts a ON a.id = l.applicant_id
		WHERE l.applicant_id = $1
		ORDER BY l.created_at DESC`, leaveColumns)

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave applications: %w", err)
	}
	defer rows.Close()

	return scanLeaves(rows)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Leave, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_applications l
		LEFT JOIN accounts a ON a.id = l.applicant_id
		WHERE l.id = $1`, leaveColumns)

	leave, err := scanLeave(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLeaveNotFound
		}
		return nil, fmt.Errorf("failed to get leave application: %w", err)
	}
	return leave, nil
}

func (r *repository) Create(ctx context.Context, applicantID, applicantRole, reason string, fromDate, toDate time.Time) (*Leave, error) {
	query := `
		INSERT INTO leave_applications (id, applicant_id, applicant_role, reason, from_date, to_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, applicant_id, applicant_role, '', reason, from_date, to_date,
			status, response, responded_by, created_at, updated_at`

	leave, err := scanLeave(r.db.QueryRow(ctx, query, uuid.New().String(), applicantID, applicantRole, reason, fromDate, toDate))
	if err != nil {
		return nil, fmt.Errorf("failed to create leave application: %w", err)
	}
	return leave, nil
}

func (r *repository) Respond(ctx context.Context, id, status, response, responderID string) (*Leave, error) {
	// The applicant email rides along so the decision notification can be
	// sent without a second query
	query := `
		UPDATE leave_applications l
		SET status = $2, response = $3, responded_by = $4, updated_at = NOW()
		FROM accounts a
		WHERE l.id = $1 AND l.status = 'pending' AND a.id = l.applicant_id
		RETURNING l.id, l.applicant_id, l.applicant_role, COALESCE(a.email, ''),
			l.reason, l.from_date, l.to_date, l.status, l.response,
			l.responded_by, l.created_at, l.updated_at`

	leave, err := scanLeave(r.db.QueryRow(ctx, query, id, status, response, responderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Either the row never existed or it was already decided
			existing, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return nil, getErr
			}
			if existing.Status != StatusPending {
				return nil, ErrAlreadyDecided
			}
			return nil, ErrLeaveNotFound
		}
		return nil, fmt.Errorf("failed to respond to leave application: %w", err)
	}
	return leave, nil
}

func (r *repository) DeleteOwnPending(ctx context.Context, id, applicantID string) error {
	query := `DELETE FROM leave_applications WHERE id = $1 AND applicant_id = $2 AND status = 'pending'`

	result, err := r.db.Exec(ctx, query, id, applicantID)
	if err != nil {
		return fmt.Errorf("failed to delete leave application: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrLeaveNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLeave(row rowScanner) (*Leave, error) {
	var leave Leave
	err := row.Scan(
		&leave.ID, &leave.ApplicantID, &leave.ApplicantRole, &leave.ApplicantEmail,
		&leave.Reason, &leave.FromDate, &leave.ToDate, &leave.Status, &leave.Response,
		&leave.RespondedBy, &leave.CreatedAt, &leave.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

func scanLeaves(rows *sql.Rows) ([]Leave, error) {
	leaves := []Leave{}
	for rows.Next() {
		leave, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave application: %w", err)
		}
		leaves = append(leaves, *leave)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave applications: %w", err)
	}
	return leaves, nil
}
