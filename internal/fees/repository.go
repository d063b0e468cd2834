package fees

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"classmate/internal/database"

	"github.com/google/uuid"
)

var (
	// ErrFeeNotFound is returned when a fee record does not exist
	ErrFeeNotFound = errors.New("fee record not found")
	// ErrNoStudentProfile is returned when an account has no student profile
	ErrNoStudentProfile = errors.New("no student profile for this account")
)

const feeColumns = `id, student_id, title, amount, due_date, status, paid_at, created_at, updated_at`

// Repository handles all database operations for fee records
type Repository struct {
	db database.Service
}

// NewRepository creates a new fees repository
func NewRepository(db database.Service) *Repository {
	return &Repository{db: db}
}

// List retrieves all fee records, optionally limited to one student
func (r *Repository) List(ctx context.Context, studentID string) ([]Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees ORDER BY due_date ASC`
	args := []any{}
	if studentID != "" {
		query = `SELECT ` + feeColumns + ` FROM fees WHERE student_id = $1 ORDER BY due_date ASC`
		args = append(args, studentID)
	}

	return r.queryFees(ctx, query, args...)
}

// StudentIDForAccount resolves the student profile id for a login account
func (r *Repository) StudentIDForAccount(ctx context.Context, accountID string) (string, error) {
	var studentID string
	err := r.db.QueryRow(ctx, `SELECT id FROM students WHERE account_id = $1`, accountID).Scan(&studentID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoStudentProfile
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve student profile: %w", err)
	}
	return studentID, nil
}

// Create inserts a new fee record and returns the full entity
func (r *Repository) Create(ctx context.Context, studentID, title string, amount float64, dueDate time.Time) (*Fee, error) {
	query := `
		INSERT INTO fees (id, student_id, title, amount, due_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + feeColumns

	var f Fee
	err := r.db.QueryRow(ctx, query, uuid.New().String(), studentID, title, amount, dueDate, StatusUnpaid).
		Scan(&f.ID, &f.StudentID, &f.Title, &f.Amount, &f.DueDate, &f.Status, &f.PaidAt, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		log.Printf("Error creating fee record: %v", err)
		return nil, fmt.Errorf("failed to create fee record: %w", err)
	}

	return &f, nil
}

// Update modifies a fee record and returns the full updated entity
func (r *Repository) Update(ctx context.Context, id string, title *string, amount *float64, dueDate *time.Time) (*Fee, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != nil {
		existing.Title = *title
	}
	if amount != nil {
		existing.Amount = *amount
	}
	if dueDate != nil {
		existing.DueDate = *dueDate
	}

	query := `
		UPDATE fees
		SET title = $1, amount = $2, due_date = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + feeColumns

	var f Fee
	err = r.db.QueryRow(ctx, query, existing.Title, existing.Amount, existing.DueDate, id).
		Scan(&f.ID, &f.StudentID, &f.Title, &f.Amount, &f.DueDate, &f.Status, &f.PaidAt, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFeeNotFound
	}
	if err != nil {
		log.Printf("Error updating fee %s: %v", id, err)
		return nil, fmt.Errorf("failed to update fee record: %w", err)
	}

	return &f, nil
}

// MarkPaid flips a fee record to paid and stamps the payment time
func (r *Repository) MarkPaid(ctx context.Context, id string) (*Fee, error) {
	query := `
		UPDATE fees
		SET status = $1, paid_at = NOW(), updated_at = NOW()
		WHERE id = $2
		RETURNING ` + feeColumns

	var f Fee
	err := r.db.QueryRow(ctx, query, StatusPaid, id).
		Scan(&f.ID, &f.StudentID, &f.Title, &f.Amount, &f.DueDate, &f.Status, &f.PaidAt, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFeeNotFound
	}
	if err != nil {
		log.Printf("Error marking fee %s paid: %v", id, err)
		return nil, fmt.Errorf("failed to mark fee paid: %w", err)
	}

	return &f, nil
}

// GetByID retrieves a single fee record
func (r *Repository) GetByID(ctx context.Context, id string) (*Fee, error) {
	var f Fee
	err := r.db.QueryRow(ctx, `SELECT `+feeColumns+` FROM fees WHERE id = $1`, id).
		Scan(&f.ID, &f.StudentID, &f.Title, &f.Amount, &f.DueDate, &f.Status, &f.PaidAt, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fee record: %w", err)
	}

	return &f, nil
}

// Delete removes a fee record
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM fees WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting fee %s: %v", id, err)
		return fmt.Errorf("failed to delete fee record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrFeeNotFound
	}

	return nil
}

func (r *Repository) queryFees(ctx context.Context, query string, args ...any) ([]Fee, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying fees: %v", err)
		return nil, fmt.Errorf("failed to query fees: %w", err)
	}
	defer rows.Close()

	fees := []Fee{}
	for rows.Next() {
		var f Fee
		if err := rows.Scan(&f.ID, &f.StudentID, &f.Title, &f.Amount, &f.DueDate, &f.Status, &f.PaidAt, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fee record: %w", err)
		}
		fees = append(fees, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fees: %w", err)
	}

	return fees, nil
}
