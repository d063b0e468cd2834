package teachers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"classmate/internal/database"

	"github.com/google/uuid"
)

var (
	// ErrTeacherNotFound is returned when a teacher does not exist
	ErrTeacherNotFound = errors.New("teacher not found")
	// ErrEmailExists is returned when a teacher with the email already exists
	ErrEmailExists = errors.New("a teacher with this email already exists")
)

const teacherColumns = `id, account_id, name, email, subject, created_at, updated_at`

// Repository handles all database operations for teachers
type Repository struct {
	db database.Service
}

// NewRepository creates a new teachers repository
func NewRepository(db database.Service) *Repository {
	return &Repository{db: db}
}

// List retrieves all teachers ordered by name
func (r *Repository) List(ctx context.Context) ([]Teacher, error) {
	rows, err := r.db.Query(ctx, `SELECT `+teacherColumns+` FROM teachers ORDER BY name ASC`)
	if err != nil {
		log.Printf("Error querying teachers: %v", err)
		return nil, fmt.Errorf("failed to query teachers: %w", err)
	}
	defer rows.Close()

	teachers := []Teacher{}
	for rows.Next() {
		var tc Teacher
		if err := rows.Scan(&tc.ID, &tc.AccountID, &tc.Name, &tc.Email, &tc.Subject, &tc.CreatedAt, &tc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan teacher: %w", err)
		}
		teachers = append(teachers, tc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teachers: %w", err)
	}

	return teachers, nil
}

// GetByID retrieves a single teacher
func (r *Repository) GetByID(ctx context.Context, id string) (*Teacher, error) {
	var tc Teacher
	err := r.db.QueryRow(ctx, `SELECT `+teacherColumns+` FROM teachers WHERE id = $1`, id).
		Scan(&tc.ID, &tc.AccountID, &tc.Name, &tc.Email, &tc.Subject, &tc.CreatedAt, &tc.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTeacherNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get teacher: %w", err)
	}

	return &tc, nil
}

// Create inserts a new teacher and returns the full entity
func (r *Repository) Create(ctx context.Context, accountID *string, name, email, subject string) (*Teacher, error) {
	query := `
		INSERT INTO teachers (id, account_id, name, email, subject, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + teacherColumns

	var tc Teacher
	err := r.db.QueryRow(ctx, query, uuid.New().String(), accountID, name, email, subject).
		Scan(&tc.ID, &tc.AccountID, &tc.Name, &tc.Email, &tc.Subject, &tc.CreatedAt, &tc.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "teachers_email_key") {
			return nil, ErrEmailExists
		}
		log.Printf("Error creating teacher: %v", err)
		return nil, fmt.Errorf("failed to create teacher: %w", err)
	}

	return &tc, nil
}

// Update modifies an existing teacher and returns the full updated entity
func (r *Repository) Update(ctx context.Context, id string, name, subject *string) (*Teacher, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		existing.Name = *name
	}
	if subject != nil {
		existing.Subject = *subject
	}

	query := `
		UPDATE teachers
		SET name = $1, subject = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + teacherColumns

	var tc Teacher
	err = r.db.QueryRow(ctx, query, existing.Name, existing.Subject, id).
		Scan(&tc.ID, &tc.AccountID, &tc.Name, &tc.Email, &tc.Subject, &tc.CreatedAt, &tc.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTeacherNotFound
	}
	if err != nil {
		log.Printf("Error updating teacher %s: %v", id, err)
		return nil, fmt.Errorf("failed to update teacher: %w", err)
	}

	return &tc, nil
}

// Delete removes a teacher
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting teacher %s: %v", id, err)
		return fmt.Errorf("failed to delete teacher: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTeacherNotFound
	}

	return nil
}
