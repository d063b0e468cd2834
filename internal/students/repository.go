package students

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"classmate/internal/database"

	"github.com/google/uuid"
)

var (
	// ErrStudentNotFound is returned when a student does not exist
	ErrStudentNotFound = errors.New("student not found")
	// ErrEmailExists is returned when a student with the email already exists
	ErrEmailExists = errors.New("a student with this email already exists")
)

const studentColumns = `id, account_id, name, email, roll_number, classroom_id, created_at, updated_at`

// Repository handles all database operations for students
type Repository struct {
	db database.Service
}

// NewRepository creates a new students repository
func NewRepository(db database.Service) *Repository {
	return &Repository{db: db}
}

// List retrieves all students, optionally limited to one classroom
func (r *Repository) List(ctx context.Context, classroomID string) ([]Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY name ASC`
	args := []any{}
	if classroomID != "" {
		query = `SELECT ` + studentColumns + ` FROM students WHERE classroom_id = $1 ORDER BY name ASC`
		args = append(args, classroomID)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying students: %v", err)
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	students := []Student{}
	for rows.Next() {
		var st Student
		if err := rows.Scan(&st.ID, &st.AccountID, &st.Name, &st.Email, &st.RollNumber, &st.ClassroomID, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate students: %w", err)
	}

	return students, nil
}

// GetByID retrieves a single student
func (r *Repository) GetByID(ctx context.Context, id string) (*Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	var st Student
	err := r.db.QueryRow(ctx, query, id).
		Scan(&st.ID, &st.AccountID, &st.Name, &st.Email, &st.RollNumber, &st.ClassroomID, &st.CreatedAt, &st.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return &st, nil
}

// GetByAccountID retrieves the student profile linked to a login account
func (r *Repository) GetByAccountID(ctx context.Context, accountID string) (*Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE account_id = $1`

	var st Student
	err := r.db.QueryRow(ctx, query, accountID).
		Scan(&st.ID, &st.AccountID, &st.Name, &st.Email, &st.RollNumber, &st.ClassroomID, &st.CreatedAt, &st.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student by account: %w", err)
	}

	return &st, nil
}

// Create inserts a new student and returns the full entity
func (r *Repository) Create(ctx context.Context, accountID *string, name, email, rollNumber string, classroomID *string) (*Student, error) {
	query := `
		INSERT INTO students (id, account_id, name, email, roll_number, classroom_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + studentColumns

	var st Student
	err := r.db.QueryRow(ctx, query, uuid.New().String(), accountID, name, email, rollNumber, classroomID).
		Scan(&st.ID, &st.AccountID, &st.Name, &st.Email, &st.RollNumber, &st.ClassroomID, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "students_email_key") {
			return nil, ErrEmailExists
		}
		log.Printf("Error creating student: %v", err)
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	return &st, nil
}

// Update modifies an existing student and returns the full updated entity
func (r *Repository) Update(ctx context.Context, id string, name, rollNumber, classroomID *string) (*Student, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		existing.Name = *name
	}
	if rollNumber != nil {
		existing.RollNumber = *rollNumber
	}
	if classroomID != nil {
		existing.ClassroomID = classroomID
	}

	query := `
		UPDATE students
		SET name = $1, roll_number = $2, classroom_id = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + studentColumns

	var st Student
	err = r.db.QueryRow(ctx, query, existing.Name, existing.RollNumber, existing.ClassroomID, id).
		Scan(&st.ID, &st.AccountID, &st.Name, &st.Email, &st.RollNumber, &st.ClassroomID, &st.CreatedAt, &st.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		log.Printf("Error updating student %s: %v", id, err)
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	return &st, nil
}

// Delete removes a student
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting student %s: %v", id, err)
		return fmt.Errorf("failed to delete student: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrStudentNotFound
	}

	return nil
}
