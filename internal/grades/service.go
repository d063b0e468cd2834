// Package grades records and serves exam results. Teachers write, admins
// read everything, students read only their own rows.
package grades

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
	// ErrGradeNotFound is returned when a grade does not exist
	ErrGradeNotFound = errors.New("grade not found")
	// ErrNoStudentProfile is returned when an account has no student profile
	ErrNoStudentProfile = errors.New("no student profile for this account")
)

const gradeColumns = `id, student_id, subject, exam, score, max_score, graded_by, created_at, updated_at`

// Service handles grade operations with inline SQL
type Service struct {
	db database.Service
}

// NewService creates a new grades service
func NewService(db database.Service) *Service {
	return &Service{db: db}
}

// ListForStudent retrieves all grades of one student
func (s *Service) ListForStudent(ctx context.Context, studentID string) ([]Grade, error) {
	query := `SELECT ` + gradeColumns + ` FROM grades WHERE student_id = $1 ORDER BY created_at DESC`
	return s.queryGrades(ctx, query, studentID)
}

// ListForClassroom retrieves all grades of students in one classroom
func (s *Service) ListForClassroom(ctx context.Context, classroomID string) ([]Grade, error) {
	query := `
		SELECT g.id, g.student_id, g.subject, g.exam, g.score, g.max_score, g.graded_by, g.created_at, g.updated_at
		FROM grades g
		JOIN students st ON st.id = g.student_id
		WHERE st.classroom_id = $1
		ORDER BY g.created_at DESC
	`
	return s.queryGrades(ctx, query, classroomID)
}

// ListForAccount retrieves the grades of the student linked to a login
// account. Used when a student asks for their own grades.
func (s *Service) ListForAccount(ctx context.Context, accountID string) ([]Grade, error) {
	var studentID string
	err := s.db.QueryRow(ctx, `SELECT id FROM students WHERE account_id = $1`, accountID).Scan(&studentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoStudentProfile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve student profile: %w", err)
	}

	return s.ListForStudent(ctx, studentID)
}

// Create records a new grade and returns the full entity
func (s *Service) Create(ctx context.Context, req CreateGradeRequest, gradedBy string) (*Grade, error) {
	query := `
		INSERT INTO grades (id, student_id, subject, exam, score, max_score, graded_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + gradeColumns

	var g Grade
	err := s.db.QueryRow(ctx, query, uuid.New().String(), req.StudentID, req.Subject, req.Exam, req.Score, req.MaxScore, gradedBy).
		Scan(&g.ID, &g.StudentID, &g.Subject, &g.Exam, &g.Score, &g.MaxScore, &g.GradedBy, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		log.Printf("Error creating grade: %v", err)
		return nil, fmt.Errorf("failed to create grade: %w", err)
	}

	return &g, nil
}

// Update corrects an existing grade and returns the full updated entity
func (s *Service) Update(ctx context.Context, id string, req UpdateGradeRequest) (*Grade, error) {
	existing, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Score != nil {
		existing.Score = *req.Score
	}
	if req.MaxScore != nil {
		existing.MaxScore = *req.MaxScore
	}

	query := `
		UPDATE grades
		SET score = $1, max_score = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + gradeColumns

	var g Grade
	err = s.db.QueryRow(ctx, query, existing.Score, existing.MaxScore, id).
		Scan(&g.ID, &g.StudentID, &g.Subject, &g.Exam, &g.Score, &g.MaxScore, &g.GradedBy, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGradeNotFound
	}
	if err != nil {
		log.Printf("Error updating grade %s: %v", id, err)
		return nil, fmt.Errorf("failed to update grade: %w", err)
	}

	return &g, nil
}

// Delete removes a grade
func (s *Service) Delete(ctx context.Context, id string) error {
	result, err := s.db.Exec(ctx, `DELETE FROM grades WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting grade %s: %v", id, err)
		return fmt.Errorf("failed to delete grade: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrGradeNotFound
	}

	return nil
}

func (s *Service) getByID(ctx context.Context, id string) (*Grade, error) {
	var g Grade
	err := s.db.QueryRow(ctx, `SELECT `+gradeColumns+` FROM grades WHERE id = $1`, id).
		Scan(&g.ID, &g.StudentID, &g.Subject, &g.Exam, &g.Score, &g.MaxScore, &g.GradedBy, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGradeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get grade: %w", err)
	}
	return &g, nil
}

func (s *Service) queryGrades(ctx context.Context, query string, args ...any) ([]Grade, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying grades: %v", err)
		return nil, fmt.Errorf("failed to query grades: %w", err)
	}
	defer rows.Close()

	grades := []Grade{}
	for rows.Next() {
		var g Grade
		if err := rows.Scan(&g.ID, &g.StudentID, &g.Subject, &g.Exam, &g.Score, &g.MaxScore, &g.GradedBy, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan grade: %w", err)
		}
		grades = append(grades, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate grades: %w", err)
	}

	return grades, nil
}
