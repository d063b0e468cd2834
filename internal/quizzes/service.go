// Package quizzes manages quizzes and their question sets. Question sets are
// stored as a JSONB column; the database never inspects them.
package quizzes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"classmate/internal/database"

	"github.com/google/uuid"
)

// ErrQuizNotFound is returned when a quiz does not exist
var ErrQuizNotFound = errors.New("quiz not found")

const quizColumns = `id, classroom_id, title, subject, questions, created_by, created_at, updated_at`

// Service handles quiz operations with inline SQL
type Service struct {
	db database.Service
}

// NewService creates a new quizzes service
func NewService(db database.Service) *Service {
	return &Service{db: db}
}

// List retrieves all quizzes, optionally limited to one classroom
func (s *Service) List(ctx context.Context, classroomID string) ([]Quiz, error) {
	query := `SELECT ` + quizColumns + ` FROM quizzes ORDER BY created_at DESC`
	args := []any{}
	if classroomID != "" {
		query = `SELECT ` + quizColumns + ` FROM quizzes WHERE classroom_id = $1 ORDER BY created_at DESC`
		args = append(args, classroomID)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying quizzes: %v", err)
		return nil, fmt.Errorf("failed to query quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := []Quiz{}
	for rows.Next() {
		q, err := scanQuiz(rows.Scan)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, *q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quizzes: %w", err)
	}

	return quizzes, nil
}

// Get retrieves a single quiz
func (s *Service) Get(ctx context.Context, id string) (*Quiz, error) {
	row := s.db.QueryRow(ctx, `SELECT `+quizColumns+` FROM quizzes WHERE id = $1`, id)
	q, err := scanQuiz(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return q, nil
}

// Create inserts a new quiz and returns the full entity
func (s *Service) Create(ctx context.Context, req CreateQuizRequest, createdBy string) (*Quiz, error) {
	questions, err := json.Marshal(req.Questions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal questions: %w", err)
	}

	query := `
		INSERT INTO quizzes (id, classroom_id, title, subject, questions, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + quizColumns

	row := s.db.QueryRow(ctx, query, uuid.New().String(), req.ClassroomID, req.Title, req.Subject, questions, createdBy)
	q, err := scanQuiz(row.Scan)
	if err != nil {
		log.Printf("Error creating quiz: %v", err)
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	return q, nil
}

// Update modifies a quiz and returns the full updated entity
func (s *Service) Update(ctx context.Context, id string, req UpdateQuizRequest) (*Quiz, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Subject != nil {
		existing.Subject = *req.Subject
	}
	if req.Questions != nil {
		existing.Questions = req.Questions
	}

	questions, err := json.Marshal(existing.Questions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal questions: %w", err)
	}

	query := `
		UPDATE quizzes
		SET title = $1, subject = $2, questions = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + quizColumns

	row := s.db.QueryRow(ctx, query, existing.Title, existing.Subject, questions, id)
	q, err := scanQuiz(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuizNotFound
		}
		log.Printf("Error updating quiz %s: %v", id, err)
		return nil, fmt.Errorf("failed to update quiz: %w", err)
	}

	return q, nil
}

// Delete removes a quiz
func (s *Service) Delete(ctx context.Context, id string) error {
	result, err := s.db.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting quiz %s: %v", id, err)
		return fmt.Errorf("failed to delete quiz: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrQuizNotFound
	}

	return nil
}

func scanQuiz(scan func(dest ...any) error) (*Quiz, error) {
	var (
		q   Quiz
		raw []byte
	)
	if err := scan(&q.ID, &q.ClassroomID, &q.Title, &q.Subject, &raw, &q.CreatedBy, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &q.Questions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
		}
	}
	return &q, nil
}
