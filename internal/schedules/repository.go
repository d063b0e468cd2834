package schedules

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"classmate/internal/database"
)

var ErrScheduleNotFound = errors.New("schedule not found")

// Repository handles database operations for schedule metadata
type Repository interface {
	List(ctx context.Context, classroomID string) ([]Schedule, error)
	GetByID(ctx context.Context, id string) (*Schedule, error)
	Create(ctx context.Context, classroomID *string, title, fileKey, contentType, uploadedBy string) (*Schedule, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db database.Service
}

func NewRepository(db database.Service) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, classroomID string) ([]Schedule, error) {
	query := `
		SELECT id, classroom_id, title, file_key, content_type, uploaded_by, created_at
		FROM schedules`
	args := []any{}
	if classroomID != "" {
		query += ` WHERE classroom_id = $1`
		args = append(args, classroomID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	schedules := []Schedule{}
	for rows.Next() {
		var s Schedule
		if err := rows.Scan(&s.ID, &s.ClassroomID, &s.Title, &s.FileKey, &s.ContentType, &s.UploadedBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedules: %w", err)
	}
	return schedules, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Schedule, error) {
	query := `
		SELECT id, classroom_id, title, file_key, content_type, uploaded_by, created_at
		FROM schedules
		WHERE id = $1`

	var s Schedule
	err := r.db.QueryRow(ctx, query, id).
		Scan(&s.ID, &s.ClassroomID, &s.Title, &s.FileKey, &s.ContentType, &s.UploadedBy, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return &s, nil
}

func (r *repository) Create(ctx context.Context, classroomID *string, title, fileKey, contentType, uploadedBy string) (*Schedule, error) {
	query := `
		INSERT INTO schedules (id, classroom_id, title, file_key, content_type, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, classroom_id, title, file_key, content_type, uploaded_by, created_at`

	var s Schedule
	err := r.db.QueryRow(ctx, query, uuid.New().String(), classroomID, title, fileKey, contentType, uploadedBy).
		Scan(&s.ID, &s.ClassroomID, &s.Title, &s.FileKey, &s.ContentType, &s.UploadedBy, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return &s, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}
	return nil
}
