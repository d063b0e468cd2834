package classrooms

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"classmate/internal/database"

	"github.com/google/uuid"
)

// ErrClassroomNotFound is returned when a classroom does not exist
var ErrClassroomNotFound = errors.New("classroom not found")

// Repository handles all database operations for classrooms
type Repository struct {
	db database.Service
}

// NewRepository creates a new classrooms repository
func NewRepository(db database.Service) *Repository {
	return &Repository{db: db}
}

// List retrieves all classrooms ordered by year then name
func (r *Repository) List(ctx context.Context) ([]Classroom, error) {
	query := `
		SELECT id, name, section, year, created_at, updated_at
		FROM classrooms
		ORDER BY year DESC, name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying classrooms: %v", err)
		return nil, fmt.Errorf("failed to query classrooms: %w", err)
	}
	defer rows.Close()

	classrooms := []Classroom{}
	for rows.Next() {
		var cr Classroom
		if err := rows.Scan(&cr.ID, &cr.Name, &cr.Section, &cr.Year, &cr.CreatedAt, &cr.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan classroom: %w", err)
		}
		classrooms = append(classrooms, cr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate classrooms: %w", err)
	}

	return classrooms, nil
}

// GetByID retrieves a single classroom
func (r *Repository) GetByID(ctx context.Context, id string) (*Classroom, error) {
	query := `
		SELECT id, name, section, year, created_at, updated_at
		FROM classrooms
		WHERE id = $1
	`

	var cr Classroom
	err := r.db.QueryRow(ctx, query, id).Scan(&cr.ID, &cr.Name, &cr.Section, &cr.Year, &cr.CreatedAt, &cr.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClassroomNotFound
	}
	if err != nil {
		log.Printf("Error getting classroom %s: %v", id, err)
		return nil, fmt.Errorf("failed to get classroom: %w", err)
	}

	return &cr, nil
}

// Create inserts a new classroom and returns the full entity
func (r *Repository) Create(ctx context.Context, name, section string, year int) (*Classroom, error) {
	query := `
		INSERT INTO classrooms (id, name, section, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, name, section, year, created_at, updated_at
	`

	var cr Classroom
	err := r.db.QueryRow(ctx, query, uuid.New().String(), name, section, year).
		Scan(&cr.ID, &cr.Name, &cr.Section, &cr.Year, &cr.CreatedAt, &cr.UpdatedAt)
	if err != nil {
		log.Printf("Error creating classroom: %v", err)
		return nil, fmt.Errorf("failed to create classroom: %w", err)
	}

	return &cr, nil
}

// Update modifies an existing classroom and returns the full updated entity
func (r *Repository) Update(ctx context.Context, id string, name, section *string, year *int) (*Classroom, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		existing.Name = *name
	}
	if section != nil {
		existing.Section = *section
	}
	if year != nil {
		existing.Year = *year
	}

	query := `
		UPDATE classrooms
		SET name = $1, section = $2, year = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, name, section, year, created_at, updated_at
	`

	var cr Classroom
	err = r.db.QueryRow(ctx, query, existing.Name, existing.Section, existing.Year, id).
		Scan(&cr.ID, &cr.Name, &cr.Section, &cr.Year, &cr.CreatedAt, &cr.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClassroomNotFound
	}
	if err != nil {
		log.Printf("Error updating classroom %s: %v", id, err)
		return nil, fmt.Errorf("failed to update classroom: %w", err)
	}

	return &cr, nil
}

// Delete removes a classroom
func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM classrooms WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting classroom %s: %v", id, err)
		return fmt.Errorf("failed to delete classroom: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrClassroomNotFound
	}

	return nil
}
