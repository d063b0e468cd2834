package classrooms

import "time"

// Classroom represents a classroom (name, section, academic year)
type Classroom struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Section   string    `json:"section" db:"section"`
	Year      int       `json:"year" db:"year"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateClassroomRequest is the request body for creating a classroom
type CreateClassroomRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Section string `json:"section" binding:"max=20"`
	Year    int    `json:"year" binding:"required,min=2000,max=2100"`
}

// UpdateClassroomRequest is the request body for updating a classroom
type UpdateClassroomRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Section *string `json:"section,omitempty" binding:"omitempty,max=20"`
	Year    *int    `json:"year,omitempty" binding:"omitempty,min=2000,max=2100"`
}
