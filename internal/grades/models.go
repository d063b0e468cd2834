package grades

import "time"

// Grade represents a single exam result for a student
type Grade struct {
	ID        string    `json:"id" db:"id"`
	StudentID string    `json:"student_id" db:"student_id"`
	Subject   string    `json:"subject" db:"subject"`
	Exam      string    `json:"exam" db:"exam"`
	Score     float64   `json:"score" db:"score"`
	MaxScore  float64   `json:"max_score" db:"max_score"`
	GradedBy  *string   `json:"graded_by,omitempty" db:"graded_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateGradeRequest is the request body for recording a grade
type CreateGradeRequest struct {
	StudentID string  `json:"student_id" binding:"required,uuid"`
	Subject   string  `json:"subject" binding:"required,max=100"`
	Exam      string  `json:"exam" binding:"required,max=100"`
	Score     float64 `json:"score" binding:"min=0"`
	MaxScore  float64 `json:"max_score" binding:"required,gtefield=Score"`
}

// UpdateGradeRequest is the request body for correcting a grade
type UpdateGradeRequest struct {
	Score    *float64 `json:"score,omitempty" binding:"omitempty,min=0"`
	MaxScore *float64 `json:"max_score,omitempty" binding:"omitempty,min=1"`
}
