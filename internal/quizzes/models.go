package quizzes

import "time"

// Question is a single multiple-choice question within a quiz
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  int      `json:"answer"`
}

// Quiz represents a quiz assigned to a classroom
type Quiz struct {
	ID          string     `json:"id" db:"id"`
	ClassroomID *string    `json:"classroom_id,omitempty" db:"classroom_id"`
	Title       string     `json:"title" db:"title"`
	Subject     string     `json:"subject" db:"subject"`
	Questions   []Question `json:"questions" db:"questions"`
	CreatedBy   *string    `json:"created_by,omitempty" db:"created_by"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateQuizRequest is the request body for creating a quiz
type CreateQuizRequest struct {
	ClassroomID *string    `json:"classroom_id,omitempty"`
	Title       string     `json:"title" binding:"required,max=200"`
	Subject     string     `json:"subject" binding:"max=100"`
	Questions   []Question `json:"questions" binding:"required,min=1,dive"`
}

// UpdateQuizRequest is the request body for updating a quiz
type UpdateQuizRequest struct {
	Title     *string    `json:"title,omitempty" binding:"omitempty,max=200"`
	Subject   *string    `json:"subject,omitempty" binding:"omitempty,max=100"`
	Questions []Question `json:"questions,omitempty" binding:"omitempty,min=1,dive"`
}
