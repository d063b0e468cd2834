package teachers

import "time"

// Teacher represents a teacher profile linked to a login account
type Teacher struct {
	ID        string    `json:"id" db:"id"`
	AccountID *string   `json:"account_id,omitempty" db:"account_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Subject   string    `json:"subject" db:"subject"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateTeacherRequest is the request body for adding a teacher. When
// Password is set, a login account is created and linked.
type CreateTeacherRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Subject  string `json:"subject" binding:"max=100"`
}

// UpdateTeacherRequest is the request body for updating a teacher
type UpdateTeacherRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Subject *string `json:"subject,omitempty" binding:"omitempty,max=100"`
}
