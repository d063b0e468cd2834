package students

import "time"

// Student represents a student profile. AccountID links the profile to its
// login account and is what the role resolver probes.
type Student struct {
	ID          string    `json:"id" db:"id"`
	AccountID   *string   `json:"account_id,omitempty" db:"account_id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	RollNumber  string    `json:"roll_number" db:"roll_number"`
	ClassroomID *string   `json:"classroom_id,omitempty" db:"classroom_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CreateStudentRequest is the request body for enrolling a student. When
// Password is set, a login account is created and linked.
type CreateStudentRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"omitempty,min=6"`
	RollNumber  string  `json:"roll_number" binding:"max=20"`
	ClassroomID *string `json:"classroom_id,omitempty"`
}

// UpdateStudentRequest is the request body for updating a student
type UpdateStudentRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=100"`
	RollNumber  *string `json:"roll_number,omitempty" binding:"omitempty,max=20"`
	ClassroomID *string `json:"classroom_id,omitempty"`
}
