package fees

import "time"

// Fee status values
const (
	StatusPaid   = "paid"
	StatusUnpaid = "unpaid"
)

// Fee represents a fee record for a student
type Fee struct {
	ID        string     `json:"id" db:"id"`
	StudentID string     `json:"student_id" db:"student_id"`
	Title     string     `json:"title" db:"title"`
	Amount    float64    `json:"amount" db:"amount"`
	DueDate   time.Time  `json:"due_date" db:"due_date"`
	Status    string     `json:"status" db:"status"`
	PaidAt    *time.Time `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// FeesView is the full fee list partitioned by status. The sub-views are
// derived from the single fetched list, never from separate queries.
type FeesView struct {
	Fees   []Fee `json:"fees"`
	Paid   []Fee `json:"paid"`
	Unpaid []Fee `json:"unpaid"`
}

// CreateFeeRequest is the request body for creating a fee record
type CreateFeeRequest struct {
	StudentID string  `json:"student_id" binding:"required,uuid"`
	Title     string  `json:"title" binding:"required,max=200"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	DueDate   string  `json:"due_date" binding:"required,datetime=2006-01-02"`
}

// UpdateFeeRequest is the request body for updating a fee record
type UpdateFeeRequest struct {
	Title   *string  `json:"title,omitempty" binding:"omitempty,max=200"`
	Amount  *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	DueDate *string  `json:"due_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}
