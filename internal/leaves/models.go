package leaves

import "time"

// Leave application status values
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Leave represents a leave application submitted by a teacher or student
type Leave struct {
	ID             string    `json:"id" db:"id"`
	ApplicantID    string    `json:"applicant_id" db:"applicant_id"`
	ApplicantRole  string    `json:"applicant_role" db:"applicant_role"`
	ApplicantEmail string    `json:"applicant_email,omitempty" db:"applicant_email"`
	Reason         string    `json:"reason" db:"reason"`
	FromDate       time.Time `json:"from_date" db:"from_date"`
	ToDate         time.Time `json:"to_date" db:"to_date"`
	Status         string    `json:"status" db:"status"`
	Response       string    `json:"response" db:"response"`
	RespondedBy    *string   `json:"responded_by,omitempty" db:"responded_by"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// LeavesView is the full application list partitioned by status, derived
// from one fetch
type LeavesView struct {
	Leaves   []Leave `json:"leaves"`
	Pending  []Leave `json:"pending"`
	Approved []Leave `json:"approved"`
	Rejected []Leave `json:"rejected"`
}

// SubmitLeaveRequest is the request body for submitting a leave application
type SubmitLeaveRequest struct {
	Reason   string `json:"reason" binding:"required,max=1000"`
	FromDate string `json:"from_date" binding:"required,datetime=2006-01-02"`
	ToDate   string `json:"to_date" binding:"required,datetime=2006-01-02"`
}

// RespondLeaveRequest is the request body for deciding an application
type RespondLeaveRequest struct {
	Status   string `json:"status" binding:"required,oneof=approved rejected"`
	Response string `json:"response" binding:"max=1000"`
}
