package complaints

import "time"

// Complaint status values
const (
	StatusPending  = "pending"
	StatusResolved = "resolved"
)

// Complaint represents a complaint filed by a teacher or student
type Complaint struct {
	ID          string    `json:"id" db:"id"`
	AuthorID    string    `json:"author_id" db:"author_id"`
	AuthorRole  string    `json:"author_role" db:"author_role"`
	AuthorEmail string    `json:"author_email,omitempty" db:"author_email"`
	Subject     string    `json:"subject" db:"subject"`
	Body        string    `json:"body" db:"body"`
	Status      string    `json:"status" db:"status"`
	Response    string    `json:"response" db:"response"`
	ResolvedBy  *string   `json:"resolved_by,omitempty" db:"resolved_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ComplaintsView is the full complaint list partitioned by status
type ComplaintsView struct {
	Complaints []Complaint `json:"complaints"`
	Pending    []Complaint `json:"pending"`
	Resolved   []Complaint `json:"resolved"`
}

// FileComplaintRequest is the request body for filing a complaint
type FileComplaintRequest struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Body    string `json:"body" binding:"required,max=2000"`
}

// ResolveComplaintRequest is the request body for resolving a complaint
type ResolveComplaintRequest struct {
	Response string `json:"response" binding:"required,max=2000"`
}
