package schedules

import "time"

// Schedule is the metadata record for a schedule document. The document
// itself lives in object storage under FileKey.
type Schedule struct {
	ID          string    `json:"id" db:"id"`
	ClassroomID *string   `json:"classroom_id,omitempty" db:"classroom_id"`
	Title       string    `json:"title" db:"title"`
	FileKey     string    `json:"file_key" db:"file_key"`
	ContentType string    `json:"content_type" db:"content_type"`
	UploadedBy  *string   `json:"uploaded_by,omitempty" db:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CreateScheduleRequest registers a new schedule document and asks for an
// upload URL
type CreateScheduleRequest struct {
	ClassroomID *string `json:"classroom_id"`
	Title       string  `json:"title" binding:"required,max=200"`
	Filename    string  `json:"filename" binding:"required"`
	ContentType string  `json:"content_type" binding:"required"`
}

// CreateScheduleResponse carries the stored metadata plus the presigned
// URL the client must PUT the file to
type CreateScheduleResponse struct {
	Schedule  Schedule `json:"schedule"`
	UploadURL string   `json:"upload_url"`
	ExpiresIn int      `json:"expires_in_seconds"`
}

// DownloadResponse carries a presigned GET URL for a schedule document
type DownloadResponse struct {
	DownloadURL string `json:"download_url"`
	ExpiresIn   int    `json:"expires_in_seconds"`
}
