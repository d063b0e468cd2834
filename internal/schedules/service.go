package schedules

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"classmate/internal/storage"
)

// ErrStorageUnavailable is returned when object storage was not configured
var ErrStorageUnavailable = errors.New("document storage unavailable")

const (
	MaxFilenameLength = 255
	UploadTTL         = 15 * time.Minute
	DownloadTTL       = 1 * time.Hour
)

// Content types accepted for schedule documents
var allowedContentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"text/calendar":   true,
}

// Service handles business logic for schedule documents
type Service interface {
	List(ctx context.Context, classroomID string) ([]Schedule, error)
	Create(ctx context.Context, uploadedBy string, req CreateScheduleRequest) (*CreateScheduleResponse, error)
	DownloadURL(ctx context.Context, id string) (*DownloadResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo    Repository
	storage storage.Service
}

func NewService(repo Repository, store storage.Service) Service {
	return &service{repo: repo, storage: store}
}

func (s *service) List(ctx context.Context, classroomID string) ([]Schedule, error) {
	return s.repo.List(ctx, classroomID)
}

func (s *service) Create(ctx context.Context, uploadedBy string, req CreateScheduleRequest) (*CreateScheduleResponse, error) {
	if s.storage == nil {
		return nil, ErrStorageUnavailable
	}
	if err := ValidateFilename(req.Filename); err != nil {
		return nil, err
	}
	if err := ValidateContentType(req.ContentType); err != nil {
		return nil, err
	}

	// Prefix with a UUID so two uploads of the same filename never collide
	fileKey := fmt.Sprintf("schedules/%s-%s", uuid.New().String(), req.Filename)

	uploadURL, err := s.storage.UploadURL(ctx, fileKey, req.ContentType, UploadTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate upload URL: %w", err)
	}

	schedule, err := s.repo.Create(ctx, req.ClassroomID, req.Title, fileKey, req.ContentType, uploadedBy)
	if err != nil {
		return nil, err
	}

	return &CreateScheduleResponse{
		Schedule:  *schedule,
		UploadURL: uploadURL,
		ExpiresIn: int(UploadTTL.Seconds()),
	}, nil
}

func (s *service) DownloadURL(ctx context.Context, id string) (*DownloadResponse, error) {
	if s.storage == nil {
		return nil, ErrStorageUnavailable
	}
	schedule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.DownloadURL(ctx, schedule.FileKey, DownloadTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate download URL: %w", err)
	}

	return &DownloadResponse{
		DownloadURL: url,
		ExpiresIn:   int(DownloadTTL.Seconds()),
	}, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	schedule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if s.storage == nil {
		return ErrStorageUnavailable
	}
	if err := s.storage.Delete(ctx, schedule.FileKey); err != nil {
		// The metadata row still goes; an orphaned object is recoverable,
		// a dangling row pointing at a deleted object is not
		log.Printf("Failed to delete stored document %s: %v", schedule.FileKey, err)
	}

	return s.repo.Delete(ctx, id)
}

// ValidateFilename checks that a filename is safe to embed in a storage key
func ValidateFilename(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if len(filename) > MaxFilenameLength {
		return fmt.Errorf("filename too long (max %d characters)", MaxFilenameLength)
	}
	if strings.Contains(filename, "..") || strings.Contains(filename, "/") || strings.Contains(filename, "\\") {
		return fmt.Errorf("filename contains invalid characters")
	}
	if filepath.Ext(filename) == "" {
		return fmt.Errorf("filename must have an extension")
	}
	return nil
}

// ValidateContentType checks a content type against the whitelist
func ValidateContentType(contentType string) error {
	if contentType == "" {
		return fmt.Errorf("content type cannot be empty")
	}
	if !allowedContentTypes[contentType] {
		return fmt.Errorf("content type %s is not allowed", contentType)
	}
	return nil
}
