package schedules

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"valid pdf", "timetable.pdf", false},
		{"valid with spaces", "fall term 2026.pdf", false},
		{"empty", "", true},
		{"path traversal", "../etc/passwd.pdf", true},
		{"forward slash", "a/b.pdf", true},
		{"backslash", "a\\b.pdf", true},
		{"no extension", "timetable", true},
		{"too long", strings.Repeat("a", 300) + ".pdf", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilename(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilename(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}

func TestValidateContentType(t *testing.T) {
	if err := ValidateContentType("application/pdf"); err != nil {
		t.Errorf("expected application/pdf to be allowed: %v", err)
	}
	if err := ValidateContentType("application/x-msdownload"); err == nil {
		t.Error("expected executable content type to be rejected")
	}
	if err := ValidateContentType(""); err == nil {
		t.Error("expected empty content type to be rejected")
	}
}

type mockStorage struct {
	uploadKeys []string
	deleted    []string
}

func (m *mockStorage) UploadURL(ctx context.Context, key, contentType string, ttl time.Duration) (string, error) {
	m.uploadKeys = append(m.uploadKeys, key)
	return "http://minio/upload/" + key, nil
}

func (m *mockStorage) DownloadURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return "http://minio/download/" + key, nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *mockStorage) Health(ctx context.Context) error { return nil }

type mockScheduleRepo struct {
	created *Schedule
}

func (m *mockScheduleRepo) List(ctx context.Context, classroomID string) ([]Schedule, error) {
	return nil, nil
}

func (m *mockScheduleRepo) GetByID(ctx context.Context, id string) (*Schedule, error) {
	return nil, ErrScheduleNotFound
}

func (m *mockScheduleRepo) Create(ctx context.Context, classroomID *string, title, fileKey, contentType, uploadedBy string) (*Schedule, error) {
	m.created = &Schedule{ID: "sched-1", Title: title, FileKey: fileKey, ContentType: contentType}
	return m.created, nil
}

func (m *mockScheduleRepo) Delete(ctx context.Context, id string) error { return nil }

func TestCreateGeneratesUniqueKeyAndUploadURL(t *testing.T) {
	store := &mockStorage{}
	repo := &mockScheduleRepo{}
	svc := NewService(repo, store)

	resp, err := svc.Create(context.Background(), "admin-1", CreateScheduleRequest{
		Title:       "Fall timetable",
		Filename:    "timetable.pdf",
		ContentType: "application/pdf",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.UploadURL == "" {
		t.Error("expected an upload URL")
	}
	if !strings.HasPrefix(resp.Schedule.FileKey, "schedules/") {
		t.Errorf("expected file key under schedules/, got %s", resp.Schedule.FileKey)
	}
	if !strings.HasSuffix(resp.Schedule.FileKey, "-timetable.pdf") {
		t.Errorf("expected file key to keep the original filename, got %s", resp.Schedule.FileKey)
	}
	if len(store.uploadKeys) != 1 || store.uploadKeys[0] != resp.Schedule.FileKey {
		t.Errorf("expected presign for the stored key, got %v", store.uploadKeys)
	}
}

func TestCreateRejectsDisallowedContentType(t *testing.T) {
	svc := NewService(&mockScheduleRepo{}, &mockStorage{})

	_, err := svc.Create(context.Background(), "admin-1", CreateScheduleRequest{
		Title:       "Malware",
		Filename:    "x.exe",
		ContentType: "application/x-msdownload",
	})
	if err == nil {
		t.Fatal("expected error for disallowed content type")
	}
}
