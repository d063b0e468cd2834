package leaves

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"classmate/internal/database"
)

func startPostgres(t *testing.T) database.Service {
	t.Helper()

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("classmate_test"),
		postgres.WithUsername("classmate"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("could not start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("could not terminate postgres container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("could not get connection string: %v", err)
	}
	t.Setenv("DATABASE_URL", connStr)

	db := database.New()
	t.Cleanup(func() { db.Close() })

	if err := database.EnsureSchema(ctx, db); err != nil {
		t.Fatalf("could not apply schema: %v", err)
	}

	return db
}

func insertAccount(t *testing.T, db database.Service, email string) string {
	t.Helper()

	id := uuid.New().String()
	_, err := db.Exec(context.Background(),
		`INSERT INTO accounts (id, email, password_hash) VALUES ($1, $2, $3)`,
		id, email, "not-a-real-hash")
	if err != nil {
		t.Fatalf("could not insert account: %v", err)
	}
	return id
}

func TestRespondCarriesApplicantEmail(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	applicantID := insertAccount(t, db, "applicant@school.edu")
	adminID := insertAccount(t, db, "admin@school.edu")

	repo := NewRepository(db)
	created, err := repo.Create(ctx, applicantID, "student", "family event",
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("could not create leave application: %v", err)
	}

	decided, err := repo.Respond(ctx, created.ID, StatusApproved, "enjoy", adminID)
	if err != nil {
		t.Fatalf("could not respond: %v", err)
	}

	if decided.Status != StatusApproved {
		t.Errorf("expected status approved, got %s", decided.Status)
	}
	if decided.Response != "enjoy" {
		t.Errorf("expected response 'enjoy', got %q", decided.Response)
	}
	// The notification path keys on this field; a decided leave without the
	// applicant email silently disables notifications
	if decided.ApplicantEmail != "applicant@school.edu" {
		t.Errorf("expected applicant email to be populated, got %q", decided.ApplicantEmail)
	}

	if _, err := repo.Respond(ctx, created.ID, StatusRejected, "", adminID); !errors.Is(err, ErrAlreadyDecided) {
		t.Errorf("expected ErrAlreadyDecided on second decision, got %v", err)
	}
}
