package complaints

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

func TestResolveCarriesAuthorEmail(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	authorID := insertAccount(t, db, "author@school.edu")
	adminID := insertAccount(t, db, "admin@school.edu")

	repo := NewRepository(db)
	created, err := repo.Create(ctx, authorID, "teacher", "Broken projector", "Room 12 projector has no signal.")
	if err != nil {
		t.Fatalf("could not create complaint: %v", err)
	}

	resolved, err := repo.Resolve(ctx, created.ID, "Replaced the cable.", adminID)
	if err != nil {
		t.Fatalf("could not resolve: %v", err)
	}

	if resolved.Status != StatusResolved {
		t.Errorf("expected status resolved, got %s", resolved.Status)
	}
	if resolved.Response != "Replaced the cable." {
		t.Errorf("expected response to be recorded, got %q", resolved.Response)
	}
	// The notification path keys on this field; a resolved complaint without
	// the author email silently disables notifications
	if resolved.AuthorEmail != "author@school.edu" {
		t.Errorf("expected author email to be populated, got %q", resolved.AuthorEmail)
	}

	if _, err := repo.Resolve(ctx, created.ID, "Again.", adminID); !errors.Is(err, ErrAlreadyResolved) {
		t.Errorf("expected ErrAlreadyResolved on second resolution, got %v", err)
	}
}
