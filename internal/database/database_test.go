package database

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func mustStartPostgresContainer() (func(context.Context, ...testcontainers.TerminateOption) error, error) {
	var (
		dbName = "classmate_test"
		dbPwd  = "password"
		dbUser = "classmate"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	connStr, err := dbContainer.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		return dbContainer.Terminate, err
	}

	os.Setenv("DATABASE_URL", connStr)

	return dbContainer.Terminate, nil
}

func TestMain(m *testing.M) {
	teardown, err := mustStartPostgresContainer()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	code := m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatalf("could not teardown postgres container: %v", err)
		}
	}

	os.Exit(code)
}

func TestNew(t *testing.T) {
	srv := New()
	if srv == nil {
		t.Fatal("New() returned nil")
	}
	defer srv.Close()
}

func TestHealth(t *testing.T) {
	srv := New()
	defer srv.Close()

	stats := srv.Health()
	if stats["status"] != "up" {
		t.Fatalf("expected status up, got %s (%s)", stats["status"], stats["error"])
	}
	if stats["error"] != "" {
		t.Errorf("expected no error, got %s", stats["error"])
	}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	srv := New()
	defer srv.Close()

	ctx := context.Background()
	if err := EnsureSchema(ctx, srv); err != nil {
		t.Fatalf("first EnsureSchema failed: %v", err)
	}
	if err := EnsureSchema(ctx, srv); err != nil {
		t.Fatalf("second EnsureSchema failed: %v", err)
	}

	// The schema should be usable right away
	if _, err := srv.Exec(ctx,
		`INSERT INTO classrooms (id, name, section, year) VALUES (gen_random_uuid(), 'Grade 5', 'A', 2026)`); err != nil {
		t.Fatalf("insert into classrooms failed: %v", err)
	}

	var count int
	if err := srv.QueryRow(ctx, `SELECT COUNT(*) FROM classrooms`).Scan(&count); err != nil {
		t.Fatalf("count classrooms failed: %v", err)
	}
	if count < 1 {
		t.Errorf("expected at least one classroom, got %d", count)
	}
}

func TestClose(t *testing.T) {
	srv := New()
	if err := srv.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}
}
