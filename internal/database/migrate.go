package database

import (
	"context"
	_ "embed"
	"fmt"
	"log"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema applies the embedded schema. Every statement in schema.sql is
// idempotent, so this is safe to run on every boot.
func EnsureSchema(ctx context.Context, db Service) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	log.Println("Database schema ensured")
	return nil
}
