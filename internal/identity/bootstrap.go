package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"classmate/internal/database"

	"github.com/google/uuid"
)

// EnsureAdmin guarantees a bootstrap admin exists: an account with the given
// credentials plus a matching row in the admins partition. Without it a fresh
// deployment has no one able to log in and create anything else.
func EnsureAdmin(ctx context.Context, db database.Service, provider Provider, email, password, name string) error {
	if email == "" || password == "" {
		return errors.New("admin email and password are required for bootstrap")
	}

	account, err := provider.GetAccountByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to check bootstrap admin: %w", err)
		}
		account, err = provider.CreateAccount(ctx, email, password)
		if err != nil {
			return fmt.Errorf("failed to create bootstrap admin account: %w", err)
		}
	}

	query := `
		INSERT INTO admins (id, account_id, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id) DO NOTHING
	`
	if _, err := db.Exec(ctx, query, uuid.New().String(), account.ID, name); err != nil {
		return fmt.Errorf("failed to ensure admin profile: %w", err)
	}

	log.Printf("Bootstrap admin ensured: %s", email)
	return nil
}
