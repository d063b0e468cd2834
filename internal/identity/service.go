// Package identity implements email/password authentication against the
// accounts table. It only answers "who is this"; role resolution is the auth
// package's job.
package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"classmate/internal/database"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials is returned when the email or password is wrong
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountDisabled is returned when the account exists but is disabled
	ErrAccountDisabled = errors.New("account is disabled")
	// ErrEmailExists is returned when an account with the email already exists
	ErrEmailExists = errors.New("email already registered")
)

// Account is a row in the accounts table
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Disabled     bool      `json:"disabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Provider authenticates credentials and yields the account id
type Provider interface {
	SignIn(ctx context.Context, email, password string) (string, error)
	CreateAccount(ctx context.Context, email, password string) (*Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
}

type provider struct {
	db database.Service
}

// NewProvider creates a Postgres-backed identity provider
func NewProvider(db database.Service) Provider {
	return &provider{db: db}
}

// SignIn verifies the credentials and returns the account id. A missing
// account and a wrong password both map to ErrInvalidCredentials so the
// response does not leak which emails are registered.
func (p *provider) SignIn(ctx context.Context, email, password string) (string, error) {
	account, err := p.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up account: %w", err)
	}

	if account.Disabled {
		return "", ErrAccountDisabled
	}

	if err := CheckPassword(account.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return account.ID, nil
}

// GetAccountByEmail retrieves an account by email
func (p *provider) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	query := `
		SELECT id, email, password_hash, disabled, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`

	var account Account
	row := p.db.QueryRow(ctx, query, email)

	err := row.Scan(&account.ID, &account.Email, &account.PasswordHash, &account.Disabled, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// CreateAccount creates a new account with a hashed password
func (p *provider) CreateAccount(ctx context.Context, email, password string) (*Account, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &Account{
		ID:    uuid.New().String(),
		Email: email,
	}

	query := `
		INSERT INTO accounts (id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, email, password_hash, disabled, created_at, updated_at
	`

	row := p.db.QueryRow(ctx, query, account.ID, email, hash)

	var created Account
	err = row.Scan(&created.ID, &created.Email, &created.PasswordHash, &created.Disabled, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "accounts_email_key") {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	log.Printf("Created account %s (ID: %s)", created.Email, created.ID)

	return &created, nil
}
