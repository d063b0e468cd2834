// Package auth converts credentials into an authenticated identity with a
// resolved role. Authentication is delegated to the identity provider; the
// role comes from probing the profile partitions in fixed priority order.
package auth

import (
	"context"
	"errors"
	"fmt"

	"classmate/internal/identity"
	"classmate/internal/profile"
)

// ErrProfileNotFound is returned when an authenticated account has no profile
// in any partition
var ErrProfileNotFound = errors.New("no profile found")

// LookupError means a partition could not be checked at all, as opposed to the
// account not being present in it. It short-circuits the remaining probes.
type LookupError struct {
	Partition string
	Err       error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("failed to check %s partition: %v", e.Partition, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Service resolves credentials into a (userID, role) pair
type Service interface {
	Login(ctx context.Context, email, password string) (*Resolved, error)
}

type service struct {
	identity identity.Provider
	dir      profile.Directory
}

// NewService creates a new auth service
func NewService(idp identity.Provider, dir profile.Directory) Service {
	return &service{
		identity: idp,
		dir:      dir,
	}
}

// Login authenticates the credentials, then walks the partition probe order
// (admins, teachers, students) strictly in sequence. Each probe runs only
// after the previous one returned "not found"; a probe failure stops the
// cascade without touching later partitions. On failure no session state is
// produced anywhere.
func (s *service) Login(ctx context.Context, email, password string) (*Resolved, error) {
	userID, err := s.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	for _, probe := range profile.ProbeOrder {
		found, err := s.dir.Exists(ctx, probe.Partition, userID)
		if err != nil {
			return nil, &LookupError{Partition: probe.Partition, Err: err}
		}
		if found {
			return &Resolved{UserID: userID, Email: email, Role: probe.Role}, nil
		}
	}

	return nil, ErrProfileNotFound
}
