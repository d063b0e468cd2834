package session

import (
	"time"

	"classmate/internal/profile"
)

// Session represents a logged-in user with a resolved role
type Session struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Email     string       `json:"email"`
	Role      profile.Role `json:"role"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}
