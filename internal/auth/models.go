package auth

import "classmate/internal/profile"

// LoginRequest is the request payload for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Resolved is the outcome of a successful login: an authenticated account id
// with its role
type Resolved struct {
	UserID string       `json:"user_id"`
	Email  string       `json:"email"`
	Role   profile.Role `json:"role"`
}

// LoginResponse is the response after successful authentication
type LoginResponse struct {
	UserID    string       `json:"user_id"`
	Email     string       `json:"email"`
	Role      profile.Role `json:"role"`
	SessionID string       `json:"session_id"`
}

// MeResponse describes the current session's user
type MeResponse struct {
	UserID string       `json:"user_id"`
	Email  string       `json:"email"`
	Role   profile.Role `json:"role"`
}
