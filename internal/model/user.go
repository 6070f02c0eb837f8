package model

import (
	"errors"
	"time"
)

// User represents a registered account.
type User struct {
	ID             string    `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	PasswordHashed string    `db:"password_hashed" json:"-"` // "-" hides from JSON output
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// RegisterRequest represents the data needed to register a new account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the data needed to log in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
}

var (
	// ErrUserNotFound is returned when an account cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists is returned when registering with a taken email
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login credentials are incorrect
	ErrInvalidCredentials = errors.New("invalid credentials")
)
