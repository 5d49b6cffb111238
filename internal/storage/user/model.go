package user

import (
	"context"
	"time"
)

// User represents a user record keyed by email.
type User struct {
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Email        string
	PasswordHash string
	Name         string
}

// IUserTable defines the read interface for user storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IUserTable interface {
	// FindByEmail returns the user, or (nil, nil) when no row exists.
	FindByEmail(ctx context.Context, email string) (*User, error)
}
