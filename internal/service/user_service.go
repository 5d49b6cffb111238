package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/finance-flow-server/internal/storage"
)

// UserService handles user business logic.
type UserService struct {
	storage *storage.Storage
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage) *UserService {
	return &UserService{storage: store}
}

// Authenticate verifies the email/password pair. An unknown email and a wrong
// password both return ErrInvalidCredentials so callers cannot distinguish
// which failed.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*User, error) {
	row, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userFromStorage(row), nil
}

// GetByEmail retrieves a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*User, error) {
	row, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrUserNotFound
	}
	return userFromStorage(row), nil
}
