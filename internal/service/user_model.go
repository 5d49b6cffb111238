package service

import (
	"time"

	"github.com/carson-networks/finance-flow-server/internal/storage/user"
)

// User represents a user in the service layer. The password hash never leaves
// the storage and auth code paths.
type User struct {
	Email     string
	Name      string
	CreatedAt time.Time
}

func userFromStorage(row *user.User) *User {
	return &User{
		Email:     row.Email,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}
