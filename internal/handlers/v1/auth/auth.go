package auth

import (
	"context"

	"github.com/carson-networks/finance-flow-server/internal/operator/actions"
)

// Profile is the API response model for a user profile.
type Profile struct {
	Email string `json:"email" doc:"User email"`
	Name  string `json:"name" doc:"Display name"`
}

// actionProcessor runs a mutation action inside a database transaction.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// tokenIssuer creates a bearer token bound to an email.
type tokenIssuer interface {
	Issue(email string) (string, error)
}
