package actions

import (
	"context"

	"github.com/carson-networks/finance-flow-server/internal/service"
	"github.com/carson-networks/finance-flow-server/internal/storage"
	"github.com/carson-networks/finance-flow-server/internal/storage/user"
)

// SignupUser creates a new user. The duplicate check and the insert share one
// transaction with the candidate row locked, so two concurrent signups for
// the same email cannot both succeed.
type SignupUser struct {
	Email        string
	PasswordHash string
	Name         string

	IAction
}

func (a *SignupUser) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Users.FindByEmailForUpdate(ctx, a.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return service.ErrDuplicateUser
	}

	return writer.Users.Insert(ctx, &user.UserCreate{
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Name:         a.Name,
	})
}
