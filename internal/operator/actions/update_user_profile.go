package actions

import (
	"context"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/finance-flow-server/internal/service"
	"github.com/carson-networks/finance-flow-server/internal/storage"
	"github.com/carson-networks/finance-flow-server/internal/storage/user"
)

// UpdateUserProfile applies the recognized optional profile fields. Fields
// absent from the request leave the stored values untouched.
type UpdateUserProfile struct {
	Email string
	Name  omit.Val[string]

	// Updated is set to the resulting record after a successful Perform.
	Updated *user.User

	IAction
}

func (a *UpdateUserProfile) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Users.FindByEmailForUpdate(ctx, a.Email)
	if err != nil {
		return err
	}
	if row == nil {
		return service.ErrUserNotFound
	}

	if a.Name.IsSet() {
		row.Name = a.Name.MustGet()
		if err := writer.Users.UpdateName(ctx, a.Email, row.Name); err != nil {
			return err
		}
	}

	a.Updated = row
	return nil
}
