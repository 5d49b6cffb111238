package actions

import (
	"context"

	"github.com/carson-networks/finance-flow-server/internal/service"
	"github.com/carson-networks/finance-flow-server/internal/storage"
)

// DeleteTransaction removes a transaction owned by CallerEmail.
type DeleteTransaction struct {
	ID          int64
	CallerEmail string

	IAction
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.FindByIDForUpdate(ctx, a.ID)
	if err != nil {
		return err
	}
	if row == nil {
		return service.ErrTransactionNotFound
	}
	if err := service.RequireOwner(a.CallerEmail, row.OwnerEmail); err != nil {
		return err
	}

	return writer.Transactions.Delete(ctx, a.ID)
}
