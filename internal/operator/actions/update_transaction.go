package actions

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-flow-server/internal/service"
	"github.com/carson-networks/finance-flow-server/internal/storage"
	"github.com/carson-networks/finance-flow-server/internal/storage/transaction"
)

// UpdateTransaction overwrites a transaction owned by CallerEmail. Amount,
// description, and category are replaced unconditionally; the date only when
// the request supplied one.
type UpdateTransaction struct {
	ID          int64
	CallerEmail string
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        omit.Val[time.Time]

	// Updated is set to the resulting record after a successful Perform.
	Updated *transaction.Transaction

	IAction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
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

	err = writer.Transactions.Update(ctx, a.ID, &transaction.TransactionUpdate{
		Amount:      a.Amount,
		Description: a.Description,
		Category:    a.Category,
		Date:        a.Date,
	})
	if err != nil {
		return err
	}

	row.Amount = a.Amount
	row.Description = a.Description
	row.Category = a.Category
	if a.Date.IsSet() {
		row.Date = a.Date.MustGet()
	}
	a.Updated = row
	return nil
}
