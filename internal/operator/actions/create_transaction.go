package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-flow-server/internal/storage"
	"github.com/carson-networks/finance-flow-server/internal/storage/transaction"
)

// CreateTransaction persists a new transaction for OwnerEmail. The owner
// always comes from the authenticated caller; client-supplied owner fields
// never reach this action.
type CreateTransaction struct {
	OwnerEmail  string
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time // defaults to now if zero

	// Created is set to the stored record, including its assigned ID, after a
	// successful Perform.
	Created *transaction.Transaction

	IAction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	date := a.Date
	if date.IsZero() {
		date = time.Now()
	}

	id, err := writer.Transactions.Insert(ctx, &transaction.TransactionCreate{
		OwnerEmail:  a.OwnerEmail,
		Amount:      a.Amount,
		Description: a.Description,
		Category:    a.Category,
		Date:        date,
	})
	if err != nil {
		return err
	}

	a.Created = &transaction.Transaction{
		ID:          id,
		OwnerEmail:  a.OwnerEmail,
		Amount:      a.Amount,
		Description: a.Description,
		Category:    a.Category,
		Date:        date,
	}
	return nil
}
