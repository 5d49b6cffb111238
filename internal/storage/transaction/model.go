package transaction

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record. OwnerEmail is assigned at
// creation and never changed afterwards.
type Transaction struct {
	ID          int64           `db:"id"`
	OwnerEmail  string          `db:"owner_email"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	Category    string          `db:"category"`
	Date        time.Time       `db:"transaction_date"`
	CreatedAt   time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	OwnerEmail  string
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
}

// TransactionUpdate overwrites amount, description, and category
// unconditionally; the date column is only touched when Date is set.
type TransactionUpdate struct {
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        omit.Val[time.Time]
}

// ITransactionTable defines the read interface for transaction storage
// operations. This abstraction allows swapping the implementation without
// changing callers.
type ITransactionTable interface {
	// FindByID returns the transaction, or (nil, nil) when no row exists.
	FindByID(ctx context.Context, id int64) (*Transaction, error)
	// ListByOwnerEmail returns all transactions owned by the given email in
	// stored order.
	ListByOwnerEmail(ctx context.Context, ownerEmail string) ([]*Transaction, error)
}
