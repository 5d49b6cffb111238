package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-flow-server/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          int64
	OwnerEmail  string
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
	CreatedAt   time.Time
}

func transactionFromStorage(row *transaction.Transaction) *Transaction {
	return &Transaction{
		ID:          row.ID,
		OwnerEmail:  row.OwnerEmail,
		Amount:      row.Amount,
		Description: row.Description,
		Category:    row.Category,
		Date:        row.Date,
		CreatedAt:   row.CreatedAt,
	}
}
