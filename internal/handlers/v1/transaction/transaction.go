package transaction

import (
	"context"
	"time"

	"github.com/carson-networks/finance-flow-server/internal/operator/actions"
	"github.com/carson-networks/finance-flow-server/internal/service"
	storagetx "github.com/carson-networks/finance-flow-server/internal/storage/transaction"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          int64  `json:"id" doc:"Transaction ID"`
	Amount      string `json:"amount" doc:"Signed decimal amount"`
	Description string `json:"description" doc:"Free-form description"`
	Category    string `json:"category" doc:"Category label"`
	Date        string `json:"date" doc:"RFC3339 transaction date"`
	OwnerEmail  string `json:"ownerEmail" doc:"Email of the owning user"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		Amount:      tx.Amount.String(),
		Description: tx.Description,
		Category:    tx.Category,
		Date:        tx.Date.Format(time.RFC3339),
		OwnerEmail:  tx.OwnerEmail,
	}
}

func fromStorage(row *storagetx.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		Amount:      row.Amount.String(),
		Description: row.Description,
		Category:    row.Category,
		Date:        row.Date.Format(time.RFC3339),
		OwnerEmail:  row.OwnerEmail,
	}
}

// actionProcessor runs a mutation action inside a database transaction.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
