package service

import (
	"context"

	"github.com/carson-networks/finance-flow-server/internal/storage"
)

// TransactionService handles transaction read logic. Mutations go through the
// operator so they run inside a database transaction.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListByOwner returns every transaction owned by the given email in stored
// order.
func (s *TransactionService) ListByOwner(ctx context.Context, ownerEmail string) ([]Transaction, error) {
	rows, err := s.storage.Transactions.ListByOwnerEmail(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = *transactionFromStorage(row)
	}
	return converted, nil
}

// GetForOwner retrieves a transaction by ID, enforcing that the caller owns
// it. Absent rows are reported before ownership so a missing ID is always a
// not-found, never a forbidden.
func (s *TransactionService) GetForOwner(ctx context.Context, id int64, callerEmail string) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrTransactionNotFound
	}
	if err := RequireOwner(callerEmail, row.OwnerEmail); err != nil {
		return nil, err
	}
	return transactionFromStorage(row), nil
}
