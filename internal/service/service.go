package service

import (
	"github.com/carson-networks/finance-flow-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Users        *UserService
	Transactions *TransactionService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Users:        NewUserService(store),
		Transactions: NewTransactionService(store),
	}
}
