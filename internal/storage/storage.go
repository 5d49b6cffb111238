package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-flow-server/internal/config"
	"github.com/carson-networks/finance-flow-server/internal/storage/transaction"
	"github.com/carson-networks/finance-flow-server/internal/storage/user"
)

type Storage struct {
	DB           *sql.DB
	Users        user.IUserTable
	Transactions transaction.ITransactionTable

	bobDB bob.DB
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logrus.WithError(err).Fatal("sql.Open")
	}

	bobDB := bob.NewDB(db)

	return &Storage{
		DB:           db,
		Users:        user.NewReader(bobDB),
		Transactions: transaction.NewReader(bobDB),
		bobDB:        bobDB,
	}
}

// Write begins a database transaction and returns a Writer scoped to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
