package transaction

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate locks the row so ownership checks and the following
// update or delete happen against a stable record.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id int64) (*Transaction, error) {
	return w.findByID(ctx, id, true)
}

// Insert creates a new transaction and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	query := psql.Insert(
		im.Into("transactions", "owner_email", "amount", "description", "category", "transaction_date"),
		im.Values(psql.Arg(create.OwnerEmail, create.Amount, create.Description, create.Category, create.Date)),
		im.Returning("id"),
	)

	return bob.One(ctx, w.tx, query, scan.SingleColumnMapper[int64])
}

func (w *Writer) Update(ctx context.Context, id int64, update *TransactionUpdate) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("transactions"),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("category").ToArg(update.Category),
	}
	if update.Date.IsSet() {
		queryMods = append(queryMods, um.SetCol("transaction_date").ToArg(update.Date.MustGet()))
	}
	queryMods = append(queryMods, um.Where(psql.Quote("id").EQ(psql.Arg(id))))

	_, err := bob.Exec(ctx, w.tx, psql.Update(queryMods...))
	return err
}

func (w *Writer) Delete(ctx context.Context, id int64) error {
	query := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
