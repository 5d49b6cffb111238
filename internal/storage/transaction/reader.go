package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func selectColumns() bob.Mod[*dialect.SelectQuery] {
	return sm.Columns("id", "owner_email", "amount", "description", "category", "transaction_date", "created_at")
}

func (r *Reader) FindByID(ctx context.Context, id int64) (*Transaction, error) {
	return r.findByID(ctx, id, false)
}

func (r *Reader) findByID(ctx context.Context, id int64, forUpdate bool) (*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		selectColumns(),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Reader) ListByOwnerEmail(ctx context.Context, ownerEmail string) ([]*Transaction, error) {
	query := psql.Select(
		selectColumns(),
		sm.From("transactions"),
		sm.Where(psql.Quote("owner_email").EQ(psql.Arg(ownerEmail))),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)

	return bob.All(ctx, r.exec, query, scan.StructMapper[*Transaction]())
}
