package user

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

var _ IUserTable = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findByEmail(ctx, email, false)
}

func (r *Reader) findByEmail(ctx context.Context, email string, forUpdate bool) (*User, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("email", "password_hash", "name", "created_at"),
		sm.From("users"),
		sm.Where(psql.Quote("email").EQ(psql.Arg(email))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*User]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}
