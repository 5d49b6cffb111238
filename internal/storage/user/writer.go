package user

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
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

// FindByEmailForUpdate locks the row so duplicate checks and profile updates
// are serialized within the transaction.
func (w *Writer) FindByEmailForUpdate(ctx context.Context, email string) (*User, error) {
	return w.findByEmail(ctx, email, true)
}

func (w *Writer) Insert(ctx context.Context, create *UserCreate) error {
	query := psql.Insert(
		im.Into("users", "email", "password_hash", "name"),
		im.Values(psql.Arg(create.Email, create.PasswordHash, create.Name)),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}

func (w *Writer) UpdateName(ctx context.Context, email string, name string) error {
	query := psql.Update(
		um.Table("users"),
		um.SetCol("name").ToArg(name),
		um.Where(psql.Quote("email").EQ(psql.Arg(email))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
