package actions

import (
	"context"

	"github.com/carson-networks/finance-flow-server/internal/storage"
)

// IAction is a single unit of mutation performed inside one database
// transaction. Actions carry their inputs as fields and may expose results
// through fields set during Perform.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
