package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-flow-server/internal/handlers/v1/authz"
	"github.com/carson-networks/finance-flow-server/internal/service"
)

// GetTransactionInput is the Huma input for fetching one transaction.
type GetTransactionInput struct {
	ID            int64  `path:"id" doc:"Transaction ID"`
	Authorization string `header:"Authorization" doc:"Bearer token"`
}

// GetTransactionOutput is the Huma output for fetching one transaction.
type GetTransactionOutput struct {
	Body Transaction
}

// transactionGetter fetches one transaction with the ownership check applied.
type transactionGetter interface {
	GetForOwner(ctx context.Context, id int64, callerEmail string) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /api/transactions/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
	Tokens             authz.TokenResolver
}

// NewGetTransactionHandler creates a new GetTransactionHandler.
func NewGetTransactionHandler(svc transactionGetter, tokens authz.TokenResolver) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc, Tokens: tokens}
}

// Register registers the get transaction endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/api/transactions/{id}",
		Summary:     "Get transaction",
		Description: "Returns one transaction owned by the authenticated user.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	email, err := authz.Subject(h.Tokens, input.Authorization)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.GetForOwner(ctx, input.ID, email)
	if err != nil {
		return nil, mapTransactionError(err, "failed to fetch transaction")
	}

	return &GetTransactionOutput{Body: fromService(*tx)}, nil
}

// mapTransactionError converts the domain error taxonomy to HTTP statuses: a
// missing row is 404, an ownership mismatch 403, anything else 500.
func mapTransactionError(err error, internalMessage string) error {
	switch {
	case errors.Is(err, service.ErrTransactionNotFound):
		return huma.NewError(http.StatusNotFound, "transaction not found")
	case errors.Is(err, service.ErrNotOwner):
		return huma.NewError(http.StatusForbidden, "not authorized for this transaction")
	default:
		return huma.NewError(http.StatusInternalServerError, internalMessage, err)
	}
}
