package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-flow-server/internal/handlers/v1/authz"
	"github.com/carson-networks/finance-flow-server/internal/logging"
	"github.com/carson-networks/finance-flow-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
}

// ListTransactionsOutput is the Huma output for listing transactions. The
// body is a bare array of the caller's transactions in stored order.
type ListTransactionsOutput struct {
	Body []Transaction
}

// transactionLister is the interface for listing a user's transactions.
type transactionLister interface {
	ListByOwner(ctx context.Context, ownerEmail string) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /api/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
	Tokens             authz.TokenResolver
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister, tokens authz.TokenResolver) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc, Tokens: tokens}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/api/transactions",
		Summary:     "List transactions",
		Description: "Returns all transactions owned by the authenticated user.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	email, err := authz.Subject(h.Tokens, input.Authorization)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListByOwner(ctx, email)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	body := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		body[i] = fromService(tx)
	}

	return &ListTransactionsOutput{Body: body}, nil
}
