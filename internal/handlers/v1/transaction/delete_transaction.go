package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-flow-server/internal/handlers/v1/authz"
	"github.com/carson-networks/finance-flow-server/internal/operator/actions"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	ID            int64  `path:"id" doc:"Transaction ID"`
	Authorization string `header:"Authorization" doc:"Bearer token"`
}

// DeleteTransactionResponseBody is the response body for deleting a
// transaction.
type DeleteTransactionResponseBody struct {
	Message string `json:"message" doc:"Confirmation message"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Body DeleteTransactionResponseBody
}

// DeleteTransactionHandler handles DELETE /api/transactions/{id}.
type DeleteTransactionHandler struct {
	Processor actionProcessor
	Tokens    authz.TokenResolver
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(processor actionProcessor, tokens authz.TokenResolver) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{Processor: processor, Tokens: tokens}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/api/transactions/{id}",
		Summary:     "Delete transaction",
		Description: "Deletes a transaction owned by the authenticated user.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	email, err := authz.Subject(h.Tokens, input.Authorization)
	if err != nil {
		return nil, err
	}

	action := &actions.DeleteTransaction{
		ID:          input.ID,
		CallerEmail: email,
	}

	if err := h.Processor.Process(ctx, action); err != nil {
		return nil, mapTransactionError(err, "failed to delete transaction")
	}

	return &DeleteTransactionOutput{Body: DeleteTransactionResponseBody{
		Message: "Transaction deleted successfully",
	}}, nil
}
