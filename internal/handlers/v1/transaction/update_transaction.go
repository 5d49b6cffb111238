package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-flow-server/internal/handlers/v1/authz"
	"github.com/carson-networks/finance-flow-server/internal/operator/actions"
)

// UpdateTransactionBody is the request body for updating a transaction.
// Amount, description, and category always overwrite the stored values, even
// when empty; date is only replaced when supplied.
type UpdateTransactionBody struct {
	Amount      string `json:"amount,omitempty" doc:"Signed decimal amount; empty overwrites with zero"`
	Description string `json:"description,omitempty" doc:"Free-form description; always overwrites"`
	Category    string `json:"category,omitempty" doc:"Category label; always overwrites"`
	Date        string `json:"date,omitempty" doc:"RFC3339 transaction date; omit to keep the stored date"`
	OwnerEmail  string `json:"ownerEmail,omitempty" doc:"Ignored. Ownership never changes."`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID            int64  `path:"id" doc:"Transaction ID"`
	Authorization string `header:"Authorization" doc:"Bearer token"`
	Body          UpdateTransactionBody
}

// UpdateTransactionResponseBody is the response body for updating a
// transaction.
type UpdateTransactionResponseBody struct {
	Message     string      `json:"message" doc:"Confirmation message"`
	Transaction Transaction `json:"transaction" doc:"The updated transaction"`
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Body UpdateTransactionResponseBody
}

// UpdateTransactionHandler handles PUT /api/transactions/{id}.
type UpdateTransactionHandler struct {
	Processor actionProcessor
	Tokens    authz.TokenResolver
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(processor actionProcessor, tokens authz.TokenResolver) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{Processor: processor, Tokens: tokens}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/api/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Overwrites a transaction owned by the authenticated user.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseUpdateTransactionInput parses and validates the API input. An empty
// amount overwrites the stored amount with zero, mirroring the unconditional
// overwrite of description and category; an omitted date stays unset so the
// stored date is preserved.
func parseUpdateTransactionInput(input *UpdateTransactionInput) (amount decimal.Decimal, date omit.Val[time.Time], err error) {
	if input.Body.Amount != "" {
		amount, err = decimal.NewFromString(input.Body.Amount)
		if err != nil {
			return decimal.Decimal{}, omit.Val[time.Time]{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
	}

	if input.Body.Date != "" {
		parsed, parseErr := time.Parse(time.RFC3339, input.Body.Date)
		if parseErr != nil {
			return decimal.Decimal{}, omit.Val[time.Time]{}, huma.NewError(http.StatusBadRequest, "invalid date", parseErr)
		}
		date = omit.From(parsed)
	}

	return amount, date, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	email, err := authz.Subject(h.Tokens, input.Authorization)
	if err != nil {
		return nil, err
	}

	amount, date, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateTransaction{
		ID:          input.ID,
		CallerEmail: email,
		Amount:      amount,
		Description: input.Body.Description,
		Category:    input.Body.Category,
		Date:        date,
	}

	if err := h.Processor.Process(ctx, action); err != nil {
		return nil, mapTransactionError(err, "failed to update transaction")
	}

	return &UpdateTransactionOutput{Body: UpdateTransactionResponseBody{
		Message:     "Transaction updated successfully",
		Transaction: fromStorage(action.Updated),
	}}, nil
}
