package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-flow-server/internal/handlers/v1/authz"
	"github.com/carson-networks/finance-flow-server/internal/operator/actions"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Amount      string `json:"amount" required:"true" doc:"Signed decimal amount"`
	Description string `json:"description,omitempty" doc:"Free-form description"`
	Category    string `json:"category,omitempty" doc:"Category label"`
	Date        string `json:"date,omitempty" doc:"RFC3339 transaction date, defaults to now"`
	OwnerEmail  string `json:"ownerEmail,omitempty" doc:"Ignored. The owner is always derived from the bearer token."`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
	Body          CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

// CreateTransactionHandler handles POST /api/transactions.
type CreateTransactionHandler struct {
	Processor actionProcessor
	Tokens    authz.TokenResolver
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(processor actionProcessor, tokens authz.TokenResolver) *CreateTransactionHandler {
	return &CreateTransactionHandler{Processor: processor, Tokens: tokens}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/api/transactions",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction owned by the authenticated user.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input. A missing
// date stays zero so the action can default it to creation time.
func parseCreateTransactionInput(input *CreateTransactionInput) (amount decimal.Decimal, date time.Time, err error) {
	amount, err = decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return decimal.Decimal{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	if input.Body.Date != "" {
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return decimal.Decimal{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	return amount, date, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	email, err := authz.Subject(h.Tokens, input.Authorization)
	if err != nil {
		return nil, err
	}

	amount, date, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{
		OwnerEmail:  email,
		Amount:      amount,
		Description: input.Body.Description,
		Category:    input.Body.Category,
		Date:        date,
	}

	if err := h.Processor.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	return &CreateTransactionOutput{Body: fromStorage(action.Created)}, nil
}
