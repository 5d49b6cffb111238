package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-flow-server/internal/operator/actions"
	storagetx "github.com/carson-networks/finance-flow-server/internal/storage/transaction"
	"github.com/carson-networks/finance-flow-server/internal/token"
)

func newCreateTestAPI(t *testing.T, processor actionProcessor, tokens *token.Service) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(processor, tokens).Register(api)
	return api
}

// stampCreated populates the action result the way a successful Perform would.
func stampCreated(id int64) func(mock.Arguments) {
	return func(args mock.Arguments) {
		action := args.Get(1).(*actions.CreateTransaction)
		date := action.Date
		if date.IsZero() {
			date = time.Now()
		}
		action.Created = &storagetx.Transaction{
			ID:          id,
			OwnerEmail:  action.OwnerEmail,
			Amount:      action.Amount,
			Description: action.Description,
			Category:    action.Category,
			Date:        date,
		}
	}
}

// -- parseCreateTransactionInput unit tests --
// These verify individual parsed field values which the HTTP tests don't assert.

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Amount: "123.45",
			Date:   "2026-01-15T10:30:00Z",
		},
	}

	amount, date, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("123.45")))
	expectedDate, _ := time.Parse(time.RFC3339, "2026-01-15T10:30:00Z")
	assert.True(t, date.Equal(expectedDate))
}

func TestParseCreateTransactionInput_WithoutDate(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{Amount: "-99.99"},
	}

	amount, date, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("-99.99")))
	assert.True(t, date.IsZero())
}

func TestParseCreateTransactionInput_InvalidAmount(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{Amount: "not-a-decimal"},
	}

	_, _, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

func TestParseCreateTransactionInput_InvalidDate(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{Amount: "10.00", Date: "not-a-date"},
	}

	_, _, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	tokens := newTestTokens()
	txDate := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	mockProc := new(mockProcessor)
	mockProc.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateTransaction)
		return ok &&
			create.OwnerEmail == "alice@example.com" &&
			create.Amount.Equal(decimal.RequireFromString("12.50")) &&
			create.Description == "Coffee" &&
			create.Category == "food" &&
			create.Date.Equal(txDate)
	})).Run(stampCreated(42)).Return(nil)

	resp := newCreateTestAPI(t, mockProc, tokens).Post("/api/transactions",
		bearerFor(t, tokens, "alice@example.com"),
		CreateTransactionBody{
			Amount:      "12.50",
			Description: "Coffee",
			Category:    "food",
			Date:        txDate.Format(time.RFC3339),
		},
	)

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(42), body.ID)
	assert.Equal(t, "12.50", body.Amount)
	assert.Equal(t, "Coffee", body.Description)
	assert.Equal(t, "food", body.Category)
	assert.Equal(t, "alice@example.com", body.OwnerEmail)
	mockProc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_OwnerComesFromToken(t *testing.T) {
	tokens := newTestTokens()

	// A client-supplied ownerEmail never reaches the action.
	mockProc := new(mockProcessor)
	mockProc.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateTransaction)
		return ok && create.OwnerEmail == "alice@example.com"
	})).Run(stampCreated(7)).Return(nil)

	resp := newCreateTestAPI(t, mockProc, tokens).Post("/api/transactions",
		bearerFor(t, tokens, "alice@example.com"),
		CreateTransactionBody{
			Amount:     "5.00",
			OwnerEmail: "mallory@example.com",
		},
	)

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "alice@example.com", body.OwnerEmail)
	mockProc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_DateDefaultsWhenOmitted(t *testing.T) {
	tokens := newTestTokens()

	mockProc := new(mockProcessor)
	mockProc.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateTransaction)
		return ok && create.Date.IsZero()
	})).Run(stampCreated(7)).Return(nil)

	resp := newCreateTestAPI(t, mockProc, tokens).Post("/api/transactions",
		bearerFor(t, tokens, "alice@example.com"),
		CreateTransactionBody{Amount: "5.00"},
	)

	assert.Equal(t, http.StatusCreated, resp.Code)
	mockProc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingToken(t *testing.T) {
	mockProc := new(mockProcessor)

	resp := newCreateTestAPI(t, mockProc, newTestTokens()).Post("/api/transactions",
		CreateTransactionBody{Amount: "5.00"},
	)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockProc.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_MissingAmount(t *testing.T) {
	tokens := newTestTokens()
	mockProc := new(mockProcessor)

	// Huma schema validation rejects the request before the handler runs.
	resp := newCreateTestAPI(t, mockProc, tokens).Post("/api/transactions",
		bearerFor(t, tokens, "alice@example.com"),
		map[string]any{"description": "no amount"},
	)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockProc.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	tokens := newTestTokens()
	mockProc := new(mockProcessor)

	// Amount is a plain string with no Huma format tag, so
	// parseCreateTransactionInput handles validation and returns 400.
	resp := newCreateTestAPI(t, mockProc, tokens).Post("/api/transactions",
		bearerFor(t, tokens, "alice@example.com"),
		CreateTransactionBody{Amount: "not-a-decimal"},
	)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockProc.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_InvalidDate(t *testing.T) {
	tokens := newTestTokens()
	mockProc := new(mockProcessor)

	resp := newCreateTestAPI(t, mockProc, tokens).Post("/api/transactions",
		bearerFor(t, tokens, "alice@example.com"),
		CreateTransactionBody{Amount: "10.00", Date: "not-a-date"},
	)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockProc.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_ProcessorError(t *testing.T) {
	tokens := newTestTokens()

	mockProc := new(mockProcessor)
	mockProc.On("Process", mock.Anything, mock.Anything).Return(errors.New("database unavailable"))

	resp := newCreateTestAPI(t, mockProc, tokens).Post("/api/transactions",
		bearerFor(t, tokens, "alice@example.com"),
		CreateTransactionBody{Amount: "10.00"},
	)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockProc.AssertExpectations(t)
}
