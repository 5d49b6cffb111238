package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-flow-server/internal/operator/actions"
	"github.com/carson-networks/finance-flow-server/internal/service"
	"github.com/carson-networks/finance-flow-server/internal/token"
)

func newDeleteTestAPI(t *testing.T, processor actionProcessor, tokens *token.Service) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDeleteTransactionHandler(processor, tokens).Register(api)
	return api
}

func TestHTTP_DeleteTransaction_Success(t *testing.T) {
	tokens := newTestTokens()

	mockProc := new(mockProcessor)
	mockProc.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		del, ok := a.(*actions.DeleteTransaction)
		return ok && del.ID == 42 && del.CallerEmail == "alice@example.com"
	})).Return(nil)

	resp := newDeleteTestAPI(t, mockProc, tokens).
		Delete("/api/transactions/42", bearerFor(t, tokens, "alice@example.com"))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DeleteTransactionResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Message)
	mockProc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_MissingToken(t *testing.T) {
	mockProc := new(mockProcessor)

	resp := newDeleteTestAPI(t, mockProc, newTestTokens()).Delete("/api/transactions/42")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockProc.AssertNotCalled(t, "Process")
}

func TestHTTP_DeleteTransaction_NotFound(t *testing.T) {
	tokens := newTestTokens()

	mockProc := new(mockProcessor)
	mockProc.On("Process", mock.Anything, mock.Anything).Return(service.ErrTransactionNotFound)

	resp := newDeleteTestAPI(t, mockProc, tokens).
		Delete("/api/transactions/999", bearerFor(t, tokens, "alice@example.com"))

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockProc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_NotOwner(t *testing.T) {
	tokens := newTestTokens()

	mockProc := new(mockProcessor)
	mockProc.On("Process", mock.Anything, mock.Anything).Return(service.ErrNotOwner)

	resp := newDeleteTestAPI(t, mockProc, tokens).
		Delete("/api/transactions/42", bearerFor(t, tokens, "mallory@example.com"))

	assert.Equal(t, http.StatusForbidden, resp.Code)
	mockProc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_ProcessorError(t *testing.T) {
	tokens := newTestTokens()

	mockProc := new(mockProcessor)
	mockProc.On("Process", mock.Anything, mock.Anything).Return(errors.New("database unavailable"))

	resp := newDeleteTestAPI(t, mockProc, tokens).
		Delete("/api/transactions/42", bearerFor(t, tokens, "alice@example.com"))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockProc.AssertExpectations(t)
}
