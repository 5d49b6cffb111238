package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-flow-server/internal/service"
	"github.com/carson-networks/finance-flow-server/internal/token"
)

type mockProfileReader struct {
	mock.Mock
}

func (m *mockProfileReader) GetByEmail(ctx context.Context, email string) (*service.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*service.User)
	return user, args.Error(1)
}

func newGetProfileTestAPI(t *testing.T, users profileReader, tokens *token.Service) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetProfileHandler(users, tokens).Register(api)
	return api
}

func TestHTTP_GetProfile_Success(t *testing.T) {
	tokens := newTestTokens()

	mockUsers := new(mockProfileReader)
	mockUsers.On("GetByEmail", mock.Anything, "alice@example.com").
		Return(&service.User{Email: "alice@example.com", Name: "Alice"}, nil)

	resp := newGetProfileTestAPI(t, mockUsers, tokens).
		Get("/api/auth/me", bearerFor(t, tokens, "alice@example.com"))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Profile
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "alice@example.com", body.Email)
	assert.Equal(t, "Alice", body.Name)
	mockUsers.AssertExpectations(t)
}

func TestHTTP_GetProfile_MissingToken(t *testing.T) {
	mockUsers := new(mockProfileReader)

	resp := newGetProfileTestAPI(t, mockUsers, newTestTokens()).Get("/api/auth/me")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockUsers.AssertNotCalled(t, "GetByEmail")
}

func TestHTTP_GetProfile_InvalidToken(t *testing.T) {
	mockUsers := new(mockProfileReader)

	resp := newGetProfileTestAPI(t, mockUsers, newTestTokens()).
		Get("/api/auth/me", "Authorization: Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockUsers.AssertNotCalled(t, "GetByEmail")
}

func TestHTTP_GetProfile_TokenFromOtherSecret(t *testing.T) {
	tokens := newTestTokens()
	otherTokens := token.NewService("some-other-secret", time.Hour)

	resp := newGetProfileTestAPI(t, new(mockProfileReader), tokens).
		Get("/api/auth/me", bearerFor(t, otherTokens, "alice@example.com"))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_GetProfile_UserNotFound(t *testing.T) {
	tokens := newTestTokens()

	mockUsers := new(mockProfileReader)
	mockUsers.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, service.ErrUserNotFound)

	resp := newGetProfileTestAPI(t, mockUsers, tokens).
		Get("/api/auth/me", bearerFor(t, tokens, "ghost@example.com"))

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockUsers.AssertExpectations(t)
}

func TestHTTP_GetProfile_ServiceError(t *testing.T) {
	tokens := newTestTokens()

	mockUsers := new(mockProfileReader)
	mockUsers.On("GetByEmail", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newGetProfileTestAPI(t, mockUsers, tokens).
		Get("/api/auth/me", bearerFor(t, tokens, "alice@example.com"))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockUsers.AssertExpectations(t)
}
