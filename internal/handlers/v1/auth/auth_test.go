package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-flow-server/internal/operator/actions"
	"github.com/carson-networks/finance-flow-server/internal/token"
)

// mockProcessor is a mock for actionProcessor.
type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newTestTokens() *token.Service {
	return token.NewService("test-secret", time.Hour)
}

func bearerFor(t *testing.T, tokens *token.Service, email string) string {
	t.Helper()
	signed, err := tokens.Issue(email)
	assert.NoError(t, err)
	return "Authorization: Bearer " + signed
}
