package authz

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// TokenResolver resolves a bearer token to its subject email.
type TokenResolver interface {
	Resolve(token string) (string, error)
}

// Subject extracts the bearer token from an Authorization header value and
// resolves it to the caller's email. Every failure mode returns the same 401
// so endpoints never leak why a token was rejected.
func Subject(resolver TokenResolver, authHeader string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) {
		return "", huma.NewError(http.StatusUnauthorized, "invalid or expired token")
	}

	email, err := resolver.Resolve(strings.TrimPrefix(authHeader, prefix))
	if err != nil {
		return "", huma.NewError(http.StatusUnauthorized, "invalid or expired token")
	}
	return email, nil
}
