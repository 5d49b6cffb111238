package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-flow-server/internal/service"
)

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email" required:"true" doc:"User email"`
	Password string `json:"password" required:"true" doc:"Plaintext password"`
}

// LoginInput is the Huma input for login.
type LoginInput struct {
	Body LoginBody
}

// LoginResponseBody is the response body for login.
type LoginResponseBody struct {
	Token string `json:"token" doc:"Fresh bearer token"`
	Email string `json:"email" doc:"User email"`
	Name  string `json:"name" doc:"Display name"`
}

// LoginOutput is the Huma output for login.
type LoginOutput struct {
	Body LoginResponseBody
}

// authenticator verifies an email/password pair.
type authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*service.User, error)
}

// LoginHandler handles POST /api/auth/login.
type LoginHandler struct {
	Users  authenticator
	Tokens tokenIssuer
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(users authenticator, tokens tokenIssuer) *LoginHandler {
	return &LoginHandler{Users: users, Tokens: tokens}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Log in",
		Description: "Verifies credentials and returns a fresh bearer token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := h.Users.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, huma.NewError(http.StatusUnauthorized, "invalid credentials")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to log in", err)
	}

	signedToken, err := h.Tokens.Issue(user.Email)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to issue token", err)
	}

	return &LoginOutput{Body: LoginResponseBody{
		Token: signedToken,
		Email: user.Email,
		Name:  user.Name,
	}}, nil
}
