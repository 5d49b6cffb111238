package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/finance-flow-server/internal/operator/actions"
	"github.com/carson-networks/finance-flow-server/internal/service"
)

// SignupBody is the request body for creating a user.
type SignupBody struct {
	Email    string `json:"email" required:"true" doc:"User email, unique"`
	Password string `json:"password" required:"true" doc:"Plaintext password, stored as a bcrypt hash"`
	Name     string `json:"name" required:"true" doc:"Display name"`
}

// SignupInput is the Huma input for signup.
type SignupInput struct {
	Body SignupBody
}

// SignupResponseBody is the response body for signup.
type SignupResponseBody struct {
	Message string `json:"message" doc:"Confirmation message"`
	Token   string `json:"token" doc:"Bearer token for the new user"`
	Email   string `json:"email" doc:"User email"`
	Name    string `json:"name" doc:"Display name"`
}

// SignupOutput is the Huma output for signup.
type SignupOutput struct {
	Body SignupResponseBody
}

// SignupHandler handles POST /api/auth/signup.
type SignupHandler struct {
	Processor actionProcessor
	Tokens    tokenIssuer
}

// NewSignupHandler creates a new SignupHandler.
func NewSignupHandler(processor actionProcessor, tokens tokenIssuer) *SignupHandler {
	return &SignupHandler{Processor: processor, Tokens: tokens}
}

// Register registers the signup endpoint with the Huma API.
func (h *SignupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "signup",
		Method:      http.MethodPost,
		Path:        "/api/auth/signup",
		Summary:     "Sign up",
		Description: "Creates a new user and returns a bearer token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *SignupHandler) handle(ctx context.Context, input *SignupInput) (*SignupOutput, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create user", err)
	}

	action := &actions.SignupUser{
		Email:        input.Body.Email,
		PasswordHash: string(hash),
		Name:         input.Body.Name,
	}

	if err := h.Processor.Process(ctx, action); err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			return nil, huma.NewError(http.StatusBadRequest, "user already exists")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create user", err)
	}

	signedToken, err := h.Tokens.Issue(input.Body.Email)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to issue token", err)
	}

	return &SignupOutput{Body: SignupResponseBody{
		Message: "User created successfully",
		Token:   signedToken,
		Email:   input.Body.Email,
		Name:    input.Body.Name,
	}}, nil
}
