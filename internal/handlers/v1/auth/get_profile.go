package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-flow-server/internal/handlers/v1/authz"
	"github.com/carson-networks/finance-flow-server/internal/service"
)

// GetProfileInput is the Huma input for fetching the caller's profile.
type GetProfileInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
}

// GetProfileOutput is the Huma output for fetching the caller's profile.
type GetProfileOutput struct {
	Body Profile
}

// profileReader looks up a user by email.
type profileReader interface {
	GetByEmail(ctx context.Context, email string) (*service.User, error)
}

// GetProfileHandler handles GET /api/auth/me.
type GetProfileHandler struct {
	Users  profileReader
	Tokens authz.TokenResolver
}

// NewGetProfileHandler creates a new GetProfileHandler.
func NewGetProfileHandler(users profileReader, tokens authz.TokenResolver) *GetProfileHandler {
	return &GetProfileHandler{Users: users, Tokens: tokens}
}

// Register registers the get-profile endpoint with the Huma API.
func (h *GetProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/api/auth/me",
		Summary:     "Get profile",
		Description: "Returns the profile of the authenticated user.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *GetProfileHandler) handle(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	email, err := authz.Subject(h.Tokens, input.Authorization)
	if err != nil {
		return nil, err
	}

	user, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "user not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch profile", err)
	}

	return &GetProfileOutput{Body: Profile{
		Email: user.Email,
		Name:  user.Name,
	}}, nil
}
