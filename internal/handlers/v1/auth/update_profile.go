package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-flow-server/internal/handlers/v1/authz"
	"github.com/carson-networks/finance-flow-server/internal/operator/actions"
	"github.com/carson-networks/finance-flow-server/internal/service"
)

// UpdateProfileBody is the request body for updating the caller's profile.
// Only recognized fields present in the request are applied.
type UpdateProfileBody struct {
	Name *string `json:"name,omitempty" doc:"New display name; omit to keep the current one"`
}

// UpdateProfileInput is the Huma input for updating the caller's profile.
type UpdateProfileInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
	Body          UpdateProfileBody
}

// UpdateProfileResponseBody is the response body for updating the profile.
type UpdateProfileResponseBody struct {
	Message string `json:"message" doc:"Confirmation message"`
	Email   string `json:"email" doc:"User email"`
	Name    string `json:"name" doc:"Display name after the update"`
}

// UpdateProfileOutput is the Huma output for updating the profile.
type UpdateProfileOutput struct {
	Body UpdateProfileResponseBody
}

// UpdateProfileHandler handles PUT /api/auth/me.
type UpdateProfileHandler struct {
	Processor actionProcessor
	Tokens    authz.TokenResolver
}

// NewUpdateProfileHandler creates a new UpdateProfileHandler.
func NewUpdateProfileHandler(processor actionProcessor, tokens authz.TokenResolver) *UpdateProfileHandler {
	return &UpdateProfileHandler{Processor: processor, Tokens: tokens}
}

// Register registers the update-profile endpoint with the Huma API.
func (h *UpdateProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPut,
		Path:        "/api/auth/me",
		Summary:     "Update profile",
		Description: "Updates the profile of the authenticated user.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *UpdateProfileHandler) handle(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error) {
	email, err := authz.Subject(h.Tokens, input.Authorization)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateUserProfile{Email: email}
	if input.Body.Name != nil {
		action.Name = omit.From(*input.Body.Name)
	}

	if err := h.Processor.Process(ctx, action); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "user not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update profile", err)
	}

	return &UpdateProfileOutput{Body: UpdateProfileResponseBody{
		Message: "Profile updated successfully",
		Email:   action.Updated.Email,
		Name:    action.Updated.Name,
	}}, nil
}
