package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// StatusInput is the (empty) Huma input for the status endpoint.
type StatusInput struct{}

// StatusResponseBody is the response body for the status endpoint.
type StatusResponseBody struct {
	Status string `json:"status" doc:"Always ok while the server is serving"`
}

// StatusOutput is the Huma output for the status endpoint.
type StatusOutput struct {
	Body StatusResponseBody
}

// Handler handles GET /api/status.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the status endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "status",
		Method:      http.MethodGet,
		Path:        "/api/status",
		Summary:     "Status",
		Description: "Reports server liveness.",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *StatusInput) (*StatusOutput, error) {
	return &StatusOutput{Body: StatusResponseBody{Status: "ok"}}, nil
}
