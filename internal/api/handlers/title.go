package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/calegrey/relister/pkg/title"
	domain "github.com/calegrey/relister/pkg/types"
)

// TitleHandler builds listing titles from structured item fields.
type TitleHandler struct{}

// NewTitleHandler creates a new TitleHandler.
func NewTitleHandler() *TitleHandler {
	return &TitleHandler{}
}

// TitleInput is the request body for the title endpoint.
type TitleInput struct {
	Body struct {
		Item  domain.ItemFields        `json:"item" doc:"Structured item fields"`
		Prefs *domain.TitlePreferences `json:"prefs,omitempty" doc:"Account-level keyword preferences"`
	}
}

// TitleOutput is the response body for the title endpoint.
type TitleOutput struct {
	Body struct {
		Title  string `json:"title" doc:"Assembled listing title"`
		Length int    `json:"length" doc:"Title length in characters"`
	}
}

// BuildTitle assembles a marketplace-compliant title. The build is
// deterministic: the same input always yields the same title.
func (*TitleHandler) BuildTitle(_ context.Context, input *TitleInput) (*TitleOutput, error) {
	built := title.Build(input.Body.Item, input.Body.Prefs)

	out := &TitleOutput{}
	out.Body.Title = built
	out.Body.Length = len(built)
	return out, nil
}

// RegisterTitleRoutes registers title endpoints with the Huma API.
func RegisterTitleRoutes(api huma.API, h *TitleHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "build-title",
		Method:      http.MethodPost,
		Path:        "/api/v1/title",
		Summary:     "Build a listing title",
		Description: "Assembles an 80-character-capped listing title from structured item fields and keyword preferences.",
		Tags:        []string{"titles"},
	}, h.BuildTitle)
}
