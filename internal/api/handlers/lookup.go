package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/calegrey/relister/internal/engine"
	"github.com/calegrey/relister/pkg/barcode"
	domain "github.com/calegrey/relister/pkg/types"
)

// LookupHandler classifies barcodes and resolves product metadata.
type LookupHandler struct {
	resolver engine.Resolver
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(r engine.Resolver) *LookupHandler {
	return &LookupHandler{resolver: r}
}

// LookupInput is the request body for the lookup endpoint.
type LookupInput struct {
	Body struct {
		Barcode string `json:"barcode" minLength:"1" doc:"Raw scanned barcode string" example:"978-0-306-40615-7"`
	}
}

// LookupOutput is the response body for the lookup endpoint.
type LookupOutput struct {
	Body struct {
		Classification domain.BarcodeClassification `json:"classification" doc:"Normalized barcode classification"`
		Metadata       *domain.ProductMetadata      `json:"metadata,omitempty" doc:"Resolved product metadata, null when every source missed"`
		Addon          *domain.AddonInference       `json:"addon,omitempty" doc:"Magazine add-on inference, null for non-magazine items"`
	}
}

// Lookup classifies the barcode and resolves it against the configured
// metadata sources. A total source miss still returns 200 with null
// metadata.
func (h *LookupHandler) Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error) {
	bc := barcode.Normalize(input.Body.Barcode)
	if bc.Code == "" {
		return nil, huma.Error400BadRequest("barcode has no digits")
	}

	meta, err := h.resolver.Resolve(ctx, bc)
	if err != nil {
		return nil, huma.Error502BadGateway("metadata lookup failed: " + err.Error())
	}

	out := &LookupOutput{}
	out.Body.Classification = bc
	out.Body.Metadata = meta
	out.Body.Addon = engine.InferAddon(bc, meta)
	return out, nil
}

// RegisterLookupRoutes registers lookup endpoints with the Huma API.
func RegisterLookupRoutes(api huma.API, h *LookupHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "lookup-barcode",
		Method:      http.MethodPost,
		Path:        "/api/v1/lookup",
		Summary:     "Classify and resolve a barcode",
		Description: "Normalizes a raw scanned string, resolves it against book and product sources, and decodes any magazine add-on digits.",
		Tags:        []string{"lookup"},
		Errors:      []int{http.StatusBadRequest, http.StatusBadGateway},
	}, h.Lookup)
}
