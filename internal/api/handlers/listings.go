package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/calegrey/relister/internal/engine"
	"github.com/calegrey/relister/internal/store"
	domain "github.com/calegrey/relister/pkg/types"
)

// ListingsHandler handles draft creation and query endpoints.
type ListingsHandler struct {
	store     store.Store
	assembler engine.DraftAssembler
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(s store.Store, a engine.DraftAssembler) *ListingsHandler {
	return &ListingsHandler{store: s, assembler: a}
}

// --- Input/Output types ---

// CreateListingInput is the request body for assembling a new draft.
type CreateListingInput struct {
	Body struct {
		Barcode   string                   `json:"barcode" minLength:"1" doc:"Raw scanned barcode string" example:"9780306406157"`
		Condition string                   `json:"condition,omitempty" doc:"Item condition for the description" example:"Good"`
		Prefs     *domain.TitlePreferences `json:"prefs,omitempty" doc:"Account-level keyword preferences"`
	}
}

// CreateListingOutput is the response for a newly assembled draft.
type CreateListingOutput struct {
	Body domain.ListingDraft
}

// ListListingsInput is the input for listing drafts with optional filters.
type ListListingsInput struct {
	Kind    string `query:"kind"     doc:"Filter by barcode kind"         enum:"isbn13,isbn10,upca,ean13_magazine,unknown,"`
	Search  string `query:"search"   doc:"Case-insensitive title search"`
	Limit   int    `query:"limit"    doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
	Offset  int    `query:"offset"   doc:"Pagination offset"              minimum:"0"`
	OrderBy string `query:"order_by" doc:"Sort field"                     enum:"created_at,price,title,"`
}

// ListListingsOutput is the response for listing drafts.
type ListListingsOutput struct {
	Body struct {
		Drafts []domain.ListingDraft `json:"drafts"`
		Total  int                   `json:"total"`
		Limit  int                   `json:"limit"`
		Offset int                   `json:"offset"`
	}
}

// GetListingInput is the input for getting a single draft.
type GetListingInput struct {
	ID string `path:"id" doc:"Draft UUID"`
}

// GetListingOutput is the response for getting a single draft.
type GetListingOutput struct {
	Body domain.ListingDraft
}

// DeleteListingInput is the input for deleting a draft.
type DeleteListingInput struct {
	ID string `path:"id" doc:"Draft UUID"`
}

// --- Handlers ---

// CreateListing runs the assembly pipeline for one barcode and returns
// the persisted draft.
func (h *ListingsHandler) CreateListing(
	ctx context.Context,
	input *CreateListingInput,
) (*CreateListingOutput, error) {
	draft, err := h.assembler.Assemble(ctx, engine.AssembleRequest{
		Barcode:   input.Body.Barcode,
		Condition: input.Body.Condition,
		Prefs:     input.Body.Prefs,
	})
	if err != nil {
		if errors.Is(err, engine.ErrUnusableBarcode) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, huma.Error500InternalServerError("assembling draft failed: " + err.Error())
	}

	return &CreateListingOutput{Body: *draft}, nil
}

// ListListings returns drafts with optional filters for barcode kind,
// title search, and pagination.
func (h *ListingsHandler) ListListings(
	ctx context.Context,
	input *ListListingsInput,
) (*ListListingsOutput, error) {
	q := &store.DraftQuery{
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Kind != "" {
		q.Kind = &input.Kind
	}

	if input.Search != "" {
		q.Search = &input.Search
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	drafts, total, err := h.store.ListDrafts(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("draft query failed: " + err.Error())
	}

	resp := &ListListingsOutput{}
	resp.Body.Drafts = drafts
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetListing returns a single draft by ID.
func (h *ListingsHandler) GetListing(
	ctx context.Context,
	input *GetListingInput,
) (*GetListingOutput, error) {
	draft, err := h.store.GetDraft(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("draft not found")
	}

	return &GetListingOutput{Body: *draft}, nil
}

// DeleteListing removes a draft by ID.
func (h *ListingsHandler) DeleteListing(
	ctx context.Context,
	input *DeleteListingInput,
) (*struct{}, error) {
	if err := h.store.DeleteDraft(ctx, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("draft not found")
		}
		return nil, huma.Error500InternalServerError("deleting draft failed: " + err.Error())
	}
	return nil, nil
}

// RegisterListingRoutes registers draft endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-listing",
		Method:        http.MethodPost,
		Path:          "/api/v1/listings",
		Summary:       "Assemble a listing draft",
		Description:   "Runs the full pipeline for one barcode: classification, metadata resolution, price comps, title, and description.",
		Tags:          []string{"listings"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest},
	}, h.CreateListing)

	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List listing drafts",
		Description: "Returns drafts with optional filters for barcode kind, title search, and pagination.",
		Tags:        []string{"listings"},
	}, h.ListListings)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get a listing draft by ID",
		Description: "Returns a single draft by its UUID.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetListing)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-listing",
		Method:        http.MethodDelete,
		Path:          "/api/v1/listings/{id}",
		Summary:       "Delete a listing draft",
		Description:   "Removes a draft by its UUID.",
		Tags:          []string{"listings"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteListing)
}
