package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/calegrey/relister/internal/engine"
	"github.com/calegrey/relister/internal/notify"
	domain "github.com/calegrey/relister/pkg/types"
)

// BatchRunner runs a barcode batch through the assembly pipeline.
type BatchRunner interface {
	Run(ctx context.Context, req engine.BatchRequest) (notify.BatchSummary, error)
}

// BatchHandler handles batch assembly requests.
type BatchHandler struct {
	runner BatchRunner
}

// NewBatchHandler creates a new BatchHandler.
func NewBatchHandler(r BatchRunner) *BatchHandler {
	return &BatchHandler{runner: r}
}

// BatchInput is the request body for the batch endpoint.
type BatchInput struct {
	Body struct {
		Barcodes  []string                 `json:"barcodes" minItems:"1" maxItems:"100" doc:"Raw barcode strings to process in order"`
		Condition string                   `json:"condition,omitempty" doc:"Item condition applied to every barcode"`
		Prefs     *domain.TitlePreferences `json:"prefs,omitempty" doc:"Account-level keyword preferences"`
	}
}

// BatchOutput is the response body for the batch endpoint.
type BatchOutput struct {
	Body notify.BatchSummary
}

// RunBatch processes the barcodes sequentially and returns the per-item
// outcomes. Item failures are recorded in the summary, not surfaced as
// HTTP errors.
func (h *BatchHandler) RunBatch(ctx context.Context, input *BatchInput) (*BatchOutput, error) {
	summary, err := h.runner.Run(ctx, engine.BatchRequest{
		Barcodes:  input.Body.Barcodes,
		Condition: input.Body.Condition,
		Prefs:     input.Body.Prefs,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("batch run failed: " + err.Error())
	}

	return &BatchOutput{Body: summary}, nil
}

// RegisterBatchRoutes registers batch endpoints with the Huma API.
func RegisterBatchRoutes(api huma.API, h *BatchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "run-batch",
		Method:      http.MethodPost,
		Path:        "/api/v1/batch",
		Summary:     "Assemble drafts for a batch of barcodes",
		Description: "Processes the barcodes sequentially, continuing past per-item failures, and returns the per-item outcomes.",
		Tags:        []string{"batch"},
	}, h.RunBatch)
}
