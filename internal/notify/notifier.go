// Package notify defines the notification interface and implementations
// for batch completion delivery.
package notify

import (
	"context"
	"time"
)

// BatchItemResult describes the outcome of a single barcode in a batch.
type BatchItemResult struct {
	Barcode string  `json:"barcode"`
	DraftID string  `json:"draft_id,omitempty"`
	Title   string  `json:"title,omitempty"`
	Price   float64 `json:"price,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// BatchSummary contains the data needed to report a completed batch run.
type BatchSummary struct {
	BatchID   string            `json:"batch_id"`
	StartedAt time.Time         `json:"started_at"`
	Duration  time.Duration     `json:"duration"`
	Total     int               `json:"total"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Items     []BatchItemResult `json:"items"`
}

// Notifier defines the interface for reporting batch completions.
type Notifier interface {
	BatchComplete(ctx context.Context, summary BatchSummary) error
}
