package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/calegrey/relister/internal/metrics"
	"github.com/calegrey/relister/internal/notify"
	domain "github.com/calegrey/relister/pkg/types"
)

const defaultStaggerDelay = 2 * time.Second

// DraftAssembler builds one draft per barcode.
type DraftAssembler interface {
	Assemble(ctx context.Context, req AssembleRequest) (*domain.ListingDraft, error)
}

// BatchRunner processes a list of barcodes sequentially, continuing
// past per-item failures, and reports the outcome through a Notifier.
type BatchRunner struct {
	assembler    DraftAssembler
	notifier     notify.Notifier
	log          *slog.Logger
	staggerDelay time.Duration
}

// NewBatchRunner creates a new BatchRunner.
func NewBatchRunner(
	a DraftAssembler,
	n notify.Notifier,
	opts ...BatchOption,
) *BatchRunner {
	b := &BatchRunner{
		assembler:    a,
		notifier:     n,
		log:          slog.Default(),
		staggerDelay: defaultStaggerDelay,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BatchOption configures a BatchRunner.
type BatchOption func(*BatchRunner)

// WithBatchLogger sets a custom logger.
func WithBatchLogger(l *slog.Logger) BatchOption {
	return func(b *BatchRunner) {
		b.log = l
	}
}

// WithStaggerDelay sets the pause between consecutive barcodes.
func WithStaggerDelay(d time.Duration) BatchOption {
	return func(b *BatchRunner) {
		b.staggerDelay = d
	}
}

// BatchRequest carries the inputs for a batch run. Condition and Prefs
// apply to every barcode in the batch.
type BatchRequest struct {
	Barcodes  []string
	Condition string
	Prefs     *domain.TitlePreferences
}

// Run assembles a draft for each barcode in order. Item failures are
// recorded and skipped; only context cancellation aborts the run. The
// completed summary is delivered to the notifier best-effort.
func (b *BatchRunner) Run(
	ctx context.Context,
	req BatchRequest,
) (notify.BatchSummary, error) {
	summary := notify.BatchSummary{
		BatchID:   uuid.NewString(),
		StartedAt: time.Now(),
		Total:     len(req.Barcodes),
	}

	b.log.Info("batch starting", "batch_id", summary.BatchID, "items", summary.Total)

	for i, raw := range req.Barcodes {
		if ctx.Err() != nil {
			summary.Duration = time.Since(summary.StartedAt)
			return summary, ctx.Err()
		}

		item := b.processItem(ctx, raw, req)
		summary.Items = append(summary.Items, item)
		if item.Error != "" {
			summary.Failed++
		} else {
			summary.Succeeded++
		}

		// Stagger between items to avoid API bursts.
		if i < len(req.Barcodes)-1 && b.staggerDelay > 0 {
			select {
			case <-ctx.Done():
				summary.Duration = time.Since(summary.StartedAt)
				return summary, ctx.Err()
			case <-time.After(b.staggerDelay):
			}
		}
	}

	summary.Duration = time.Since(summary.StartedAt)

	b.log.Info("batch complete",
		"batch_id", summary.BatchID,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"duration", summary.Duration,
	)

	if b.notifier != nil {
		if err := b.notifier.BatchComplete(ctx, summary); err != nil {
			b.log.Error("batch notification failed", "batch_id", summary.BatchID, "error", err)
		}
	}

	return summary, nil
}

func (b *BatchRunner) processItem(
	ctx context.Context,
	raw string,
	req BatchRequest,
) notify.BatchItemResult {
	draft, err := b.assembler.Assemble(ctx, AssembleRequest{
		Barcode:   raw,
		Condition: req.Condition,
		Prefs:     req.Prefs,
	})
	if err != nil {
		b.log.Error("batch item failed", "barcode", raw, "error", err)
		metrics.BatchItemsTotal.WithLabelValues("error").Inc()
		return notify.BatchItemResult{Barcode: raw, Error: err.Error()}
	}

	metrics.BatchItemsTotal.WithLabelValues("success").Inc()
	return notify.BatchItemResult{
		Barcode: draft.Barcode,
		DraftID: draft.ID,
		Title:   draft.Title,
		Price:   draft.Price,
	}
}
