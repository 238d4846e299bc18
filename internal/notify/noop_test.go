package notify

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calegrey/relister/pkg/logger"
)

func TestNoOpNotifier_BatchComplete(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "debug", "text")

	n := NewNoOpNotifier(log)
	err := n.BatchComplete(context.Background(), BatchSummary{
		BatchID:   "batch-xyz",
		Total:     2,
		Succeeded: 2,
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "batch-xyz")
	assert.Contains(t, buf.String(), "discarded")
}
