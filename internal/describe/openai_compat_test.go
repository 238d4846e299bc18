package describe_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calegrey/relister/internal/describe"
)

func TestOpenAICompatBackend_Generate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		messages, ok := req["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 2)
		first, ok := messages[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "system", first["role"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "A description."}}],
			"model": "test-model",
			"usage": {"prompt_tokens": 50, "completion_tokens": 20, "total_tokens": 70}
		}`))
	}))
	defer srv.Close()

	b := describe.NewOpenAICompatBackend(
		srv.URL, "test-model",
		describe.WithOpenAICompatAPIKey("test-key"),
	)

	resp, err := b.Generate(context.Background(), describe.GenerateRequest{
		Prompt:    "Describe this item.",
		SystemMsg: "You are terse.",
		MaxTokens: 128,
	})
	require.NoError(t, err)
	assert.Equal(t, "A description.", resp.Content)
	assert.Equal(t, "test-model", resp.Model)
	assert.Equal(t, 70, resp.Usage.TotalTokens)
}

func TestOpenAICompatBackend_Generate_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	b := describe.NewOpenAICompatBackend(srv.URL, "test-model")

	_, err := b.Generate(context.Background(), describe.GenerateRequest{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestOpenAICompatBackend_Generate_EmptyChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [], "model": "test-model"}`))
	}))
	defer srv.Close()

	b := describe.NewOpenAICompatBackend(srv.URL, "test-model")

	_, err := b.Generate(context.Background(), describe.GenerateRequest{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty choices")
}
