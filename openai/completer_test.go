package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/scout"
	"github.com/fwojciec/scout/openai"
	"github.com/openai/openai-go/v2/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, status int, body string, check func(map[string]any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if check != nil {
			var req map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			check(req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const chatResponse = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o-mini",
  "choices": [{
    "index": 0,
    "finish_reason": "stop",
    "message": {"role": "assistant", "content": "1. Cafe Camelot, Kraków, Poland"}
  }]
}`

func TestCompleter_Complete(t *testing.T) {
	t.Parallel()

	t.Run("returns first choice content", func(t *testing.T) {
		t.Parallel()

		srv := chatServer(t, http.StatusOK, chatResponse, func(req map[string]any) {
			assert.Equal(t, "gpt-4o-mini", req["model"])
			assert.InDelta(t, 0.7, req["temperature"], 0.001)
			assert.InDelta(t, 500, req["max_tokens"], 0.001)
			messages, ok := req["messages"].([]any)
			require.True(t, ok)
			require.Len(t, messages, 1)
			msg, ok := messages[0].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "user", msg["role"])
			assert.Equal(t, "list places", msg["content"])
		})

		c, err := openai.NewCompleter("test-key", "", option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
		require.NoError(t, err)

		got, err := c.Complete(context.Background(), "list places")

		require.NoError(t, err)
		assert.Equal(t, "1. Cafe Camelot, Kraków, Poland", got)
	})

	t.Run("returns EUPSTREAM on API error", func(t *testing.T) {
		t.Parallel()

		srv := chatServer(t, http.StatusUnauthorized, `{"error":{"message":"bad key","type":"invalid_request_error"}}`, nil)

		c, err := openai.NewCompleter("test-key", "gpt-4o", option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
		require.NoError(t, err)

		_, err = c.Complete(context.Background(), "list places")

		require.Error(t, err)
		assert.Equal(t, scout.EUPSTREAM, scout.ErrorCode(err))
	})

	t.Run("returns EUPSTREAM when no choices", func(t *testing.T) {
		t.Parallel()

		srv := chatServer(t, http.StatusOK, `{"id":"x","object":"chat.completion","choices":[]}`, nil)

		c, err := openai.NewCompleter("test-key", "", option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
		require.NoError(t, err)

		_, err = c.Complete(context.Background(), "list places")

		require.Error(t, err)
		assert.Equal(t, scout.EUPSTREAM, scout.ErrorCode(err))
		assert.Contains(t, scout.ErrorMessage(err), "no choices")
	})
}

func TestNewCompleter_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := openai.NewCompleter("", "")

	require.Error(t, err)
	assert.Equal(t, scout.EUPSTREAM, scout.ErrorCode(err))
	assert.Contains(t, scout.ErrorMessage(err), "OPENAI_API_KEY")
}
