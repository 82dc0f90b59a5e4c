package openrouter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackdigest"
	"stackdigest/openrouter"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("returns the primary completion content", func(t *testing.T) {
		t.Parallel()

		var gotAuth string
		var gotBody map[string]any
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"choices":[{"message":{"content":"A tidy digest."}}]}`))
		})

		s := openrouter.NewSummarizer("test-key", openrouter.WithEndpoint(srv.URL))
		summary, err := s.Summarize(context.Background(), "long article text")
		require.NoError(t, err)

		assert.Equal(t, "A tidy digest.", summary)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, openrouter.DefaultModel, gotBody["model"])

		messages, ok := gotBody["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 2)
		system := messages[0].(map[string]any)
		assert.Equal(t, "system", system["role"])
		user := messages[1].(map[string]any)
		assert.Equal(t, "long article text", user["content"])
	})

	t.Run("falls back to the reasoning field when content is empty", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[{"message":{"content":"","reasoning":"Reasoned digest."}}]}`))
		})

		s := openrouter.NewSummarizer("k", openrouter.WithEndpoint(srv.URL))
		summary, err := s.Summarize(context.Background(), "text")
		require.NoError(t, err)
		assert.Equal(t, "Reasoned digest.", summary)
	})

	t.Run("reports EUNPROCESSABLE when both fields are empty", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[{"message":{"content":"","reasoning":""}}]}`))
		})

		s := openrouter.NewSummarizer("k", openrouter.WithEndpoint(srv.URL))
		_, err := s.Summarize(context.Background(), "text")
		require.Error(t, err)
		assert.Equal(t, stackdigest.EUNPROCESSABLE, stackdigest.ErrorCode(err))
	})

	t.Run("reports EINTERNAL with status and body on non-2xx", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"rate limited"}`))
		})

		s := openrouter.NewSummarizer("k", openrouter.WithEndpoint(srv.URL))
		_, err := s.Summarize(context.Background(), "text")
		require.Error(t, err)
		assert.Equal(t, stackdigest.EINTERNAL, stackdigest.ErrorCode(err))
		assert.Contains(t, stackdigest.ErrorMessage(err), "429")
		assert.Contains(t, stackdigest.ErrorMessage(err), "rate limited")
	})

	t.Run("reports EINTERNAL when choices are missing", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		})

		s := openrouter.NewSummarizer("k", openrouter.WithEndpoint(srv.URL))
		_, err := s.Summarize(context.Background(), "text")
		require.Error(t, err)
		assert.Equal(t, stackdigest.EINTERNAL, stackdigest.ErrorCode(err))
	})

	t.Run("reports EINTERNAL for a malformed body", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		})

		s := openrouter.NewSummarizer("k", openrouter.WithEndpoint(srv.URL))
		_, err := s.Summarize(context.Background(), "text")
		require.Error(t, err)
		assert.Equal(t, stackdigest.EINTERNAL, stackdigest.ErrorCode(err))
	})

	t.Run("reports EUNAVAILABLE when the endpoint is unreachable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // endpoint exists but refuses connections

		s := openrouter.NewSummarizer("k", openrouter.WithEndpoint(srv.URL))
		_, err := s.Summarize(context.Background(), "text")
		require.Error(t, err)
		assert.Equal(t, stackdigest.EUNAVAILABLE, stackdigest.ErrorCode(err))
	})

	t.Run("rejects empty article text", func(t *testing.T) {
		t.Parallel()

		s := openrouter.NewSummarizer("k")
		_, err := s.Summarize(context.Background(), "")
		require.Error(t, err)
		assert.Equal(t, stackdigest.EINVALID, stackdigest.ErrorCode(err))
	})
}
