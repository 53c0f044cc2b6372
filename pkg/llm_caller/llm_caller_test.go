package llm_caller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Success(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"generated copy"}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", 0.7, 1024, 10*time.Second)

	content, err := client.Generate(context.Background(), "system instruction", "user prompt")
	require.NoError(t, err)
	assert.Equal(t, "generated copy", content)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "system instruction", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
}

func TestGenerate_NoAuthHeaderWithoutKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "m", 0, 0, time.Second)
	_, err := client.Generate(context.Background(), "s", "p")
	require.NoError(t, err)
}

func TestGenerate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", "m", 0, 0, time.Second)
	_, err := client.Generate(context.Background(), "s", "p")

	require.Error(t, err)
	var genErr *GenerationServiceError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, http.StatusTooManyRequests, genErr.StatusCode)
	assert.True(t, genErr.Retryable())
}

func TestGenerate_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", "m", 0, 0, time.Second)
	_, err := client.Generate(context.Background(), "s", "p")

	require.Error(t, err)
	var genErr *GenerationServiceError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "parse", genErr.Op)
}

func TestGenerate_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The server only notices the client disconnect (and cancels
		// r.Context()) after the request body has been consumed.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", "m", 0, 0, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Generate(ctx, "s", "p")
	require.Error(t, err)
}
