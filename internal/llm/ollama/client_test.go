package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(generateResponse{Response: `{"name":"Shawl"}`})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "llava:7b"}, nil)
	out, err := c.Generate(context.Background(), "describe", []string{"aGVsbG8=", "d29ybGQ="})
	require.NoError(t, err)

	assert.Equal(t, `{"name":"Shawl"}`, out)
	assert.Equal(t, "llava:7b", got.Model)
	assert.Equal(t, "describe", got.Prompt)
	assert.Len(t, got.Images, 2)
	assert.False(t, got.Stream)
}

func TestGenerateTrailingSlashBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		_ = json.NewEncoder(w).Encode(generateResponse{Response: "ok"})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL + "/"}, nil)
	out, err := c.Generate(context.Background(), "p", nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

func TestGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.Generate(context.Background(), "p", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
