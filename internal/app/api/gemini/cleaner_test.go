package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"transcript-cleaner/internal/app/api"
	"transcript-cleaner/internal/app/api/provider"
)

type generateRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	SystemInstruction struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"systemInstruction"`
}

func newTestServer(t *testing.T, status int, body string, path *string, got *generateRequest) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path != nil {
			*path = r.URL.Path
		}
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

const okResponse = `{"candidates":[{"content":{"role":"model","parts":[{"text":"I think we should ship it on Friday."}]},"finishReason":"STOP"}]}`

func TestCleaner_Clean(t *testing.T) {
	var (
		path string
		got  generateRequest
	)
	server := newTestServer(t, http.StatusOK, okResponse, &path, &got)

	cleaner, err := NewCleaner(context.Background(), "test-key", server.URL, "")
	require.NoError(t, err)

	out, err := cleaner.Clean(context.Background(), "um i think we should uh ship it on friday")
	require.NoError(t, err)
	assert.Equal(t, "I think we should ship it on Friday.", out)

	assert.True(t, strings.HasSuffix(path, "/models/"+DefaultModel+":generateContent"), path)
	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 1)
	assert.Equal(t, "um i think we should uh ship it on friday", got.Contents[0].Parts[0].Text)
	require.Len(t, got.SystemInstruction.Parts, 1)
	assert.Equal(t, api.CleanupInstruction, got.SystemInstruction.Parts[0].Text)
}

func TestCleaner_Errors(t *testing.T) {
	t.Run("no candidates", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, `{"candidates":[]}`, nil, nil)
		cleaner, err := NewCleaner(context.Background(), "test-key", server.URL, "")
		require.NoError(t, err)

		_, err = cleaner.Clean(context.Background(), "x")
		var cerr *provider.CleanupError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, "empty_response", cerr.Code)
	})

	blocked := map[string]string{
		"safety":       `{"candidates":[{"finishReason":"SAFETY","index":0}]}`,
		"recitation":   `{"candidates":[{"content":{"role":"model"},"finishReason":"RECITATION","index":0}]}`,
		"empty parts":  `{"candidates":[{"content":{"role":"model","parts":[{"text":""}]},"finishReason":"STOP"}]}`,
		"thought only": `{"candidates":[{"content":{"role":"model","parts":[{"text":"planning","thought":true}]},"finishReason":"STOP"}]}`,
	}
	for name, body := range blocked {
		t.Run(name, func(t *testing.T) {
			server := newTestServer(t, http.StatusOK, body, nil, nil)
			cleaner, err := NewCleaner(context.Background(), "test-key", server.URL, "")
			require.NoError(t, err)

			out, err := cleaner.Clean(context.Background(), "x")
			var cerr *provider.CleanupError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, "empty_response", cerr.Code)
			assert.Empty(t, out)
		})
	}

	t.Run("api error", func(t *testing.T) {
		server := newTestServer(t, http.StatusBadRequest, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`, nil, nil)
		cleaner, err := NewCleaner(context.Background(), "test-key", server.URL, "")
		require.NoError(t, err)

		_, err = cleaner.Clean(context.Background(), "x")
		var cerr *provider.CleanupError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, "request_failed", cerr.Code)
	})
}

func TestRegistered(t *testing.T) {
	var path string
	server := newTestServer(t, http.StatusOK, okResponse, &path, nil)

	cleaner, err := provider.NewCleaner("gemini", provider.CleanerSettings{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gemini-2.5-flash",
	})
	require.NoError(t, err)

	_, err = cleaner.Clean(context.Background(), "x")
	require.NoError(t, err)
	assert.Contains(t, path, "gemini-2.5-flash:generateContent")
}
