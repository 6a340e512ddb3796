package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"transcript-cleaner/internal/api/routes"
	"transcript-cleaner/internal/api/services"
	"transcript-cleaner/internal/app/api/provider"
	"transcript-cleaner/internal/app/testutil"
)

const devOrigin = "http://localhost:5173"

type testEnv struct {
	server      *Server
	transcriber *testutil.MockTranscriber
	cleaner     *testutil.MockCleaner
	scratchDir  string
}

func newTestEnv(t *testing.T, cleanupTimeout time.Duration) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zaptest.NewLogger(t)
	registry := prometheus.NewRegistry()
	metrics := provider.NewMetrics(registry)
	scratchDir := t.TempDir()

	transcriber := testutil.NewMockTranscriber()
	cleaner := new(testutil.MockCleaner)

	container := &routes.ServiceContainer{
		TranscriptionService: services.NewTranscriptionService(transcriber, services.TranscriptionConfig{
			Backend:    "mock",
			ScratchDir: scratchDir,
			MaxBytes:   10_000_000,
		}, metrics, logger),
		CleanupService: services.NewCleanupService(cleaner, services.CleanupConfig{
			Backend: "mock",
			Timeout: cleanupTimeout,
		}, metrics, logger),
	}

	srv := NewServer(Config{
		Host:               "127.0.0.1",
		Port:               "0",
		Environment:        "test",
		CORSOrigin:         devOrigin,
		TranscriberBackend: "mock",
		CleanupBackend:     "mock",
	}, container, registry, logger)

	return &testEnv{server: srv, transcriber: transcriber, cleaner: cleaner, scratchDir: scratchDir}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.server.Router().ServeHTTP(w, req)
	return w
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func cleanRequest(text string) *http.Request {
	payload, _ := json.Marshal(map[string]string{"text": text})
	req := httptest.NewRequest(http.MethodPost, "/api/clean", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func jsonBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func scratchEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func TestTranscribe_Oversized(t *testing.T) {
	env := newTestEnv(t, time.Second)

	w := env.do(uploadRequest(t, "big.wav", make([]byte, 10_000_001)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"error": "File size exceeds 10MB limit"}, jsonBody(t, w))
	assert.Equal(t, 0, env.transcriber.CallCount())
	assert.Empty(t, scratchEntries(t, env.scratchDir))
}

func TestTranscribe_SmallUpload(t *testing.T) {
	env := newTestEnv(t, time.Second)
	env.transcriber.WithDefaultResponse(" ten bytes")

	w := env.do(uploadRequest(t, "tiny.wav", []byte("0123456789")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"text": " ten bytes"}, jsonBody(t, w))
	require.Equal(t, 1, env.transcriber.CallCount())
	assert.Equal(t, "0123456789", string(env.transcriber.Calls()[0].Content))
	assert.Empty(t, scratchEntries(t, env.scratchDir))
}

func TestTranscribe_Failure(t *testing.T) {
	env := newTestEnv(t, time.Second)
	env.transcriber.WithDefaultError(errors.New("whisper.cpp crashed"))

	w := env.do(uploadRequest(t, "voice.wav", []byte("audio")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"error": "Transcription failed"}, jsonBody(t, w))
	assert.NotContains(t, w.Body.String(), "crashed")
	assert.Empty(t, scratchEntries(t, env.scratchDir))
}

func TestClean_Success(t *testing.T) {
	env := newTestEnv(t, time.Second)
	env.cleaner.On("Clean", mock.Anything, "um so like the the meeting is at uh 3pm").
		Return("The meeting is at 3pm.", nil)

	w := env.do(cleanRequest("um so like the the meeting is at uh 3pm"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"cleaned_text": "The meeting is at 3pm."}, jsonBody(t, w))
}

func TestClean_Fallback(t *testing.T) {
	t.Run("remote error", func(t *testing.T) {
		env := newTestEnv(t, time.Second)
		env.cleaner.DefaultError = &provider.CleanupError{Code: "request_failed", Message: "status 500", Provider: "mock"}

		w := env.do(cleanRequest("uh keep me"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]interface{}{"cleaned_text": "uh keep me"}, jsonBody(t, w))
	})

	t.Run("timeout", func(t *testing.T) {
		env := newTestEnv(t, 50*time.Millisecond)
		env.cleaner.Block = true

		w := env.do(cleanRequest("uh slow"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]interface{}{"cleaned_text": "uh slow"}, jsonBody(t, w))
	})
}

func TestCORS(t *testing.T) {
	env := newTestEnv(t, time.Second)

	t.Run("preflight from dev origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/clean", nil)
		req.Header.Set("Origin", devOrigin)
		req.Header.Set("Access-Control-Request-Method", "POST")
		req.Header.Set("Access-Control-Request-Headers", "content-type")

		w := env.do(req)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, devOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
		assert.Equal(t, "content-type", w.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("simple request from dev origin", func(t *testing.T) {
		env.cleaner.On("Clean", mock.Anything, "x").Return("X", nil).Once()
		req := cleanRequest("x")
		req.Header.Set("Origin", devOrigin)

		w := env.do(req)
		assert.Equal(t, devOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/clean", nil)
		req.Header.Set("Origin", "http://evil.example")
		req.Header.Set("Access-Control-Request-Method", "POST")

		w := env.do(req)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Methods"))
	})
}

func TestRequestIDAndMetrics(t *testing.T) {
	env := newTestEnv(t, time.Second)
	env.transcriber.WithDefaultResponse("ok")

	req := uploadRequest(t, "a.wav", []byte("abc"))
	req.Header.Set("X-Request-ID", "req-123")
	w := env.do(req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))

	w = env.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `transcript_cleaner_transcriptions_total{backend="mock",outcome="transcribed"} 1`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, time.Second)

	w := env.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", jsonBody(t, w)["status"])
}

func TestSwagger(t *testing.T) {
	env := newTestEnv(t, time.Second)

	w := env.do(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "/transcribe"))
}

func TestStartShutdown(t *testing.T) {
	env := newTestEnv(t, time.Second)

	errCh, err := env.server.Start()
	require.NoError(t, err)

	require.NoError(t, env.server.Shutdown(context.Background()))
	_, open := <-errCh
	assert.False(t, open)
}
