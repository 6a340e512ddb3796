package whisper

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openai2 "transcript-cleaner/internal/app/api/openai"
	"transcript-cleaner/internal/app/api/provider"
	"transcript-cleaner/internal/app/audio"
)

func createAudioFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.mp3")
	require.NoError(t, os.WriteFile(path, []byte("ID3 fake mp3"), 0o644))
	return path
}

func TestRemoteTranscriber_Transcript(t *testing.T) {
	seen := map[string]string{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/transcriptions", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		data, _ := io.ReadAll(file)

		seen["model"] = r.FormValue("model")
		seen["language"] = r.FormValue("language")
		seen["filename"] = header.Filename
		seen["content"] = string(data)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":" And so, my fellow Americans. "}`))
	}))
	defer server.Close()

	rt := NewRemoteTranscriber(openai2.NewClient("test-key", server.URL, nil), "", "en", "")
	text, err := rt.Transcript(context.Background(), createAudioFile(t))
	require.NoError(t, err)
	assert.Equal(t, "And so, my fellow Americans.", text)

	assert.Equal(t, "whisper-1", seen["model"])
	assert.Equal(t, "en", seen["language"])
	assert.Equal(t, "clip.mp3", seen["filename"])
	assert.Equal(t, "ID3 fake mp3", seen["content"])
}

func TestRemoteTranscriber_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid file format.","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	rt := NewRemoteTranscriber(openai2.NewClient("test-key", server.URL, nil), "", "", "")
	_, err := rt.Transcript(context.Background(), createAudioFile(t))

	var terr *provider.TranscriptionError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, "openai", terr.Provider)
	assert.Contains(t, err.Error(), "Invalid file format")
}

func TestCreateOpenAIProvider(t *testing.T) {
	creator, err := provider.GetProviderCreator("openai")
	require.NoError(t, err)

	_, err = creator(map[string]interface{}{})
	assert.ErrorContains(t, err, "api_key")

	transcriber, err := creator(map[string]interface{}{"api_key": "sk-test", "model": "gpt-4o-transcribe"})
	require.NoError(t, err)

	rt, ok := transcriber.(*RemoteTranscriber)
	require.True(t, ok)
	assert.Equal(t, "gpt-4o-transcribe", rt.model)
}

func TestRemoteTranscriber_ConvertsUnsupportedFormat(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script mock")
	}

	script := filepath.Join(t.TempDir(), "ffmpeg")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nfor last; do :; done\necho RIFF > \"$last\"\n"), 0o755))
	original := audio.FFmpegBinary
	audio.FFmpegBinary = script
	defer func() { audio.FFmpegBinary = original }()

	var filename string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		filename = header.Filename

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"hello"}`))
	}))
	defer server.Close()

	input := filepath.Join(t.TempDir(), "memo.amr")
	require.NoError(t, os.WriteFile(input, []byte("#!AMR"), 0o644))

	rt := NewRemoteTranscriber(openai2.NewClient("test-key", server.URL, nil), "", "", "")
	text, err := rt.Transcript(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, "memo_16khz.wav", filename)
}

func TestRemoteTranscriber_ConversionFailure(t *testing.T) {
	original := audio.FFmpegBinary
	audio.FFmpegBinary = filepath.Join(t.TempDir(), "no-ffmpeg")
	defer func() { audio.FFmpegBinary = original }()

	input := filepath.Join(t.TempDir(), "memo.amr")
	require.NoError(t, os.WriteFile(input, []byte("#!AMR"), 0o644))

	rt := NewRemoteTranscriber(openai2.NewClient("test-key", "http://127.0.0.1:1", nil), "", "", "")
	_, err := rt.Transcript(context.Background(), input)

	var terr *provider.TranscriptionError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, "conversion_failed", terr.Code)
}
