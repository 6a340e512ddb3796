package audio

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"transcript-cleaner/internal/app/testutil"
)

func TestIs16kHzWavFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name  string
		setup func(path string)
		want  bool
	}{
		{
			name:  "16kHz wav",
			setup: func(path string) { testutil.WriteWavFile(t, path, 16000, time.Second) },
			want:  true,
		},
		{
			name:  "44.1kHz wav",
			setup: func(path string) { testutil.WriteWavFile(t, path, 44100, time.Second) },
			want:  false,
		},
		{
			name: "not a wav",
			setup: func(path string) {
				require.NoError(t, os.WriteFile(path, []byte("ID3 mp3 bytes"), 0o644))
			},
			want: false,
		},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, string(rune('a'+i))+".wav")
			tt.setup(path)

			got, err := Is16kHzWavFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Is16kHzWavFile(filepath.Join(dir, "missing.wav"))
	assert.Error(t, err)
}

func TestGetAudioDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two.wav")
	testutil.WriteWavFile(t, path, 16000, 2*time.Second)

	d, err := GetAudioDuration(path)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, d.Seconds(), 0.01)
}

func TestConvertTo16kHzWav_MockFFmpeg(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script mock")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "ffmpeg")
	// The last argument is the output path
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nfor last; do :; done\necho converted > \"$last\"\n"), 0o755))

	original := FFmpegBinary
	FFmpegBinary = script
	defer func() { FFmpegBinary = original }()

	outDir := t.TempDir()
	out, err := ConvertTo16kHzWav(context.Background(), "/uploads/voice.m4a", outDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "voice_16khz.wav"), out)
	assert.FileExists(t, out)
}

func TestConvertTo16kHzWav_Failure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script mock")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "ffmpeg")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho 'Invalid data found' >&2\nexit 1\n"), 0o755))

	original := FFmpegBinary
	FFmpegBinary = script
	defer func() { FFmpegBinary = original }()

	_, err := ConvertTo16kHzWav(context.Background(), "/uploads/voice.m4a", t.TempDir())
	assert.ErrorContains(t, err, "Invalid data found")
}
