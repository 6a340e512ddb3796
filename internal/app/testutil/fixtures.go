package testutil

import (
	"os"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"
)

// Sample transcripts before and after cleanup
const (
	RawTranscript     = "um so i i think we should uh ship it on friday you know"
	CleanedTranscript = "I think we should ship it on Friday."
)

// WriteWavFile writes a silent mono 16-bit PCM WAV file
func WriteWavFile(t testing.TB, path string, sampleRate int, length time.Duration) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, int(float64(sampleRate)*length.Seconds())),
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
}

// WavBytes returns the bytes of a silent WAV file, for use as an upload body
func WavBytes(t testing.TB, sampleRate int, length time.Duration) []byte {
	t.Helper()

	path := t.TempDir() + "/fixture.wav"
	WriteWavFile(t, path, sampleRate, length)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}
