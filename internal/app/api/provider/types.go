package provider

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// AudioFormat defines supported audio formats
type AudioFormat string

const (
	FormatWAV  AudioFormat = "wav"
	FormatMP3  AudioFormat = "mp3"
	FormatM4A  AudioFormat = "m4a"
	FormatFLAC AudioFormat = "flac"
	FormatOGG  AudioFormat = "ogg"
	FormatWEBM AudioFormat = "webm"
)

// ErrModelNotLoaded is returned when the shared model is used before Load succeeded
var ErrModelNotLoaded = errors.New("speech model not loaded")

// Loader is implemented by backends that need a one-time warm-up before serving,
// such as verifying model files or asking a model server to load weights.
type Loader interface {
	Load(ctx context.Context) error
}

// TranscriptionError represents provider-specific errors
type TranscriptionError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Provider  string `json:"provider"`
	Retryable bool   `json:"retryable"`
	Err       error  `json:"-"`
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

// CleanupError represents a failed call to a remote cleanup backend
type CleanupError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Provider string `json:"provider"`
	Err      error  `json:"-"`
}

func (e *CleanupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *CleanupError) Unwrap() error {
	return e.Err
}

// IsValidAudioFormat checks if the given format is supported
func IsValidAudioFormat(format string) bool {
	switch AudioFormat(format) {
	case FormatWAV, FormatMP3, FormatM4A, FormatFLAC, FormatOGG, FormatWEBM:
		return true
	default:
		return false
	}
}

// GetAudioFormatFromFilename extracts audio format from filename
func GetAudioFormatFromFilename(filename string) AudioFormat {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if IsValidAudioFormat(ext) {
		return AudioFormat(ext)
	}
	return ""
}
