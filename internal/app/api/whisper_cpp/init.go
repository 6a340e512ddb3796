package whisper_cpp

import (
	"fmt"

	"transcript-cleaner/internal/app/api"
	"transcript-cleaner/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider("whisper_cpp", createWhisperCppProvider)
}

// createWhisperCppProvider creates a whisper.cpp backend from settings
func createWhisperCppProvider(settings map[string]interface{}) (api.Transcriber, error) {
	binaryPath, ok := settings["binary_path"].(string)
	if !ok || binaryPath == "" {
		return nil, fmt.Errorf("whisper_cpp provider requires 'binary_path' setting")
	}

	modelPath, ok := settings["model_path"].(string)
	if !ok || modelPath == "" {
		return nil, fmt.Errorf("whisper_cpp provider requires 'model_path' setting")
	}

	config := LocalConfig{
		BinaryPath: binaryPath,
		ModelPath:  modelPath,
	}
	if language, ok := settings["language"].(string); ok {
		config.Language = language
	}
	if prompt, ok := settings["prompt"].(string); ok {
		config.Prompt = prompt
	}
	// YAML decodes numbers as int, JSON as float64
	switch threads := settings["threads"].(type) {
	case int:
		config.Threads = threads
	case float64:
		config.Threads = int(threads)
	}

	return NewLocalTranscriber(config), nil
}
