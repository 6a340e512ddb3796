package whisper

import (
	"fmt"

	"transcript-cleaner/internal/app/api"
	openai2 "transcript-cleaner/internal/app/api/openai"
	"transcript-cleaner/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider("openai", createOpenAIProvider)
}

// createOpenAIProvider creates an OpenAI Whisper backend from settings
func createOpenAIProvider(settings map[string]interface{}) (api.Transcriber, error) {
	apiKey, _ := settings["api_key"].(string)
	if apiKey == "" {
		return nil, fmt.Errorf("openai provider requires 'api_key' setting or OPENAI_API_KEY")
	}

	baseURL, _ := settings["base_url"].(string)
	model, _ := settings["model"].(string)
	language, _ := settings["language"].(string)
	prompt, _ := settings["prompt"].(string)

	client := openai2.NewClient(apiKey, baseURL, nil)
	return NewRemoteTranscriber(client, model, language, prompt), nil
}
