package whisper_server

import (
	"transcript-cleaner/internal/app/api"
	"transcript-cleaner/internal/app/api/provider"
)

func init() {
	provider.RegisterProvider(providerName, createWhisperServerProvider)
}

func createWhisperServerProvider(settings map[string]interface{}) (api.Transcriber, error) {
	p, err := NewWhisperServerProviderFromSettings(settings)
	if err != nil {
		return nil, err
	}
	return p, nil
}
