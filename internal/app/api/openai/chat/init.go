package chat

import (
	"transcript-cleaner/internal/app/api"
	openai2 "transcript-cleaner/internal/app/api/openai"
	"transcript-cleaner/internal/app/api/provider"
)

func init() {
	provider.RegisterCleaner(providerName, createOpenAICleaner)
}

func createOpenAICleaner(settings provider.CleanerSettings) (api.Cleaner, error) {
	client := openai2.NewClient(settings.APIKey, settings.BaseURL, nil)
	return NewCleaner(client, settings.Model), nil
}
