package anthropic

import (
	"transcript-cleaner/internal/app/api"
	"transcript-cleaner/internal/app/api/provider"
)

func init() {
	provider.RegisterCleaner(providerName, func(settings provider.CleanerSettings) (api.Cleaner, error) {
		return NewCleaner(settings.APIKey, settings.BaseURL, settings.Model), nil
	})
}
