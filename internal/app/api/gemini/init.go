package gemini

import (
	"context"

	"transcript-cleaner/internal/app/api"
	"transcript-cleaner/internal/app/api/provider"
)

func init() {
	provider.RegisterCleaner(providerName, func(settings provider.CleanerSettings) (api.Cleaner, error) {
		c, err := NewCleaner(context.Background(), settings.APIKey, settings.BaseURL, settings.Model)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}
