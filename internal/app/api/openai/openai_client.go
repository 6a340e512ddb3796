package openai

import (
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// NewClient creates a go-openai client. An empty baseURL targets the public
// API; any OpenAI-compatible server can be used instead. A nil httpClient
// leaves the library default in place.
func NewClient(apiKey, baseURL string, httpClient *http.Client) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if httpClient != nil {
		config.HTTPClient = httpClient
	}
	return openai.NewClientWithConfig(config)
}
