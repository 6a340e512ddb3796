package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
	"transcript-cleaner/internal/app/api"
)

// ProviderCreator is a function that creates a transcription backend from settings
type ProviderCreator func(settings map[string]interface{}) (api.Transcriber, error)

// CleanerCreator is a function that creates a cleanup backend from settings
type CleanerCreator func(settings CleanerSettings) (api.Cleaner, error)

// CleanerSettings carries the connection details for a cleanup backend
type CleanerSettings struct {
	APIKey  string
	BaseURL string
	Model   string
}

// providerRegistry stores provider creation functions
var (
	providerRegistry = make(map[string]ProviderCreator)
	cleanerRegistry  = make(map[string]CleanerCreator)
	registryMutex    sync.RWMutex
)

// RegisterProvider registers a transcription backend creator function
func RegisterProvider(providerType string, creator ProviderCreator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	providerRegistry[providerType] = creator
}

// GetProviderCreator returns the creator function for a provider type
func GetProviderCreator(providerType string) (ProviderCreator, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	creator, ok := providerRegistry[providerType]
	if !ok {
		return nil, fmt.Errorf("provider type %s not registered", providerType)
	}
	return creator, nil
}

// ListRegisteredProviders returns all registered provider types, sorted
func ListRegisteredProviders() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	providers := lo.Keys(providerRegistry)
	sort.Strings(providers)
	return providers
}

// RegisterCleaner registers a cleanup backend creator function
func RegisterCleaner(backend string, creator CleanerCreator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	cleanerRegistry[backend] = creator
}

// NewCleaner creates the cleanup backend registered under the given name
func NewCleaner(backend string, settings CleanerSettings) (api.Cleaner, error) {
	registryMutex.RLock()
	creator, ok := cleanerRegistry[backend]
	registryMutex.RUnlock()

	if !ok {
		return nil, fmt.Errorf("cleanup backend %s not registered", backend)
	}
	return creator(settings)
}

// ListRegisteredCleaners returns all registered cleanup backends, sorted
func ListRegisteredCleaners() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	cleaners := lo.Keys(cleanerRegistry)
	sort.Strings(cleaners)
	return cleaners
}
