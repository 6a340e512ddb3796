package provider

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"transcript-cleaner/internal/app/api"
)

// SharedModel is the process-wide speech model. It is created and loaded exactly
// once, before the first request, and is read-only afterwards. It satisfies
// api.Transcriber so callers never hold the concrete backend.
type SharedModel struct {
	backend  string
	settings map[string]interface{}

	once        sync.Once
	transcriber api.Transcriber
	err         error
	loaded      atomic.Bool
}

// NewSharedModel prepares, but does not load, the model for the given backend
func NewSharedModel(backend string, settings map[string]interface{}) *SharedModel {
	return &SharedModel{
		backend:  backend,
		settings: settings,
	}
}

// Load creates the backend and runs its warm-up. Only the first call does any
// work; later calls return the first result.
func (m *SharedModel) Load(ctx context.Context) error {
	m.once.Do(func() {
		creator, err := GetProviderCreator(m.backend)
		if err != nil {
			m.err = fmt.Errorf("%w (registered: %s)", err, strings.Join(ListRegisteredProviders(), ", "))
			return
		}

		transcriber, err := creator(m.settings)
		if err != nil {
			m.err = fmt.Errorf("create %s backend: %w", m.backend, err)
			return
		}

		if loader, ok := transcriber.(Loader); ok {
			if err := loader.Load(ctx); err != nil {
				m.err = fmt.Errorf("load %s model: %w", m.backend, err)
				return
			}
		}

		m.transcriber = transcriber
		m.loaded.Store(true)
		zap.L().Info("Speech model loaded", zap.String("backend", m.backend))
	})
	return m.err
}

// Transcript delegates to the loaded backend
func (m *SharedModel) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	if !m.loaded.Load() {
		return "", ErrModelNotLoaded
	}
	return m.transcriber.Transcript(ctx, inputFilePath)
}

// Backend returns the configured backend name
func (m *SharedModel) Backend() string {
	return m.backend
}

// Loaded reports whether Load has succeeded
func (m *SharedModel) Loaded() bool {
	return m.loaded.Load()
}
