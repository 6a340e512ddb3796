package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names read at startup
const (
	EnvCleanupAPIKey   = "CLEANUP_API_KEY"
	EnvOpenAIAPIKey    = "OPENAI_API_KEY"
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
	EnvGeminiAPIKey    = "GEMINI_API_KEY"
)

// envPaths are searched in order; the first existing file wins
var envPaths = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// LoadEnv loads environment variables from .env file if it exists.
// It returns the path that was loaded, or "" when no file was found.
// Variables already present in the process environment are not overridden.
func LoadEnv() (string, error) {
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}
	return "", nil
}

// backendKeyEnv maps a cleanup backend to its vendor specific credential variable
func backendKeyEnv(backend string) string {
	switch backend {
	case CleanupBackendAnthropic:
		return EnvAnthropicAPIKey
	case CleanupBackendGemini:
		return EnvGeminiAPIKey
	default:
		return EnvOpenAIAPIKey
	}
}

// GetCleanupAPIKey retrieves the credential for the cleanup backend.
// CLEANUP_API_KEY wins over the vendor specific variable.
// Implements fail-fast: a missing key is an error, the server must not start without it.
func GetCleanupAPIKey(backend string) (string, error) {
	if key := strings.TrimSpace(os.Getenv(EnvCleanupAPIKey)); key != "" {
		return key, nil
	}

	vendorEnv := backendKeyEnv(backend)
	if key := strings.TrimSpace(os.Getenv(vendorEnv)); key != "" {
		return key, nil
	}

	return "", fmt.Errorf("cleanup backend %q requires an API key - please set %s or %s in environment or .env file",
		backend, EnvCleanupAPIKey, vendorEnv)
}

// InitializeConfig loads environment and validates configuration
// This is the main entry point for configuration loading
func InitializeConfig(configPath string) (*Config, error) {
	// Load .env file if available
	if _, err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := Default()
	if configPath != "" {
		loaded, err := Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()

	apiKey, err := GetCleanupAPIKey(cfg.Cleanup.Backend)
	if err != nil {
		return nil, err
	}
	cfg.Cleanup.APIKey = apiKey

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
