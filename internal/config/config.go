package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Transcription backends
const (
	TranscriberBackendWhisperCpp    = "whisper_cpp"
	TranscriberBackendWhisperServer = "whisper_server"
	TranscriberBackendOpenAI        = "openai"
)

// Cleanup backends
const (
	CleanupBackendOpenAI    = "openai"
	CleanupBackendAnthropic = "anthropic"
	CleanupBackendGemini    = "gemini"
)

// MaxUploadBytes is the fixed upload ceiling for /api/transcribe. The
// rejection message names it as 10MB, so it is not configurable.
const MaxUploadBytes int64 = 10_000_000

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Upload      UploadConfig      `yaml:"upload"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Cleanup     CleanupConfig     `yaml:"cleanup"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	Environment  string        `yaml:"environment"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	CORSOrigin   string        `yaml:"cors_origin"`
}

// UploadConfig holds scratch storage settings.
type UploadConfig struct {
	ScratchDir string `yaml:"scratch_dir"`
}

// TranscriberConfig selects the speech model backend.
// Settings are passed as-is to the backend constructor.
type TranscriberConfig struct {
	Backend  string                 `yaml:"backend"`
	Settings map[string]interface{} `yaml:"settings,omitempty"`
}

// CleanupConfig selects the remote chat-completion backend.
type CleanupConfig struct {
	Backend string        `yaml:"backend"`
	BaseURL string        `yaml:"base_url,omitempty"`
	Model   string        `yaml:"model,omitempty"`
	Timeout time.Duration `yaml:"timeout"`

	// APIKey is only ever read from the environment
	APIKey string `yaml:"-"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         "8000",
			Environment:  "development",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 5 * time.Minute,
			IdleTimeout:  120 * time.Second,
			CORSOrigin:   "http://localhost:5173",
		},
		Upload: UploadConfig{
			ScratchDir: os.TempDir(),
		},
		Transcriber: TranscriberConfig{
			Backend:  TranscriberBackendWhisperCpp,
			Settings: map[string]interface{}{},
		},
		Cleanup: CleanupConfig{
			Backend: CleanupBackendOpenAI,
			Timeout: 30 * time.Second,
		},
	}
}

// Load reads and parses a YAML config file. Missing fields are filled
// with defaults; unknown keys are an error. Values of the form ${VAR} in
// transcriber settings are expanded from the environment.
func Load(path string) (*Config, error) {
	path = expandTilde(os.ExpandEnv(path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Transcriber.Settings == nil {
		cfg.Transcriber.Settings = map[string]interface{}{}
	}
	cfg.expandEnvironmentVariables()
	cfg.Upload.ScratchDir = expandTilde(cfg.Upload.ScratchDir)

	return cfg, nil
}

// ApplyEnv overrides file and default values with environment variables.
func (c *Config) ApplyEnv() {
	setString(&c.Server.Host, "SERVER_HOST")
	setString(&c.Server.Port, "SERVER_PORT")
	setString(&c.Server.Environment, "APP_ENV")
	setString(&c.Server.CORSOrigin, "CORS_ORIGIN")
	setString(&c.Upload.ScratchDir, "SCRATCH_DIR")
	setString(&c.Transcriber.Backend, "TRANSCRIBER_BACKEND")
	setString(&c.Cleanup.Backend, "CLEANUP_BACKEND")
	setString(&c.Cleanup.BaseURL, "CLEANUP_BASE_URL")
	setString(&c.Cleanup.Model, "CLEANUP_MODEL")

	if c.Transcriber.Settings == nil {
		c.Transcriber.Settings = map[string]interface{}{}
	}
	// Backend specific variables only reach the backend they name
	switch c.Transcriber.Backend {
	case TranscriberBackendWhisperCpp:
		setSetting(c.Transcriber.Settings, "binary_path", "WHISPER_CPP_BINARY")
		setSetting(c.Transcriber.Settings, "model_path", "WHISPER_CPP_MODEL")
	case TranscriberBackendWhisperServer:
		setSetting(c.Transcriber.Settings, "base_url", "WHISPER_SERVER_URL")
	case TranscriberBackendOpenAI:
		// Shares the OpenAI credential unless configured explicitly
		if _, ok := c.Transcriber.Settings["api_key"]; !ok {
			setSetting(c.Transcriber.Settings, "api_key", EnvOpenAIAPIKey)
		}
	}
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	if err := ValidatePort(c.Server.Port, "server"); err != nil {
		return err
	}
	for name, timeout := range map[string]time.Duration{
		"server read":  c.Server.ReadTimeout,
		"server write": c.Server.WriteTimeout,
		"server idle":  c.Server.IdleTimeout,
		"cleanup":      c.Cleanup.Timeout,
	} {
		if err := ValidateTimeout(timeout, name); err != nil {
			return err
		}
	}
	if c.Server.CORSOrigin != "" {
		if err := ValidateURL(c.Server.CORSOrigin, "cors origin"); err != nil {
			return err
		}
	}
	if c.Upload.ScratchDir == "" {
		return fmt.Errorf("upload.scratch_dir must not be empty")
	}

	switch c.Transcriber.Backend {
	case TranscriberBackendWhisperCpp, TranscriberBackendWhisperServer, TranscriberBackendOpenAI:
	default:
		return fmt.Errorf("transcriber.backend must be %q, %q or %q, got %q",
			TranscriberBackendWhisperCpp, TranscriberBackendWhisperServer, TranscriberBackendOpenAI, c.Transcriber.Backend)
	}

	switch c.Cleanup.Backend {
	case CleanupBackendOpenAI, CleanupBackendAnthropic, CleanupBackendGemini:
	default:
		return fmt.Errorf("cleanup.backend must be %q, %q or %q, got %q",
			CleanupBackendOpenAI, CleanupBackendAnthropic, CleanupBackendGemini, c.Cleanup.Backend)
	}
	if c.Cleanup.BaseURL != "" {
		if err := ValidateURL(c.Cleanup.BaseURL, "cleanup"); err != nil {
			return err
		}
	}
	if c.Cleanup.APIKey == "" {
		return fmt.Errorf("cleanup API key is required")
	}

	return nil
}

// expandEnvironmentVariables expands ${VAR} values in transcriber settings
func (c *Config) expandEnvironmentVariables() {
	for key, value := range c.Transcriber.Settings {
		if strValue, ok := value.(string); ok {
			if strings.HasPrefix(strValue, "${") && strings.HasSuffix(strValue, "}") {
				envVar := strings.TrimSuffix(strings.TrimPrefix(strValue, "${"), "}")
				c.Transcriber.Settings[key] = os.Getenv(envVar)
			}
		}
	}
}

func setString(dst *string, env string) {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		*dst = v
	}
}

func setSetting(settings map[string]interface{}, key, env string) {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		settings[key] = v
	}
}

// expandTilde replaces a leading ~ with the user's home directory.
func expandTilde(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
