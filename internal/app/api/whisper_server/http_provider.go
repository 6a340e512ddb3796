package whisper_server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"transcript-cleaner/internal/app/api/provider"
)

const providerName = "whisper_server"

// WhisperServerProvider implements transcription via HTTP to a whisper-server instance
type WhisperServerProvider struct {
	config WhisperServerConfig
	client *http.Client
}

// WhisperServerConfig represents configuration for whisper-server HTTP API
type WhisperServerConfig struct {
	BaseURL        string            // Base URL of whisper-server (e.g., "http://192.168.1.100:8080")
	InferencePath  string            // default: "/inference"
	LoadPath       string            // default: "/load"
	ModelPath      string            // Model the server is asked to load on startup; empty keeps the server's own
	Timeout        time.Duration     // Request timeout
	Language       string            // Default language code
	ResponseFormat string            // json or text
	Temperature    float64           // Decoding temperature (0.0-1.0)
	Translate      bool              // Translate to English
	CustomHeaders  map[string]string // Custom HTTP headers
}

// WhisperServerResponse represents the json response from whisper-server
type WhisperServerResponse struct {
	Text     string  `json:"text,omitempty"`
	Language string  `json:"language,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// NewWhisperServerProvider creates a new whisper-server HTTP provider
func NewWhisperServerProvider(config WhisperServerConfig) *WhisperServerProvider {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.InferencePath == "" {
		config.InferencePath = "/inference"
	}
	if config.LoadPath == "" {
		config.LoadPath = "/load"
	}
	if config.Timeout == 0 {
		config.Timeout = 120 * time.Second
	}
	if config.ResponseFormat == "" {
		config.ResponseFormat = "json"
	}
	if config.CustomHeaders == nil {
		config.CustomHeaders = make(map[string]string)
	}

	return &WhisperServerProvider{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// NewWhisperServerProviderFromSettings creates provider from generic settings
func NewWhisperServerProviderFromSettings(settings map[string]interface{}) (*WhisperServerProvider, error) {
	config := WhisperServerConfig{}

	baseURL, ok := settings["base_url"].(string)
	if !ok || baseURL == "" {
		return nil, fmt.Errorf("whisper_server provider requires 'base_url' setting")
	}
	config.BaseURL = baseURL

	if inferencePath, ok := settings["inference_path"].(string); ok {
		config.InferencePath = inferencePath
	}
	if loadPath, ok := settings["load_path"].(string); ok {
		config.LoadPath = loadPath
	}
	if modelPath, ok := settings["model_path"].(string); ok {
		config.ModelPath = modelPath
	}
	switch timeout := settings["timeout"].(type) {
	case int:
		config.Timeout = time.Duration(timeout) * time.Second
	case float64:
		config.Timeout = time.Duration(timeout * float64(time.Second))
	}
	if language, ok := settings["language"].(string); ok {
		config.Language = language
	}
	if responseFormat, ok := settings["response_format"].(string); ok {
		if responseFormat != "json" && responseFormat != "text" {
			return nil, fmt.Errorf("whisper_server response_format must be json or text, got %q", responseFormat)
		}
		config.ResponseFormat = responseFormat
	}
	if temperature, ok := settings["temperature"].(float64); ok {
		config.Temperature = temperature
	}
	if translate, ok := settings["translate"].(bool); ok {
		config.Translate = translate
	}
	if headers, ok := settings["custom_headers"].(map[string]interface{}); ok {
		config.CustomHeaders = make(map[string]string)
		for k, v := range headers {
			if str, ok := v.(string); ok {
				config.CustomHeaders[k] = str
			}
		}
	}

	return NewWhisperServerProvider(config), nil
}

// Load asks the server to load the configured model. Without a model path
// it only checks that the server answers.
func (wsp *WhisperServerProvider) Load(ctx context.Context) error {
	var (
		req *http.Request
		err error
	)
	if wsp.config.ModelPath == "" {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, wsp.config.BaseURL+"/", nil)
	} else {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		if err := writer.WriteField("model", wsp.config.ModelPath); err != nil {
			return err
		}
		if err := writer.Close(); err != nil {
			return err
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, wsp.config.BaseURL+wsp.config.LoadPath, body)
		if err == nil {
			req.Header.Set("Content-Type", writer.FormDataContentType())
		}
	}
	if err != nil {
		return fmt.Errorf("create load request: %w", err)
	}
	wsp.setHeaders(req)

	resp, err := wsp.client.Do(req)
	if err != nil {
		return &provider.TranscriptionError{
			Code:      "server_unreachable",
			Message:   fmt.Sprintf("whisper-server not reachable at %s", wsp.config.BaseURL),
			Provider:  providerName,
			Retryable: true,
			Err:       err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &provider.TranscriptionError{
			Code:     "load_failed",
			Message:  fmt.Sprintf("load returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(data))),
			Provider: providerName,
		}
	}

	zap.L().Info("whisper-server ready",
		zap.String("base_url", wsp.config.BaseURL),
		zap.String("model", wsp.config.ModelPath))
	return nil
}

// Transcript uploads the file to the inference endpoint and returns the text
func (wsp *WhisperServerProvider) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	if _, err := os.Stat(inputFilePath); err != nil {
		return "", &provider.TranscriptionError{
			Code:     "file_not_found",
			Message:  fmt.Sprintf("input file not found: %s", inputFilePath),
			Provider: providerName,
			Err:      err,
		}
	}

	body, contentType, err := wsp.createMultipartForm(inputFilePath)
	if err != nil {
		return "", &provider.TranscriptionError{
			Code:     "form_creation_failed",
			Message:  "failed to create multipart form",
			Provider: providerName,
			Err:      err,
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, wsp.config.BaseURL+wsp.config.InferencePath, body)
	if err != nil {
		return "", fmt.Errorf("create inference request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	wsp.setHeaders(httpReq)

	resp, err := wsp.client.Do(httpReq)
	if err != nil {
		return "", &provider.TranscriptionError{
			Code:      "request_failed",
			Message:   "HTTP request failed",
			Provider:  providerName,
			Retryable: true,
			Err:       err,
		}
	}
	defer resp.Body.Close()

	responseData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &provider.TranscriptionError{
			Code:      "response_read_failed",
			Message:   "failed to read response",
			Provider:  providerName,
			Retryable: true,
			Err:       err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &provider.TranscriptionError{
			Code:      "api_error",
			Message:   fmt.Sprintf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(responseData))),
			Provider:  providerName,
			Retryable: resp.StatusCode >= 500,
		}
	}

	text, err := wsp.parseResponse(responseData)
	if err != nil {
		return "", &provider.TranscriptionError{
			Code:     "response_parse_failed",
			Message:  "failed to parse response",
			Provider: providerName,
			Err:      err,
		}
	}
	return text, nil
}

func (wsp *WhisperServerProvider) setHeaders(req *http.Request) {
	for key, value := range wsp.config.CustomHeaders {
		req.Header.Set(key, value)
	}
}

// createMultipartForm creates multipart form data for the upload
func (wsp *WhisperServerProvider) createMultipartForm(inputFilePath string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	file, err := os.Open(inputFilePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile("file", filepath.Base(inputFilePath))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("failed to copy file content: %w", err)
	}

	params := map[string]string{
		"response_format": wsp.config.ResponseFormat,
		"temperature":     fmt.Sprintf("%.2f", wsp.config.Temperature),
	}
	if wsp.config.Language != "" {
		params["language"] = wsp.config.Language
	}
	if wsp.config.Translate {
		params["translate"] = "true"
	}

	for key, value := range params {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

// parseResponse extracts the transcript according to the configured response format
func (wsp *WhisperServerProvider) parseResponse(data []byte) (string, error) {
	if wsp.config.ResponseFormat == "text" {
		return strings.TrimSpace(string(data)), nil
	}

	var resp WhisperServerResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if resp.Error != "" {
		return "", fmt.Errorf("server error: %s", resp.Error)
	}
	return strings.TrimSpace(resp.Text), nil
}
