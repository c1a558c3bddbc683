// Package granite provides a generation service adapter for a hosted
// granite instruct endpoint.
package granite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/studymate-ai/studymate/internal/core/ports/driven"
)

// Ensure GenerationService implements the interface.
var _ driven.GenerationService = (*GenerationService)(nil)

// Default configuration values. The sampling defaults follow the
// granite instruct recipe: 512 new tokens, temperature 0.7, top-p 0.9.
const (
	DefaultBaseURL     = "http://localhost:8080"
	DefaultModel       = "granite-3.2-2b-instruct"
	DefaultTimeout     = 15 * time.Second
	DefaultMaxLength   = 512
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9

	DefaultRequestsPerSecond = 2
	DefaultBurst             = 4
)

// userMarker and assistantMarker frame the instruct prompt.
const (
	userMarker      = "<|user|>"
	assistantMarker = "<|assistant|>"
)

// Config holds configuration for the generation service.
type Config struct {
	// BaseURL is the generation API base URL.
	BaseURL string

	// Model is the instruct model to use.
	Model string

	// Timeout is the per-request timeout (default: 15s).
	Timeout time.Duration

	// RequestsPerSecond rate-limits outbound requests.
	RequestsPerSecond float64
}

// GenerationService produces text through the remote endpoint.
type GenerationService struct {
	client  *http.Client
	limiter *rate.Limiter
	baseURL string
	model   string
}

// generateRequest is the API request format.
type generateRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_new_tokens"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

// generateResponse is the API response format.
type generateResponse struct {
	Response string `json:"response"`
}

// NewGenerationService creates a new remote generation service.
func NewGenerationService(cfg Config) *GenerationService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}

	return &GenerationService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), DefaultBurst),
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
	}
}

// Generate produces text for a prompt. The prompt is framed with the
// instruct markers and the assistant turn is extracted from the
// response, so callers only ever see the answer body.
func (s *GenerationService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	if opts.MaxLength <= 0 {
		opts.MaxLength = DefaultMaxLength
	}
	if opts.Temperature <= 0 {
		opts.Temperature = DefaultTemperature
	}
	if opts.TopP <= 0 {
		opts.TopP = DefaultTopP
	}

	reqBody := generateRequest{
		Model:       s.model,
		Prompt:      fmt.Sprintf("%s\n%s\n%s\n", userMarker, prompt, assistantMarker),
		MaxTokens:   opts.MaxLength,
		Temperature: opts.Temperature,
		TopP:        opts.TopP,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/v1/generate",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("generation error (status %d): failed to read response", resp.StatusCode)
		}
		return "", fmt.Errorf("generation error (status %d): %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	text := extractAssistantTurn(genResp.Response)
	if text == "" {
		return "", fmt.Errorf("malformed response: empty generation")
	}
	return text, nil
}

// extractAssistantTurn strips the prompt echo some servers return and
// keeps only the text after the last assistant marker.
func extractAssistantTurn(response string) string {
	if idx := strings.LastIndex(response, assistantMarker); idx >= 0 {
		response = response[idx+len(assistantMarker):]
	}
	return strings.TrimSpace(response)
}

// ModelName returns the name of the generation model being used.
func (s *GenerationService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by checking the health
// endpoint.
func (s *GenerationService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/healthz", http.NoBody)
	if err != nil {
		return fmt.Errorf("create ping request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("generation service returned status %d", resp.StatusCode)
	}
	return nil
}

// Close releases resources.
func (s *GenerationService) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
