// Package granite provides an embedding service adapter for a hosted
// granite embedding endpoint.
package granite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/studymate-ai/studymate/internal/core/domain"
	"github.com/studymate-ai/studymate/internal/core/ports/driven"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8080"
	DefaultModel   = "granite-embedding-107m-multilingual"
	DefaultTimeout = 10 * time.Second

	// DefaultRequestsPerSecond caps how hard ingestion hammers the
	// embedding endpoint; bursts cover one document's chunks.
	DefaultRequestsPerSecond = 10
	DefaultBurst             = 20
)

// Config holds configuration for the remote embedding service.
type Config struct {
	// BaseURL is the embedding API base URL.
	BaseURL string

	// Model is the embedding model to use.
	Model string

	// Timeout is the per-request timeout (default: 10s).
	Timeout time.Duration

	// RequestsPerSecond rate-limits outbound requests.
	RequestsPerSecond float64
}

// EmbeddingService generates embeddings through the remote endpoint.
type EmbeddingService struct {
	client  *http.Client
	limiter *rate.Limiter
	baseURL string
	model   string
}

// embedRequest is the API request format.
type embedRequest struct {
	Model string `json:"model"`
	Text  string `json:"text"`
}

// embedResponse is the API response format.
type embedResponse struct {
	Embedding []float64 `json:"embedding"`
}

// NewEmbeddingService creates a new remote embedding service.
func NewEmbeddingService(cfg Config) *EmbeddingService {
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

	return &EmbeddingService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), DefaultBurst),
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
	}
}

// Embed generates a vector embedding for the given text. The response
// must carry exactly domain.EmbeddingDimensions components; anything
// else is a malformed payload and reported as an error so the failover
// layer can substitute the deterministic fallback.
func (s *EmbeddingService) Embed(ctx context.Context, text string) (domain.Embedding, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return domain.Embedding{}, fmt.Errorf("rate limit wait: %w", err)
	}

	reqBody := embedRequest{
		Model: s.model,
		Text:  text,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return domain.Embedding{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/v1/embeddings",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return domain.Embedding{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.Embedding{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return domain.Embedding{}, fmt.Errorf("embedding error (status %d): failed to read response", resp.StatusCode)
		}
		return domain.Embedding{}, fmt.Errorf("embedding error (status %d): %s", resp.StatusCode, string(body))
	}

	var embedResp embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&embedResp); err != nil {
		return domain.Embedding{}, fmt.Errorf("decode response: %w", err)
	}

	if len(embedResp.Embedding) != domain.EmbeddingDimensions {
		return domain.Embedding{}, fmt.Errorf("malformed response: got %d dimensions, want %d",
			len(embedResp.Embedding), domain.EmbeddingDimensions)
	}

	vec := make([]float32, len(embedResp.Embedding))
	for i, v := range embedResp.Embedding {
		vec[i] = float32(v)
	}

	return domain.Embedding{
		Vector:     vec,
		Provenance: domain.ProvenanceRemote,
	}, nil
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return domain.EmbeddingDimensions
}

// ModelName returns the name of the embedding model being used.
func (s *EmbeddingService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by checking the health
// endpoint. This validates connectivity without running inference.
func (s *EmbeddingService) Ping(ctx context.Context) error {
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
		return fmt.Errorf("embedding service returned status %d", resp.StatusCode)
	}
	return nil
}

// Close releases resources.
func (s *EmbeddingService) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
