// Package failover composes a primary embedding service with the
// deterministic fallback. Transient remote failures never reach the
// caller: the fallback vector is substituted and the degradation is
// visible through the embedding's provenance tag.
package failover

import (
	"context"

	"github.com/studymate-ai/studymate/internal/core/domain"
	"github.com/studymate-ai/studymate/internal/core/ports/driven"
	"github.com/studymate-ai/studymate/internal/logger"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// EmbeddingService tries the primary service and substitutes the
// fallback on any error. A nil primary skips straight to the fallback.
type EmbeddingService struct {
	primary  driven.EmbeddingService
	fallback driven.EmbeddingService
}

// NewEmbeddingService composes the primary and fallback services.
// The fallback must never fail; the deterministic hashed embedder
// satisfies that.
func NewEmbeddingService(primary, fallback driven.EmbeddingService) *EmbeddingService {
	return &EmbeddingService{
		primary:  primary,
		fallback: fallback,
	}
}

// Embed returns the primary embedding when available, otherwise the
// deterministic fallback. The returned provenance tells callers which
// path produced the vector.
func (s *EmbeddingService) Embed(ctx context.Context, text string) (domain.Embedding, error) {
	if s.primary != nil {
		emb, err := s.primary.Embed(ctx, text)
		if err == nil {
			return emb, nil
		}
		logger.Warn("remote embedding failed, using fallback: %v", err)
	}
	return s.fallback.Embed(ctx, text)
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return s.fallback.Dimensions()
}

// ModelName returns the primary model name when configured, otherwise
// the fallback's.
func (s *EmbeddingService) ModelName() string {
	if s.primary != nil {
		return s.primary.ModelName()
	}
	return s.fallback.ModelName()
}

// Ping reports the primary's reachability. The fallback keeps the
// composite usable either way, so callers treat a failure as a note
// about degraded quality, not an outage.
func (s *EmbeddingService) Ping(ctx context.Context) error {
	if s.primary == nil {
		return domain.ErrEmbeddingUnavailable
	}
	return s.primary.Ping(ctx)
}

// Close releases resources on both services.
func (s *EmbeddingService) Close() error {
	if s.primary != nil {
		if err := s.primary.Close(); err != nil {
			return err
		}
	}
	return s.fallback.Close()
}
