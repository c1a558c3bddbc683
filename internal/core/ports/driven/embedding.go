package driven

import (
	"context"

	"github.com/studymate-ai/studymate/internal/core/domain"
)

// EmbeddingService converts text into fixed-length vectors.
//
// Implementations include the remote granite adapter, the deterministic
// hashed fallback, and the failover composite that substitutes the
// fallback when the remote service is unreachable. The returned
// embedding carries its provenance so callers and tests can distinguish
// degraded vectors from service-produced ones.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) (domain.Embedding, error)

	// Dimensions returns the embedding vector size. Every
	// implementation wired into one index must agree on this.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
