// Package hashed provides a deterministic, hash-based embedding service
// used when no remote embedding service is reachable.
//
// The vectors are purely lexical: the same text always yields the same
// vector, which keeps tests deterministic and prevents silent drift
// between runs without a network. Hashed vectors and remote vectors are
// interchangeable in all downstream similarity math.
package hashed

import (
	"context"
	"hash/fnv"
	"math"

	"github.com/studymate-ai/studymate/internal/analysis"
	"github.com/studymate-ai/studymate/internal/core/domain"
)

// maxWords bounds how many leading words contribute to the vector.
const maxWords = 100

// EmbeddingService is the deterministic fallback embedder.
type EmbeddingService struct{}

// NewEmbeddingService creates the fallback embedder.
func NewEmbeddingService() *EmbeddingService {
	return &EmbeddingService{}
}

// Embed maps each of the first 100 words to a bucket via a stable hash
// and accumulates 1/(wordCount+1) per occurrence, then L2-normalises.
// Empty input yields the zero vector unchanged.
func (s *EmbeddingService) Embed(_ context.Context, text string) (domain.Embedding, error) {
	vec := make([]float32, domain.EmbeddingDimensions)

	words := analysis.Tokens(text)
	if len(words) > 0 {
		weight := 1.0 / float64(len(words)+1)
		limit := len(words)
		if limit > maxWords {
			limit = maxWords
		}
		for _, word := range words[:limit] {
			vec[bucket(word)] += float32(weight)
		}
		normalize(vec)
	}

	return domain.Embedding{
		Vector:     vec,
		Provenance: domain.ProvenanceFallback,
	}, nil
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return domain.EmbeddingDimensions
}

// ModelName returns the name of the embedding model being used.
func (s *EmbeddingService) ModelName() string {
	return "hashed-fallback"
}

// Ping always succeeds: the fallback has no external dependency.
func (s *EmbeddingService) Ping(_ context.Context) error {
	return nil
}

// Close releases resources.
func (s *EmbeddingService) Close() error {
	return nil
}

// bucket maps a word into a vector index with FNV-1a.
func bucket(word string) int {
	h := fnv.New32a()
	h.Write([]byte(word))
	return int(h.Sum32() % uint32(domain.EmbeddingDimensions))
}

// normalize scales the vector to unit L2 norm. No-op when the magnitude
// is zero.
func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return
	}
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
}
