package domain

import "math"

// EmbeddingDimensions is the fixed vector length every embedding in the
// index must have, regardless of provenance.
const EmbeddingDimensions = 384

// Provenance records where an embedding vector came from. Remote and
// fallback vectors are interchangeable in all downstream math, but
// callers can use the tag to distinguish degraded results.
type Provenance string

// Embedding provenances.
const (
	// ProvenanceRemote is a vector produced by the external embedding service.
	ProvenanceRemote Provenance = "remote"

	// ProvenanceFallback is a deterministic hash-based substitute vector.
	ProvenanceFallback Provenance = "fallback"

	// ProvenanceZero is an all-zero placeholder stored when embedding a
	// chunk failed outright. The chunk stays in the index but is
	// effectively unretrievable.
	ProvenanceZero Provenance = "zero"
)

// Embedding is a fixed-length vector representation of a piece of text.
type Embedding struct {
	// Vector holds the vector components.
	Vector []float32

	// Provenance records how the vector was produced.
	Provenance Provenance
}

// ZeroEmbedding returns an all-zero placeholder embedding.
func ZeroEmbedding() Embedding {
	return Embedding{
		Vector:     make([]float32, EmbeddingDimensions),
		Provenance: ProvenanceZero,
	}
}

// Cosine computes the cosine similarity between two vectors of equal
// length. A zero-magnitude operand yields 0 rather than an error, so a
// zero-vector chunk simply never ranks.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
