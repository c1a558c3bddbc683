package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine_IdenticalVectors(t *testing.T) {
	v := []float32{0.5, 0.1, 0.8}

	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
}

func TestCosine_OrthogonalVectors(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}

	assert.InDelta(t, 0.0, Cosine(a, b), 1e-9)
}

func TestCosine_OppositeVectors(t *testing.T) {
	a := []float32{1, 2}
	b := []float32{-1, -2}

	assert.InDelta(t, -1.0, Cosine(a, b), 1e-9)
}

func TestCosine_ZeroVectorYieldsZero(t *testing.T) {
	a := []float32{1, 2, 3}
	zero := []float32{0, 0, 0}

	assert.Zero(t, Cosine(a, zero))
	assert.Zero(t, Cosine(zero, zero))
}

func TestCosine_MismatchedLengths(t *testing.T) {
	assert.Zero(t, Cosine([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Zero(t, Cosine(nil, nil))
}

func TestZeroEmbedding(t *testing.T) {
	emb := ZeroEmbedding()

	assert.Len(t, emb.Vector, EmbeddingDimensions)
	assert.Equal(t, ProvenanceZero, emb.Provenance)
	for _, v := range emb.Vector {
		assert.Zero(t, v)
	}
}

func TestSettingsValidate(t *testing.T) {
	assert.NoError(t, DefaultSettings().Validate())

	bad := DefaultSettings()
	bad.ChunkOverlap = bad.ChunkSize
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)

	bad = DefaultSettings()
	bad.TextbookBoost = 0.5
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)

	bad = DefaultSettings()
	bad.ShortAnswerThreshold = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)
}
