package failover

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studymate-ai/studymate/internal/adapters/driven/embedding/hashed"
	"github.com/studymate-ai/studymate/internal/core/domain"
)

type stubEmbedder struct {
	embedding domain.Embedding
	embedErr  error
	pingErr   error
	closed    bool
}

func (s *stubEmbedder) Embed(_ context.Context, _ string) (domain.Embedding, error) {
	if s.embedErr != nil {
		return domain.Embedding{}, s.embedErr
	}
	return s.embedding, nil
}

func (s *stubEmbedder) Dimensions() int { return domain.EmbeddingDimensions }
func (s *stubEmbedder) ModelName() string { return "stub" }
func (s *stubEmbedder) Ping(_ context.Context) error { return s.pingErr }
func (s *stubEmbedder) Close() error {
	s.closed = true
	return nil
}

func TestEmbed_UsesPrimaryWhenHealthy(t *testing.T) {
	primary := &stubEmbedder{
		embedding: domain.Embedding{
			Vector:     make([]float32, domain.EmbeddingDimensions),
			Provenance: domain.ProvenanceRemote,
		},
	}
	svc := NewEmbeddingService(primary, hashed.NewEmbeddingService())

	emb, err := svc.Embed(context.Background(), "text")
	require.NoError(t, err)

	assert.Equal(t, domain.ProvenanceRemote, emb.Provenance)
}

func TestEmbed_FallsBackOnPrimaryError(t *testing.T) {
	primary := &stubEmbedder{embedErr: errors.New("connection refused")}
	svc := NewEmbeddingService(primary, hashed.NewEmbeddingService())

	emb, err := svc.Embed(context.Background(), "gradient descent")
	require.NoError(t, err)

	assert.Equal(t, domain.ProvenanceFallback, emb.Provenance)
	assert.Len(t, emb.Vector, domain.EmbeddingDimensions)
}

func TestEmbed_NilPrimarySkipsToFallback(t *testing.T) {
	svc := NewEmbeddingService(nil, hashed.NewEmbeddingService())

	emb, err := svc.Embed(context.Background(), "text")
	require.NoError(t, err)

	assert.Equal(t, domain.ProvenanceFallback, emb.Provenance)
}

func TestPing_NilPrimaryReportsUnavailable(t *testing.T) {
	svc := NewEmbeddingService(nil, hashed.NewEmbeddingService())

	assert.ErrorIs(t, svc.Ping(context.Background()), domain.ErrEmbeddingUnavailable)
}

func TestPing_DelegatesToPrimary(t *testing.T) {
	pingErr := errors.New("unreachable")
	svc := NewEmbeddingService(&stubEmbedder{pingErr: pingErr}, hashed.NewEmbeddingService())

	assert.ErrorIs(t, svc.Ping(context.Background()), pingErr)
}

func TestModelName(t *testing.T) {
	withPrimary := NewEmbeddingService(&stubEmbedder{}, hashed.NewEmbeddingService())
	withoutPrimary := NewEmbeddingService(nil, hashed.NewEmbeddingService())

	assert.Equal(t, "stub", withPrimary.ModelName())
	assert.Equal(t, "hashed-fallback", withoutPrimary.ModelName())
}

func TestClose_ClosesBoth(t *testing.T) {
	primary := &stubEmbedder{}
	svc := NewEmbeddingService(primary, hashed.NewEmbeddingService())

	require.NoError(t, svc.Close())
	assert.True(t, primary.closed)
}
