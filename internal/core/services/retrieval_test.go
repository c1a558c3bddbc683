package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studymate-ai/studymate/internal/core/domain"
)

func TestQuery_RanksRelevantChunkFirst(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "textbook", textbookText)
	engine.ingest(t, "pasta", pastaText)

	results, err := engine.retrieval.Query(context.Background(), "What is overfitting?", nil, 0)
	require.NoError(t, err)

	require.NotEmpty(t, results)
	assert.Equal(t, "textbook", results[0].DocumentID)
	assert.Greater(t, results[0].Score, engine.settings.ScoreThreshold)
	assert.Equal(t, "Chapter 1 Introduction", results[0].Section)
}

func TestQuery_DropsResultsAtOrBelowThreshold(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "textbook", textbookText)
	engine.ingest(t, "pasta", pastaText)

	results, err := engine.retrieval.Query(context.Background(), "What is overfitting?", nil, 0)
	require.NoError(t, err)

	for _, r := range results {
		assert.Greater(t, r.Score, engine.settings.ScoreThreshold)
		assert.NotEqual(t, "pasta", r.DocumentID)
	}
}

func TestQuery_TextbookBoost(t *testing.T) {
	engine := newTestEngine(t)
	// Same body, one wrapped as a textbook chapter and one as loose notes.
	body := "Overfitting is when a model learns the training data too well."
	engine.ingest(t, "boosted", "Chapter 1 Introduction\n"+body)
	engine.ingest(t, "plain", body)

	results, err := engine.retrieval.Query(context.Background(), "What is overfitting?", nil, 0)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(results), 2)
	assert.Equal(t, "boosted", results[0].DocumentID)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestQuery_RespectsTopK(t *testing.T) {
	engine := newTestEngine(t)
	body := "Overfitting is when a model learns the training data too well."
	engine.ingest(t, "doc-1", body)
	engine.ingest(t, "doc-2", body)
	engine.ingest(t, "doc-3", body)

	results, err := engine.retrieval.Query(context.Background(), "What is overfitting?", nil, 2)
	require.NoError(t, err)

	assert.Len(t, results, 2)
}

func TestQuery_RestrictsToRequestedDocuments(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "textbook", textbookText)
	engine.ingest(t, "other", "Overfitting is when a model learns the training data too well.")

	results, err := engine.retrieval.Query(context.Background(), "What is overfitting?", []string{"other"}, 0)
	require.NoError(t, err)

	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, "other", r.DocumentID)
	}
}

func TestQuery_SkipsUnknownDocumentIDs(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "textbook", textbookText)

	results, err := engine.retrieval.Query(context.Background(), "What is overfitting?",
		[]string{"textbook", "missing"}, 0)
	require.NoError(t, err)

	assert.NotEmpty(t, results)
}

func TestQuery_AllUnknownDocumentIDs(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "textbook", textbookText)

	_, err := engine.retrieval.Query(context.Background(), "What is overfitting?", []string{"missing"}, 0)

	assert.ErrorIs(t, err, domain.ErrNoDocuments)
}

func TestQuery_EmptyIndex(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.retrieval.Query(context.Background(), "anything", nil, 0)

	assert.ErrorIs(t, err, domain.ErrNoDocuments)
}

func TestQuery_EmptyQuestion(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "textbook", textbookText)

	_, err := engine.retrieval.Query(context.Background(), "  ", nil, 0)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuery_KeywordFallbackWhenSimilarityTooLow(t *testing.T) {
	engine := newTestEngine(t)
	// One long chunk: the two shared query words are diluted far below
	// the similarity threshold, but literal occurrence still finds them.
	engine.ingest(t, "bio", biologyText)

	results, err := engine.retrieval.Query(context.Background(), "photosynthesis chloroplasts", nil, 0)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "bio", results[0].DocumentID)
	// Both query words occur literally.
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
}

func TestQuery_NoMatchesAnywhere(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "pasta", pastaText)

	results, err := engine.retrieval.Query(context.Background(), "quantum chromodynamics lattice", nil, 0)
	require.NoError(t, err)

	assert.Empty(t, results)
}
