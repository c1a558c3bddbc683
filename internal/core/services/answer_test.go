package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studymate-ai/studymate/internal/core/domain"
)

func newAnswerService(e *testEngine, generator *stubGenerator) *AnswerService {
	if generator == nil {
		return NewAnswerService(e.store, e.retrieval, nil, e.themes, e.settings)
	}
	return NewAnswerService(e.store, e.retrieval, generator, e.themes, e.settings)
}

func TestAsk_ExtractiveDefinition(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "textbook", textbookText)
	svc := newAnswerService(engine, nil)

	answer, err := svc.Ask(context.Background(), "What is overfitting?", nil)
	require.NoError(t, err)

	assert.Equal(t, domain.IntentDefinition, answer.Intent)
	assert.Equal(t, domain.AnswerExtractive, answer.Mode)
	assert.Contains(t, answer.Text, "learns the training data too well")
	assert.Contains(t, answer.Text, "From your study materials")
	assert.Greater(t, answer.Confidence, 0.0)
	assert.LessOrEqual(t, answer.Confidence, 1.0)

	require.NotEmpty(t, answer.Sources)
	assert.Equal(t, "textbook", answer.Sources[0].DocumentID)
	assert.Equal(t, "Chapter 1 Introduction", answer.Sources[0].Section)
}

func TestAsk_GeneratedMode(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "textbook", textbookText)
	generator := &stubGenerator{text: "Overfitting means the model memorises its training set."}
	svc := newAnswerService(engine, generator)

	answer, err := svc.Ask(context.Background(), "What is overfitting?", nil)
	require.NoError(t, err)

	assert.Equal(t, domain.AnswerGenerated, answer.Mode)
	assert.Equal(t, "Overfitting means the model memorises its training set.", answer.Text)

	// The prompt carries the question and the retrieved context.
	require.Len(t, generator.prompts, 1)
	assert.Contains(t, generator.prompts[0], "What is overfitting?")
	assert.Contains(t, generator.prompts[0], "learns the training data too well")
}

func TestAsk_GenerationFailureFallsBackToExtractive(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "textbook", textbookText)
	generator := &stubGenerator{err: errors.New("model endpoint timed out")}
	svc := newAnswerService(engine, generator)

	answer, err := svc.Ask(context.Background(), "What is overfitting?", nil)
	require.NoError(t, err)

	assert.Equal(t, domain.AnswerExtractive, answer.Mode)
	assert.Contains(t, answer.Text, "learns the training data too well")
}

func TestAsk_RefusesWhenNothingMatches(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "pasta", pastaText)
	svc := newAnswerService(engine, nil)

	answer, err := svc.Ask(context.Background(), "quantum chromodynamics lattice", nil)
	require.NoError(t, err)

	assert.Equal(t, domain.AnswerRefusal, answer.Mode)
	assert.Zero(t, answer.Confidence)
	assert.Empty(t, answer.Sources)
	assert.Contains(t, answer.Text, "couldn't find content")
}

func TestAsk_EmptyQuestion(t *testing.T) {
	engine := newTestEngine(t)
	svc := newAnswerService(engine, nil)

	_, err := svc.Ask(context.Background(), "   ", nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAsk_EmptyIndex(t *testing.T) {
	engine := newTestEngine(t)
	svc := newAnswerService(engine, nil)

	_, err := svc.Ask(context.Background(), "What is overfitting?", nil)

	assert.ErrorIs(t, err, domain.ErrNoDocuments)
}

func TestAsk_ResearchQuestionRoutesToThemes(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "paper-1", paperOneText)
	engine.ingest(t, "paper-2", paperTwoText)
	svc := newAnswerService(engine, nil)

	answer, err := svc.Ask(context.Background(), "What do these papers say about ensemble methods?", nil)
	require.NoError(t, err)

	assert.Contains(t, answer.Text, "ecurring theme")
	require.NotEmpty(t, answer.Sources)

	docs := map[string]bool{}
	for _, src := range answer.Sources {
		docs[src.DocumentID] = true
	}
	assert.True(t, docs["paper-1"])
	assert.True(t, docs["paper-2"])
}

func TestAsk_SingleDocumentScopeSkipsThemeRouting(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "paper-1", paperOneText)
	engine.ingest(t, "paper-2", paperTwoText)
	svc := newAnswerService(engine, nil)

	answer, err := svc.Ask(context.Background(),
		"What do these papers say about ensemble methods?", []string{"paper-1"})
	require.NoError(t, err)

	// Research phrasing over a single document stays on the normal path.
	assert.NotContains(t, answer.Text, "ecurring theme")
	for _, src := range answer.Sources {
		assert.Equal(t, "paper-1", src.DocumentID)
	}
}

func TestAsk_SummaryIntentJoinsLeadingSentences(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "textbook", textbookText)
	svc := newAnswerService(engine, nil)

	answer, err := svc.Ask(context.Background(), "Give me a summary of overfitting", nil)
	require.NoError(t, err)

	assert.Equal(t, domain.IntentSummary, answer.Intent)
	assert.Equal(t, domain.AnswerExtractive, answer.Mode)
	assert.NotEmpty(t, answer.Text)
}

func TestSynthesize_DelegatesToThemeService(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "paper-1", paperOneText)
	engine.ingest(t, "paper-2", paperTwoText)
	svc := newAnswerService(engine, nil)

	report, err := svc.Synthesize(context.Background(), "What do these papers say about ensemble methods?", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, report.Themes)
}
