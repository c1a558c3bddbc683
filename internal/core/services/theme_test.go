package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studymate-ai/studymate/internal/core/domain"
)

func TestIsResearchQuestion(t *testing.T) {
	assert.True(t, IsResearchQuestion("What do these papers say about ensembles?"))
	assert.True(t, IsResearchQuestion("Find common themes across these documents"))
	assert.True(t, IsResearchQuestion("Synthesize the findings for me"))
	assert.False(t, IsResearchQuestion("What is overfitting?"))
	assert.False(t, IsResearchQuestion("Explain gradient descent"))
}

func TestSynthesize_FindsThemeAcrossDocuments(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "paper-1", paperOneText)
	engine.ingest(t, "paper-2", paperTwoText)

	report, err := engine.themes.Synthesize(context.Background(),
		"What do these papers say about ensemble methods?", nil)
	require.NoError(t, err)

	require.NotEmpty(t, report.Themes)
	theme := report.Themes[0]
	assert.Equal(t, "ensemble methods", theme.Label)
	assert.GreaterOrEqual(t, len(theme.DocumentIDs), 2)
	assert.Len(t, theme.Excerpts, len(theme.DocumentIDs))
	assert.Len(t, theme.Analyses, len(theme.DocumentIDs))

	for _, ex := range theme.Excerpts {
		assert.NotEmpty(t, ex.Text)
		assert.Greater(t, ex.Relevance, 0.0)
	}
	for _, a := range theme.Analyses {
		assert.Contains(t, a.Text, "nsemble")
	}

	assert.Contains(t, report.DocumentNames, "paper-1")
	assert.Contains(t, report.DocumentNames, "paper-2")
	assert.Contains(t, report.Narrative, "Ensemble Methods")
}

func TestSynthesize_ConfidenceBounds(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "paper-1", paperOneText)
	engine.ingest(t, "paper-2", paperTwoText)

	report, err := engine.themes.Synthesize(context.Background(),
		"What do these papers say about ensemble methods?", nil)
	require.NoError(t, err)

	assert.Greater(t, report.Confidence, 0.2)
	assert.LessOrEqual(t, report.Confidence, 0.95)
}

func TestSynthesize_ConceptInOneDocumentOnlyYieldsNoTheme(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "bio-1", "Photosynthesis converts sunlight into sugar within the leaves of these plants we study in papers.")
	engine.ingest(t, "bio-2", "Respiration consumes oxygen to release stored energy from sugars inside animal cells.")

	report, err := engine.themes.Synthesize(context.Background(),
		"What do these papers say about photosynthesis?", nil)
	require.NoError(t, err)

	assert.Empty(t, report.Themes)
	assert.Contains(t, report.Narrative, "do not share recurring themes")
}

func TestSynthesize_NoMatchingContent(t *testing.T) {
	engine := newTestEngine(t)
	engine.ingest(t, "pasta", pastaText)
	engine.ingest(t, "pasta-2", "Fresh egg pasta cooks faster than dried varieties.")

	report, err := engine.themes.Synthesize(context.Background(),
		"quantum chromodynamics lattice", nil)
	require.NoError(t, err)

	assert.Empty(t, report.Themes)
	assert.Zero(t, report.Confidence)
}

func TestConcepts_CapsCandidates(t *testing.T) {
	s := &ThemeService{settings: domain.DefaultSettings()}

	question := "Compare the papers about ensemble methods, regarding transfer learning, " +
		"concerning gradient descent, on the topic of regularization strategies, about convolution networks."
	concepts := s.concepts(question)

	assert.Equal(t, []string{
		"ensemble methods",
		"transfer learning",
		"gradient descent",
		"regularization strategies",
		"convolution networks",
	}, concepts)
}

func TestMentionsConcept_WordOverlapThreshold(t *testing.T) {
	text := "Gradient descent updates weights using the loss surface."

	// Literal containment holds at any threshold.
	assert.True(t, mentionsConcept(text, "gradient descent", 0.99))

	// Two of three concept words present: fraction 0.67.
	assert.True(t, mentionsConcept(text, "stochastic gradient descent", 0.5))
	assert.False(t, mentionsConcept(text, "stochastic gradient descent", 0.7))

	// Single non-contained words never pass on overlap alone.
	assert.False(t, mentionsConcept(text, "momentum", 0.0))
}

func TestCrossCuttingInsights_MethodTheorySplit(t *testing.T) {
	themes := []domain.Theme{
		{
			Label:       "boosting technique",
			DocumentIDs: []string{"paper-1", "paper-2"},
			Excerpts: []domain.ThemeExcerpt{
				{DocumentID: "paper-1", DocumentName: "paper-1"},
				{DocumentID: "paper-2", DocumentName: "paper-2"},
			},
		},
		{
			Label:       "learning theory",
			DocumentIDs: []string{"paper-1", "paper-2"},
			Excerpts: []domain.ThemeExcerpt{
				{DocumentID: "paper-1", DocumentName: "paper-1"},
				{DocumentID: "paper-2", DocumentName: "paper-2"},
			},
		},
	}

	insights := crossCuttingInsights(themes)

	assert.Contains(t, insights, "Methodological themes (Boosting Technique)")
	assert.Contains(t, insights, "theoretical ones (Learning Theory)")
}

func TestCrossCuttingInsights_SplitNeedsBothGroups(t *testing.T) {
	themes := []domain.Theme{
		{
			Label:       "boosting technique",
			DocumentIDs: []string{"paper-1", "paper-2"},
			Excerpts: []domain.ThemeExcerpt{
				{DocumentID: "paper-1", DocumentName: "paper-1"},
				{DocumentID: "paper-2", DocumentName: "paper-2"},
			},
		},
		{
			Label:       "ensemble approach",
			DocumentIDs: []string{"paper-1", "paper-2"},
			Excerpts: []domain.ThemeExcerpt{
				{DocumentID: "paper-1", DocumentName: "paper-1"},
				{DocumentID: "paper-2", DocumentName: "paper-2"},
			},
		},
	}

	insights := crossCuttingInsights(themes)

	assert.NotContains(t, insights, "Methodological themes")
	assert.NotContains(t, insights, "theoretical ones")
}

func TestSynthesize_EmptyQuestion(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.themes.Synthesize(context.Background(), "", nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSynthesize_EmptyIndex(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.themes.Synthesize(context.Background(), "what do these papers say about anything", nil)

	assert.ErrorIs(t, err, domain.ErrNoDocuments)
}
