package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractConcepts_Definitions(t *testing.T) {
	text := "Overfitting is when a model learns the training data too well. " +
		"Regularization refers to techniques that penalise model complexity."

	concepts := ExtractConcepts(text)

	require.Len(t, concepts, 2)

	terms := []string{concepts[0].Term, concepts[1].Term}
	assert.Contains(t, terms, "Overfitting")
	assert.Contains(t, terms, "Regularization")

	for _, c := range concepts {
		if c.Term == "Overfitting" {
			assert.Equal(t, "when a model learns the training data too well", c.Definition)
			assert.Contains(t, c.Statement, "Overfitting is")
		}
	}
}

func TestExtractConcepts_ListItems(t *testing.T) {
	text := "Common loss functions:\n" +
		"1. Mean squared error for regression\n" +
		"- Cross entropy for classification\n"

	concepts := ExtractConcepts(text)

	require.Len(t, concepts, 2)
	assert.Equal(t, concepts[0].Definition, concepts[0].Term)
}

func TestExtractConcepts_ImportanceFromOccurrences(t *testing.T) {
	text := "Entropy is a measure of uncertainty. Entropy appears everywhere. " +
		"We compute entropy for every split."

	concepts := ExtractConcepts(text)

	require.NotEmpty(t, concepts)
	// Three occurrences at 0.2 each.
	assert.InDelta(t, 0.6, concepts[0].Importance, 1e-9)
}

func TestExtractConcepts_ImportanceSignalBonus(t *testing.T) {
	text := "Backpropagation is the key algorithm for training networks."

	concepts := ExtractConcepts(text)

	require.NotEmpty(t, concepts)
	// One occurrence plus the "key" signal bonus.
	assert.InDelta(t, 0.5, concepts[0].Importance, 1e-9)
}

func TestExtractConcepts_DeduplicatesTerms(t *testing.T) {
	text := "Entropy is uncertainty. Entropy is also used in physics."

	concepts := ExtractConcepts(text)

	count := 0
	for _, c := range concepts {
		if c.Term == "Entropy" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractConcepts_NoConcepts(t *testing.T) {
	assert.Empty(t, ExtractConcepts("just loose words without structure or punctuation"))
}
