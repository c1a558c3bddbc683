package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	got := Tokens("Self-supervised learning, it's *very* effective!")

	assert.Equal(t, []string{"self-supervised", "learning", "it's", "very", "effective"}, got)
}

func TestTokens_Empty(t *testing.T) {
	assert.Empty(t, Tokens("   \n\t  "))
}

func TestSentences(t *testing.T) {
	got := Sentences("First sentence. Second one! Third?\nFourth on its own line")

	assert.Equal(t, []string{
		"First sentence.",
		"Second one!",
		"Third?",
		"Fourth on its own line",
	}, got)
}

func TestSentences_Empty(t *testing.T) {
	assert.Empty(t, Sentences(""))
}

func TestJaccard(t *testing.T) {
	assert.InDelta(t, 1.0, Jaccard("gradient descent", "gradient descent"), 1e-9)
	assert.InDelta(t, 1.0/3.0, Jaccard("gradient descent", "gradient ascent"), 1e-9)
	assert.Zero(t, Jaccard("anything", ""))
	assert.Zero(t, Jaccard("", ""))
}

func TestJaccard_CaseInsensitive(t *testing.T) {
	assert.InDelta(t, 1.0, Jaccard("Ensemble Methods", "ensemble methods"), 1e-9)
}
