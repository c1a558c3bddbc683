package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studymate-ai/studymate/internal/core/domain"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		question string
		want     domain.Intent
	}{
		{"What is overfitting?", domain.IntentDefinition},
		{"Define gradient descent", domain.IntentDefinition},
		{"How does backpropagation work?", domain.IntentExplanation},
		{"Explain regularization", domain.IntentExplanation},
		{"Summarize chapter 3", domain.IntentSummary},
		{"Give me a summary of the lecture", domain.IntentSummary},
		{"Compare bagging and boosting", domain.IntentComparison},
		{"Describe the difference between L1 and L2", domain.IntentComparison},
		{"Give an example of a loss function", domain.IntentExample},
		{"Name an instance of unsupervised learning", domain.IntentExample},
		{"Tell me everything about neural networks", domain.IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.question))
		})
	}
}

func TestClassifyIntent_FirstRuleWins(t *testing.T) {
	// Matches both definition and comparison triggers; definition is
	// checked first.
	got := ClassifyIntent("What is the difference between precision and recall?")
	assert.Equal(t, domain.IntentDefinition, got)
}

func TestClassifyIntent_CaseInsensitive(t *testing.T) {
	assert.Equal(t, domain.IntentDefinition, ClassifyIntent("WHAT IS entropy"))
}
