package driving

import (
	"context"

	"github.com/studymate-ai/studymate/internal/core/domain"
)

// RetrievalService ranks chunks across one or more documents for a
// question.
type RetrievalService interface {
	// Query embeds the question and returns at most topK results
	// ranked by boosted similarity. When nothing clears the score
	// threshold it falls back to literal keyword occurrence ranking
	// before returning empty.
	Query(ctx context.Context, question string, documentIDs []string, topK int) ([]domain.RetrievalResult, error)
}
