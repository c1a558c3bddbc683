package driving

import (
	"context"

	"github.com/studymate-ai/studymate/internal/core/domain"
)

// AnswerService answers questions strictly from indexed content.
type AnswerService interface {
	// Ask classifies the question, retrieves supporting chunks from
	// the given documents (all documents when the slice is empty) and
	// synthesises an answer. Questions with research phrasing over two
	// or more documents are routed to cross-document theme synthesis.
	Ask(ctx context.Context, question string, documentIDs []string) (*domain.Answer, error)

	// Synthesize runs cross-document theme synthesis directly.
	Synthesize(ctx context.Context, question string, documentIDs []string) (*domain.ThemeReport, error)
}
