package driving

import (
	"context"

	"github.com/studymate-ai/studymate/internal/core/domain"
)

// QuizService generates quiz questions from indexed content and grades
// submitted answers.
type QuizService interface {
	// Generate produces up to count questions spread across the given
	// documents. A document without extractable concepts contributes
	// zero questions; when no document yields any concept the call
	// fails with domain.ErrNoConcepts.
	Generate(ctx context.Context, documentIDs []string, count int) ([]domain.QuizQuestion, error)

	// Evaluate grades a submitted answer against the expected answer
	// for the given question type.
	Evaluate(submitted, correct string, questionType domain.QuestionType) domain.EvaluationResult
}
