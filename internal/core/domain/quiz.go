package domain

// QuestionType distinguishes the quiz question formats.
type QuestionType string

// Quiz question types.
const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionShortAnswer    QuestionType = "short-answer"
	QuestionTrueFalse      QuestionType = "true-false"
)

// IsValid returns true if the question type is recognised.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionMultipleChoice, QuestionShortAnswer, QuestionTrueFalse:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t QuestionType) String() string {
	return string(t)
}

// Difficulty labels how hard a quiz question is expected to be.
type Difficulty string

// Question difficulties.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuizQuestion is a generated assessment item. Immutable once created.
type QuizQuestion struct {
	// ID is the unique question identifier.
	ID string

	// DocumentID is the document the question was derived from.
	DocumentID string

	// Type is the question format.
	Type QuestionType

	// Question is the question text shown to the student.
	Question string

	// Options is present only for multiple-choice and true-false.
	Options []string

	// CorrectAnswer is the expected answer. It is always textually
	// traceable to SourceExcerpt.
	CorrectAnswer string

	// Explanation restates the underlying fact for feedback.
	Explanation string

	// Difficulty is derived from the concept's importance score.
	Difficulty Difficulty

	// Topic is the concept the question tests.
	Topic string

	// SourceExcerpt is the chunk excerpt the question was built from.
	SourceExcerpt string
}

// EvaluationResult grades one submitted answer. It is returned to the
// caller and never stored by the engine.
type EvaluationResult struct {
	// Correct is the pass/fail verdict.
	Correct bool

	// Score is in [0, 1]. Binary for multiple-choice and true-false,
	// graded by word overlap for short answers.
	Score float64

	// Feedback is a short band label such as "excellent".
	Feedback string

	// Explanation restates the expected answer.
	Explanation string
}
