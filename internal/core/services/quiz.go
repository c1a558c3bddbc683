package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studymate-ai/studymate/internal/analysis"
	"github.com/studymate-ai/studymate/internal/core/domain"
	"github.com/studymate-ai/studymate/internal/core/ports/driven"
	"github.com/studymate-ai/studymate/internal/core/ports/driving"
	"github.com/studymate-ai/studymate/internal/logger"
)

// Ensure QuizService implements the interface.
var _ driving.QuizService = (*QuizService)(nil)

// conceptsPerChunk caps how many concepts one chunk contributes.
const conceptsPerChunk = 2

// questionTypes is the uniform pool Generate draws from.
var questionTypes = []domain.QuestionType{
	domain.QuestionMultipleChoice,
	domain.QuestionShortAnswer,
	domain.QuestionTrueFalse,
}

// distractorPool supplies wrong options for multiple-choice questions.
var distractorPool = []string{
	"a technique only used during data collection",
	"a metric for measuring hardware performance",
	"an approach that applies only to unstructured text",
	"a process that happens after the material is no longer relevant",
	"a tool for formatting citations",
	"an unrelated administrative procedure",
}

// falsificationPool supplies wrong predicates for false statements.
var falsificationPool = []string{
	"something that has no effect on the outcome",
	"a concept that only applies to hardware design",
	"a process that always produces worse results",
	"an idea that was disproven and is no longer used",
}

// shortAnswerTemplates phrase the open questions.
var shortAnswerTemplates = []string{
	"Explain %s in your own words.",
	"What is %s?",
	"Describe what %s means in this material.",
}

// QuizService generates quiz questions from indexed chunks and grades
// submitted answers. Randomness comes from the injected source so tests
// can seed it.
type QuizService struct {
	store    driven.DocumentStore
	rng      *rand.Rand
	settings domain.Settings
}

// NewQuizService creates a new quiz service. A nil rng is replaced with
// a time-seeded source.
func NewQuizService(store driven.DocumentStore, rng *rand.Rand, settings domain.Settings) *QuizService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &QuizService{store: store, rng: rng, settings: settings}
}

// Generate produces up to count questions spread evenly across the
// given documents. A document without extractable concepts contributes
// nothing; when every document is empty the call fails with
// domain.ErrNoConcepts.
func (s *QuizService) Generate(ctx context.Context, documentIDs []string, count int) ([]domain.QuizQuestion, error) {
	defer logger.Stage("Quiz Generation")()

	if count <= 0 {
		return nil, fmt.Errorf("%w: question count must be positive", domain.ErrInvalidInput)
	}

	docs, err := s.resolveDocuments(ctx, documentIDs)
	if err != nil {
		return nil, err
	}

	perDocument := (count + len(docs) - 1) / len(docs)

	var pool []domain.QuizQuestion
	for _, doc := range docs {
		questions, err := s.generateForDocument(ctx, doc, perDocument)
		if err != nil {
			return nil, err
		}
		if len(questions) == 0 {
			logger.Warn("Document %q yielded no quiz concepts", doc.Name)
		}
		pool = append(pool, questions...)
	}

	if len(pool) == 0 {
		return nil, fmt.Errorf("generate quiz: %w", domain.ErrNoConcepts)
	}

	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > count {
		pool = pool[:count]
	}

	logger.Info("Generated %d quiz question(s) from %d document(s)", len(pool), len(docs))
	return pool, nil
}

// generateForDocument builds up to limit questions from stride-selected
// chunks of one document.
func (s *QuizService) generateForDocument(ctx context.Context, doc domain.Document, limit int) ([]domain.QuizQuestion, error) {
	chunks, err := s.store.GetChunks(ctx, doc.ID)
	if err != nil {
		return nil, fmt.Errorf("get chunks for %s: %w", doc.ID, err)
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	var questions []domain.QuizQuestion
	for _, chunk := range strideSelect(chunks, limit) {
		concepts := analysis.ExtractConcepts(chunk.Content)
		if len(concepts) > conceptsPerChunk {
			concepts = concepts[:conceptsPerChunk]
		}
		for _, concept := range concepts {
			questions = append(questions, s.buildQuestion(doc, chunk, concept))
			if len(questions) == limit {
				return questions, nil
			}
		}
	}
	return questions, nil
}

// strideSelect picks up to limit chunks spread evenly over the list.
func strideSelect(chunks []domain.Chunk, limit int) []domain.Chunk {
	if len(chunks) <= limit {
		return chunks
	}
	stride := len(chunks) / limit
	if stride < 1 {
		stride = 1
	}
	selected := make([]domain.Chunk, 0, limit)
	for i := 0; i < len(chunks) && len(selected) < limit; i += stride {
		selected = append(selected, chunks[i])
	}
	return selected
}

// buildQuestion creates one question of a uniformly random type from a
// concept.
func (s *QuizService) buildQuestion(doc domain.Document, chunk domain.Chunk, concept analysis.Concept) domain.QuizQuestion {
	base := domain.QuizQuestion{
		ID:            uuid.New().String(),
		DocumentID:    doc.ID,
		Difficulty:    difficultyFor(concept.Importance),
		Topic:         concept.Term,
		SourceExcerpt: concept.Statement,
	}

	switch questionTypes[s.rng.Intn(len(questionTypes))] {
	case domain.QuestionMultipleChoice:
		return s.multipleChoice(base, concept)
	case domain.QuestionTrueFalse:
		return s.trueFalse(base, concept)
	default:
		return s.shortAnswer(base, concept)
	}
}

// multipleChoice pairs the real definition with three shuffled
// distractors.
func (s *QuizService) multipleChoice(q domain.QuizQuestion, concept analysis.Concept) domain.QuizQuestion {
	q.Type = domain.QuestionMultipleChoice
	q.Question = fmt.Sprintf("What is %s?", concept.Term)
	q.CorrectAnswer = concept.Definition
	q.Explanation = concept.Statement

	options := []string{concept.Definition}
	for _, i := range s.rng.Perm(len(distractorPool))[:3] {
		options = append(options, distractorPool[i])
	}
	s.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	q.Options = options
	return q
}

// shortAnswer phrases an open question whose expected answer is the
// verbatim definition.
func (s *QuizService) shortAnswer(q domain.QuizQuestion, concept analysis.Concept) domain.QuizQuestion {
	q.Type = domain.QuestionShortAnswer
	q.Question = fmt.Sprintf(shortAnswerTemplates[s.rng.Intn(len(shortAnswerTemplates))], concept.Term)
	q.CorrectAnswer = concept.Definition
	q.Explanation = concept.Statement
	return q
}

// trueFalse presents the statement as-is half the time and with a
// falsified predicate otherwise. The explanation always restates the
// real fact.
func (s *QuizService) trueFalse(q domain.QuizQuestion, concept analysis.Concept) domain.QuizQuestion {
	q.Type = domain.QuestionTrueFalse
	q.Options = []string{"true", "false"}
	q.Explanation = concept.Statement

	if s.rng.Intn(2) == 0 {
		q.Question = fmt.Sprintf("True or false: %s is %s.", concept.Term, concept.Definition)
		q.CorrectAnswer = "true"
	} else {
		falsified := falsificationPool[s.rng.Intn(len(falsificationPool))]
		q.Question = fmt.Sprintf("True or false: %s is %s.", concept.Term, falsified)
		q.CorrectAnswer = "false"
	}
	return q
}

// Evaluate grades a submitted answer. Multiple-choice and true-false
// are exact matches after trimming and case folding; short answers are
// graded by how many expected words the submission contains.
func (s *QuizService) Evaluate(submitted, correct string, questionType domain.QuestionType) domain.EvaluationResult {
	explanation := fmt.Sprintf("The expected answer is: %s", correct)

	if questionType != domain.QuestionShortAnswer {
		if strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct)) {
			return domain.EvaluationResult{
				Correct:     true,
				Score:       1,
				Feedback:    "Correct!",
				Explanation: explanation,
			}
		}
		return domain.EvaluationResult{
			Correct:     false,
			Score:       0,
			Feedback:    "Incorrect.",
			Explanation: explanation,
		}
	}

	similarity := wordOverlap(submitted, correct)
	return domain.EvaluationResult{
		Correct:     similarity >= s.settings.ShortAnswerThreshold,
		Score:       similarity,
		Feedback:    feedbackBand(similarity),
		Explanation: explanation,
	}
}

// wordOverlap is the fraction of expected-answer words the submission
// contains, in [0, 1].
func wordOverlap(submitted, correct string) float64 {
	correctWords := strings.Fields(strings.ToLower(correct))
	if len(correctWords) == 0 {
		return 0
	}
	submittedLower := strings.ToLower(submitted)

	hits := 0
	for _, word := range correctWords {
		if strings.Contains(submittedLower, word) {
			hits++
		}
	}
	similarity := float64(hits) / float64(len(correctWords))
	if similarity > 1 {
		similarity = 1
	}
	return similarity
}

// feedbackBand maps a similarity score to a feedback label.
func feedbackBand(similarity float64) string {
	switch {
	case similarity >= 0.8:
		return "Excellent answer!"
	case similarity >= 0.6:
		return "Good answer, covers the key points."
	case similarity >= 0.4:
		return "Partially correct, review the material."
	default:
		return "Incorrect, revisit this topic."
	}
}

// difficultyFor maps concept importance to a difficulty band.
func difficultyFor(importance float64) domain.Difficulty {
	switch {
	case importance > 0.8:
		return domain.DifficultyHard
	case importance > 0.5:
		return domain.DifficultyMedium
	default:
		return domain.DifficultyEasy
	}
}

// resolveDocuments loads the documents in scope; empty IDs means all.
func (s *QuizService) resolveDocuments(ctx context.Context, documentIDs []string) ([]domain.Document, error) {
	if len(documentIDs) == 0 {
		docs, err := s.store.ListDocuments(ctx)
		if err != nil {
			return nil, fmt.Errorf("list documents: %w", err)
		}
		if len(docs) == 0 {
			return nil, domain.ErrNoDocuments
		}
		return docs, nil
	}

	docs := make([]domain.Document, 0, len(documentIDs))
	for _, id := range documentIDs {
		doc, err := s.store.GetDocument(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get document %s: %w", id, err)
		}
		docs = append(docs, *doc)
	}
	if len(docs) == 0 {
		return nil, domain.ErrNoDocuments
	}
	return docs, nil
}
