package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/studymate-ai/studymate/internal/analysis"
	"github.com/studymate-ai/studymate/internal/core/domain"
	"github.com/studymate-ai/studymate/internal/core/ports/driven"
	"github.com/studymate-ai/studymate/internal/core/ports/driving"
	"github.com/studymate-ai/studymate/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// sourceExcerptLength bounds the excerpt attached to each source.
const sourceExcerptLength = 200

// defaultInstructions are the per-intent instruction blocks used when
// no prompt store is configured.
var defaultInstructions = map[domain.Intent]string{
	domain.IntentDefinition:  "Based on the study materials below, give a precise definition in answer to the question. Quote the defining sentence where possible and do not add facts that are not in the materials.",
	domain.IntentExplanation: "Based on the study materials below, explain the answer step by step in plain language. Stay strictly within what the materials state.",
	domain.IntentSummary:     "Summarise the study materials below as they relate to the question. Keep it to a few sentences and cover only what the materials say.",
	domain.IntentComparison:  "Using only the study materials below, compare the items the question asks about. State similarities first, then differences.",
	domain.IntentExample:     "Using only the study materials below, answer with concrete examples. If the materials give named examples, use those.",
	domain.IntentGeneral:     "Answer the question using only the study materials below. If the materials do not contain the answer, say so.",
}

// promptNames maps intents to prompt store template names.
var promptNames = map[domain.Intent]string{
	domain.IntentDefinition:  driven.PromptDefinition,
	domain.IntentExplanation: driven.PromptExplanation,
	domain.IntentSummary:     driven.PromptSummary,
	domain.IntentComparison:  driven.PromptComparison,
	domain.IntentExample:     driven.PromptExample,
	domain.IntentGeneral:     driven.PromptGeneral,
}

// AnswerService builds answers from ranked chunks, delegating text
// composition to the generation service and falling back to extractive
// templates when it is unavailable.
type AnswerService struct {
	store     driven.DocumentStore
	retrieval driving.RetrievalService
	generator driven.GenerationService
	prompts   driven.PromptStore
	themes    *ThemeService
	settings  domain.Settings
}

// NewAnswerService creates a new answer service. The generator and
// prompts parameters are optional (can be nil).
func NewAnswerService(
	store driven.DocumentStore,
	retrieval driving.RetrievalService,
	generator driven.GenerationService,
	themes *ThemeService,
	settings domain.Settings,
) *AnswerService {
	return &AnswerService{
		store:     store,
		retrieval: retrieval,
		generator: generator,
		themes:    themes,
		settings:  settings,
	}
}

// SetPromptStore sets the prompt store for customisable instruction
// templates. If not set, embedded defaults are used.
func (s *AnswerService) SetPromptStore(store driven.PromptStore) {
	s.prompts = store
}

// Ask answers a question strictly from indexed content.
func (s *AnswerService) Ask(ctx context.Context, question string, documentIDs []string) (*domain.Answer, error) {
	defer logger.Stage("Answer Synthesis")()

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is empty", domain.ErrInvalidInput)
	}

	intent := analysis.ClassifyIntent(question)
	logger.Debug("Question intent: %s", intent)

	inScope, err := s.scopeSize(ctx, documentIDs)
	if err != nil {
		return nil, err
	}

	// Research phrasing over multiple documents routes to theme synthesis.
	if inScope >= 2 && s.themes != nil && IsResearchQuestion(question) {
		logger.Info("Research phrasing detected, running cross-document synthesis")
		report, err := s.themes.Synthesize(ctx, question, documentIDs)
		if err != nil {
			return nil, err
		}
		return themeAnswer(question, intent, report), nil
	}

	results, err := s.retrieval.Query(ctx, question, documentIDs, s.settings.TopK)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return s.refusal(ctx, question, intent)
	}

	text, mode := s.compose(ctx, question, intent, results)

	return &domain.Answer{
		Question:   question,
		Text:       text,
		Intent:     intent,
		Sources:    sources(results),
		Confidence: s.confidence(results),
		Mode:       mode,
	}, nil
}

// Synthesize runs cross-document theme synthesis directly.
func (s *AnswerService) Synthesize(ctx context.Context, question string, documentIDs []string) (*domain.ThemeReport, error) {
	if s.themes == nil {
		return nil, fmt.Errorf("%w: theme synthesis not configured", domain.ErrInvalidInput)
	}
	return s.themes.Synthesize(ctx, question, documentIDs)
}

// compose produces the answer text, preferring the generation service
// and degrading to the extractive template path on any failure.
func (s *AnswerService) compose(ctx context.Context, question string, intent domain.Intent, results []domain.RetrievalResult) (string, domain.AnswerMode) {
	prompt := s.buildPrompt(question, intent, results)

	if s.generator != nil {
		text, err := s.generator.Generate(ctx, prompt, driven.GenerateOptions{})
		if err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text), domain.AnswerGenerated
		}
		if err != nil {
			logger.Warn("Generation failed, using extractive fallback: %v", err)
		}
	} else {
		logger.Debug("No generation service configured, using extractive fallback")
	}

	return s.extract(intent, results), domain.AnswerExtractive
}

// buildPrompt assembles the instruction block for the intent and the
// ranked chunk context, each chunk labelled with its document and
// boosted score.
func (s *AnswerService) buildPrompt(question string, intent domain.Intent, results []domain.RetrievalResult) string {
	instruction := defaultInstructions[intent]
	if s.prompts != nil {
		if loaded, err := s.prompts.Load(promptNames[intent]); err == nil && loaded != "" {
			instruction = loaded
		}
	}

	var b strings.Builder
	b.WriteString(instruction)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\n\nStudy materials:\n")
	for i, r := range results {
		fmt.Fprintf(&b, "\n[Source %d | document %s | score %.2f]\n%s\n",
			i+1, r.DocumentID, r.Score, r.Chunk.Content)
	}
	return b.String()
}

// extract assembles an answer from sentences lifted out of the
// retrieved chunks. The attribution phrase marks the answer as grounded
// extraction rather than generative paraphrase.
func (s *AnswerService) extract(intent domain.Intent, results []domain.RetrievalResult) string {
	var contexts []string
	for _, r := range results {
		contexts = append(contexts, r.Chunk.Content)
	}
	sentences := analysis.Sentences(strings.Join(contexts, "\n\n"))
	topChunk := analysis.Sentences(results[0].Chunk.Content)

	var body string
	switch intent {
	case domain.IntentSummary:
		body = strings.Join(firstN(sentences, 3), " ")

	case domain.IntentDefinition, domain.IntentExplanation:
		core := firstContaining(sentences, " is ", " are ")
		example := firstContaining(sentences, "example", "such as")
		switch {
		case core != "" && example != "":
			body = core + " " + example
		case core != "":
			body = core
		default:
			body = strings.Join(firstN(topChunk, 2), " ")
		}

	case domain.IntentComparison:
		var contrasts []string
		for _, sentence := range sentences {
			lower := strings.ToLower(sentence)
			if strings.Contains(lower, "while") || strings.Contains(lower, "whereas") ||
				strings.Contains(lower, "unlike") || strings.Contains(lower, "different") {
				contrasts = append(contrasts, sentence)
			}
			if len(contrasts) == 3 {
				break
			}
		}
		if len(contrasts) > 0 {
			body = strings.Join(contrasts, " ")
		} else {
			body = strings.Join(firstN(topChunk, 2), " ")
		}

	default:
		body = strings.Join(firstN(topChunk, 2), " ")
	}

	return "From your study materials: " + body
}

// refusal is returned when no supporting chunks exist. The engine never
// fabricates an answer without supporting content.
func (s *AnswerService) refusal(ctx context.Context, question string, intent domain.Intent) (*domain.Answer, error) {
	docs, err := s.store.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return &domain.Answer{
		Question: question,
		Text: fmt.Sprintf(
			"I couldn't find content relevant to that question in your %d indexed document(s). Try rephrasing, or upload material that covers the topic.",
			len(docs)),
		Intent:     intent,
		Confidence: 0,
		Mode:       domain.AnswerRefusal,
	}, nil
}

// confidence scales the mean boosted score of the chunks used into
// [0, 1].
func (s *AnswerService) confidence(results []domain.RetrievalResult) float64 {
	if len(results) == 0 {
		return 0
	}
	var sum float64
	for _, r := range results {
		sum += r.Score
	}
	conf := s.settings.ConfidenceScale * sum / float64(len(results))
	if conf > 1 {
		conf = 1
	}
	return conf
}

// scopeSize counts the documents in scope for the question.
func (s *AnswerService) scopeSize(ctx context.Context, documentIDs []string) (int, error) {
	if len(documentIDs) > 0 {
		return len(documentIDs), nil
	}
	docs, err := s.store.ListDocuments(ctx)
	if err != nil {
		return 0, fmt.Errorf("list documents: %w", err)
	}
	return len(docs), nil
}

// themeAnswer converts a theme report into the common answer shape.
func themeAnswer(question string, intent domain.Intent, report *domain.ThemeReport) *domain.Answer {
	answer := &domain.Answer{
		Question:   question,
		Text:       report.Narrative,
		Intent:     intent,
		Confidence: report.Confidence,
		Mode:       domain.AnswerExtractive,
	}
	for _, theme := range report.Themes {
		for _, ex := range theme.Excerpts {
			answer.Sources = append(answer.Sources, domain.SourceRef{
				DocumentID:   ex.DocumentID,
				DocumentName: ex.DocumentName,
				Section:      ex.Section,
				Excerpt:      ex.Text,
				Score:        ex.Relevance,
			})
		}
	}
	return answer
}

// sources converts retrieval results into answer attributions.
func sources(results []domain.RetrievalResult) []domain.SourceRef {
	refs := make([]domain.SourceRef, 0, len(results))
	for _, r := range results {
		refs = append(refs, domain.SourceRef{
			DocumentID:   r.DocumentID,
			DocumentName: r.DocumentName,
			Section:      r.Section,
			Excerpt:      truncate(r.Chunk.Content, sourceExcerptLength),
			Score:        r.Score,
		})
	}
	return refs
}

// firstN returns up to n leading elements.
func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// firstContaining returns the first sentence containing any of the
// needles, case-insensitively.
func firstContaining(sentences []string, needles ...string) string {
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		for _, needle := range needles {
			if strings.Contains(lower, needle) {
				return sentence
			}
		}
	}
	return ""
}

// truncate bounds text to max bytes on a rune boundary, appending an
// ellipsis when cut.
func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
