package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/studymate-ai/studymate/internal/analysis"
	"github.com/studymate-ai/studymate/internal/core/domain"
	"github.com/studymate-ai/studymate/internal/core/ports/driven"
	"github.com/studymate-ai/studymate/internal/core/ports/driving"
	"github.com/studymate-ai/studymate/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

// keywordFallbackLimit caps the plain keyword-occurrence fallback.
const keywordFallbackLimit = 5

// RetrievalService ranks chunks across documents for a question using
// cosine similarity plus heuristic boosts.
type RetrievalService struct {
	store    driven.DocumentStore
	embedder driven.EmbeddingService
	settings domain.Settings
}

// NewRetrievalService creates a new retrieval service.
func NewRetrievalService(
	store driven.DocumentStore,
	embedder driven.EmbeddingService,
	settings domain.Settings,
) *RetrievalService {
	return &RetrievalService{
		store:    store,
		embedder: embedder,
		settings: settings,
	}
}

// Query embeds the question and ranks every chunk of the requested
// documents. Scores are cosine similarity multiplied by the
// document-type boost and the keyword-overlap boost; results at or
// below the score threshold are dropped. When nothing survives, a
// plain keyword-occurrence search runs before concluding there is no
// relevant content.
func (s *RetrievalService) Query(ctx context.Context, question string, documentIDs []string, topK int) ([]domain.RetrievalResult, error) {
	defer logger.Stage("Retrieval")()

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is empty", domain.ErrInvalidInput)
	}
	if topK <= 0 {
		topK = s.settings.TopK
	}

	docs, err := s.resolveDocuments(ctx, documentIDs)
	if err != nil {
		return nil, err
	}
	logger.Debug("Query %q over %d documents, topK=%d", question, len(docs), topK)

	qEmb, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}
	logger.Debug("Question embedding provenance: %s", qEmb.Provenance)

	questionKeywords := analysis.Keywords(question, s.settings.MaxKeywords)

	var ranked []domain.RetrievalResult
	for i := range docs {
		doc := &docs[i]
		chunks, err := s.store.GetChunks(ctx, doc.ID)
		if err != nil {
			return nil, fmt.Errorf("get chunks for %s: %w", doc.ID, err)
		}
		for j := range chunks {
			score := domain.Cosine(qEmb.Vector, chunks[j].Embedding.Vector)
			if doc.Type == domain.DocTypeTextbook {
				score *= s.settings.TextbookBoost
			}
			overlap := analysis.KeywordOverlap(questionKeywords, chunks[j].Keywords)
			score *= 1 + s.settings.KeywordBoost*float64(overlap)

			ranked = append(ranked, domain.RetrievalResult{
				Chunk:        chunks[j],
				DocumentID:   doc.ID,
				DocumentName: doc.Name,
				DocumentType: doc.Type,
				Section:      chunks[j].Section,
				Score:        score,
			})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	var results []domain.RetrievalResult
	for _, r := range ranked {
		if r.Score <= s.settings.ScoreThreshold {
			break
		}
		results = append(results, r)
		if len(results) == topK {
			break
		}
	}

	if len(results) == 0 {
		logger.Info("No results above threshold %.2f, falling back to keyword search",
			s.settings.ScoreThreshold)
		return s.keywordSearch(question, ranked), nil
	}

	logger.Info("Retrieved %d results, best score %.3f", len(results), results[0].Score)
	return results, nil
}

// keywordSearch ranks chunks by literal query-word occurrence,
// normalised by query length. Used only when similarity search finds
// nothing above the threshold.
func (s *RetrievalService) keywordSearch(question string, all []domain.RetrievalResult) []domain.RetrievalResult {
	words := analysis.Tokens(question)
	if len(words) == 0 {
		return nil
	}

	var matched []domain.RetrievalResult
	for _, r := range all {
		content := strings.ToLower(r.Chunk.Content)
		hits := 0
		for _, w := range words {
			if strings.Contains(content, w) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		r.Score = float64(hits) / float64(len(words))
		matched = append(matched, r)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Score > matched[j].Score
	})
	if len(matched) > keywordFallbackLimit {
		matched = matched[:keywordFallbackLimit]
	}
	logger.Debug("Keyword fallback produced %d results", len(matched))
	return matched
}

// resolveDocuments loads the requested documents, or every indexed
// document when the ID list is empty. Unknown IDs are skipped with a
// warning; an empty resolution is an error.
func (s *RetrievalService) resolveDocuments(ctx context.Context, documentIDs []string) ([]domain.Document, error) {
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

	var docs []domain.Document
	for _, id := range documentIDs {
		doc, err := s.store.GetDocument(ctx, id)
		if err != nil {
			logger.Warn("Skipping unknown document %s: %v", id, err)
			continue
		}
		docs = append(docs, *doc)
	}
	if len(docs) == 0 {
		return nil, domain.ErrNoDocuments
	}
	return docs, nil
}
