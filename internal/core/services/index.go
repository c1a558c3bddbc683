package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/studymate-ai/studymate/internal/analysis"
	"github.com/studymate-ai/studymate/internal/chunker"
	"github.com/studymate-ai/studymate/internal/core/domain"
	"github.com/studymate-ai/studymate/internal/core/ports/driven"
	"github.com/studymate-ai/studymate/internal/core/ports/driving"
	"github.com/studymate-ai/studymate/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// IndexService owns document ingestion: type detection, section and
// keyword extraction, chunking, embedding, and storage.
type IndexService struct {
	store    driven.DocumentStore
	embedder driven.EmbeddingService
	chunker  *chunker.Chunker
	settings domain.Settings
}

// NewIndexService creates a new index service.
func NewIndexService(
	store driven.DocumentStore,
	embedder driven.EmbeddingService,
	settings domain.Settings,
) *IndexService {
	return &IndexService{
		store:    store,
		embedder: embedder,
		chunker: chunker.New(
			chunker.WithChunkSize(settings.ChunkSize),
			chunker.WithOverlap(settings.ChunkOverlap),
		),
		settings: settings,
	}
}

// Ingest processes one document: chunk, embed, store. Within a
// document the steps are strictly sequential; different documents may
// ingest concurrently.
//
// An embedding failure for an individual chunk substitutes a zero
// vector for that chunk rather than failing ingestion. The chunk
// becomes effectively unretrievable but the upload still succeeds.
func (s *IndexService) Ingest(ctx context.Context, documentID, rawText, displayName string) (*domain.Document, error) {
	defer logger.Stage("Ingestion")()

	if strings.TrimSpace(documentID) == "" {
		return nil, fmt.Errorf("%w: document ID is empty", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(rawText) == "" {
		return nil, fmt.Errorf("%w: document text is empty", domain.ErrInvalidInput)
	}
	if displayName == "" {
		displayName = documentID
	}

	doc := &domain.Document{
		ID:        documentID,
		Name:      displayName,
		Content:   rawText,
		Type:      analysis.DetectType(rawText),
		Sections:  analysis.Sections(rawText),
		Keywords:  analysis.Keywords(rawText, s.settings.MaxKeywords),
		CreatedAt: time.Now(),
	}
	logger.Debug("Document %s: type=%s, sections=%d, keywords=%d",
		doc.ID, doc.Type, len(doc.Sections), len(doc.Keywords))

	chunks := s.chunker.Process(doc)
	logger.Debug("Document %s: %d chunks", doc.ID, len(chunks))

	for i := range chunks {
		emb, err := s.embedder.Embed(ctx, chunks[i].Content)
		if err != nil {
			logger.Warn("Embedding chunk %d of %s failed, storing zero vector: %v",
				chunks[i].Position, doc.ID, err)
			emb = domain.ZeroEmbedding()
		}
		chunks[i].Embedding = emb
	}

	if err := s.store.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	if err := s.store.SaveChunks(ctx, chunks); err != nil {
		return nil, fmt.Errorf("save chunks: %w", err)
	}

	logger.Info("Ingested %s (%s): %d chunks", doc.Name, doc.Type, len(chunks))
	return doc, nil
}

// Documents lists all indexed documents.
func (s *IndexService) Documents(ctx context.Context) ([]domain.Document, error) {
	docs, err := s.store.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Chunks returns a document's chunks in document order.
func (s *IndexService) Chunks(ctx context.Context, documentID string) ([]domain.Chunk, error) {
	chunks, err := s.store.GetChunks(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("get chunks: %w", err)
	}
	return chunks, nil
}

// Remove deletes a document and its chunks from the index.
func (s *IndexService) Remove(ctx context.Context, documentID string) error {
	if err := s.store.DeleteDocument(ctx, documentID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
