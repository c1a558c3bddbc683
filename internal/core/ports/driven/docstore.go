package driven

import (
	"context"

	"github.com/studymate-ai/studymate/internal/core/domain"
)

// DocumentStore persists documents and their chunks. The index is
// append-only at document granularity: a document and its chunks are
// written once at ingestion and never mutated.
//
// The in-memory backend is the default; the SQLite backend can be
// substituted without touching retrieval logic.
type DocumentStore interface {
	// SaveDocument stores a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// SaveChunks stores the chunks for a document in document order.
	SaveChunks(ctx context.Context, chunks []domain.Chunk) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// GetChunks retrieves all chunks for a document in document order.
	GetChunks(ctx context.Context, documentID string) ([]domain.Chunk, error)

	// ListDocuments returns all indexed documents.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// DeleteDocument removes a document and its chunks.
	DeleteDocument(ctx context.Context, id string) error
}
