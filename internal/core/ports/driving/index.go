package driving

import (
	"context"

	"github.com/studymate-ai/studymate/internal/core/domain"
)

// IndexService ingests documents and exposes the index contents.
type IndexService interface {
	// Ingest chunks, embeds and stores a document supplied by the
	// upstream extraction pipeline. Embedding failures for individual
	// chunks degrade to zero vectors rather than failing the upload.
	Ingest(ctx context.Context, documentID, rawText, displayName string) (*domain.Document, error)

	// Documents lists all indexed documents.
	Documents(ctx context.Context) ([]domain.Document, error)

	// Chunks returns a document's chunks in document order.
	Chunks(ctx context.Context, documentID string) ([]domain.Chunk, error)

	// Remove deletes a document and its chunks from the index.
	Remove(ctx context.Context, documentID string) error
}
