// Package sqlite provides a SQLite-backed implementation of the
// document store, for installations that want the index to survive
// process restarts. It is interchangeable with the in-memory backend;
// retrieval logic never sees the difference.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/studymate-ai/studymate/internal/core/domain"
	"github.com/studymate-ai/studymate/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// schema creates the document and chunk tables. Embeddings are stored
// as little-endian float32 blobs next to their chunks.
const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	content    TEXT NOT NULL,
	type       TEXT NOT NULL,
	sections   TEXT NOT NULL,
	keywords   TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS chunks (
	id          TEXT PRIMARY KEY,
	document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	content     TEXT NOT NULL,
	section     TEXT NOT NULL,
	keywords    TEXT NOT NULL,
	embedding   BLOB NOT NULL,
	provenance  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_chunks_document
	ON chunks(document_id, position);
`

// DocumentStore is a SQLite-backed implementation of driven.DocumentStore.
type DocumentStore struct {
	db   *sql.DB
	path string
}

// NewDocumentStore opens (or creates) the store at the given data
// directory. If dataDir is empty, defaults to ~/.studymate/data.
func NewDocumentStore(dataDir string) (*DocumentStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".studymate", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "index.db")

	// WAL keeps concurrent ingest and query readable. Pragmas go in the
	// DSN so every pooled connection gets them.
	db, err := sql.Open("sqlite",
		dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DocumentStore{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *DocumentStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *DocumentStore) Path() string {
	return s.path
}

// SaveDocument stores a document.
func (s *DocumentStore) SaveDocument(ctx context.Context, doc *domain.Document) error {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM documents WHERE id = ?`, doc.ID).Scan(&exists)
	if err == nil {
		return domain.ErrAlreadyExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("check document: %w", err)
	}

	sections, err := json.Marshal(doc.Sections)
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}
	keywords, err := json.Marshal(doc.Keywords)
	if err != nil {
		return fmt.Errorf("marshal keywords: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (id, name, content, type, sections, keywords, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.Name, doc.Content, string(doc.Type), string(sections), string(keywords), doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// SaveChunks stores the chunks for a document in document order.
func (s *DocumentStore) SaveChunks(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, document_id, position, content, section, keywords, embedding, provenance)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range chunks {
		c := &chunks[i]
		keywords, err := json.Marshal(c.Keywords)
		if err != nil {
			return fmt.Errorf("marshal keywords: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, c.ID, c.DocumentID, c.Position, c.Content,
			c.Section, string(keywords), encodeVector(c.Embedding.Vector), string(c.Embedding.Provenance)); err != nil {
			return fmt.Errorf("insert chunk %d: %w", c.Position, err)
		}
	}

	return tx.Commit()
}

// GetDocument retrieves a document by ID.
func (s *DocumentStore) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, content, type, sections, keywords, created_at
		FROM documents WHERE id = ?`, id)

	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// GetChunks retrieves all chunks for a document in document order.
func (s *DocumentStore) GetChunks(ctx context.Context, documentID string) ([]domain.Chunk, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document_id, position, content, section, keywords, embedding, provenance
		FROM chunks WHERE document_id = ? ORDER BY position`, documentID)
	if err != nil {
		return nil, fmt.Errorf("query chunks: %w", err)
	}
	defer rows.Close()

	var chunks []domain.Chunk
	for rows.Next() {
		var c domain.Chunk
		var keywords string
		var embedding []byte
		var provenance string
		if err := rows.Scan(&c.ID, &c.DocumentID, &c.Position, &c.Content,
			&c.Section, &keywords, &embedding, &provenance); err != nil {
			return nil, fmt.Errorf("scan chunk: %w", err)
		}
		if err := json.Unmarshal([]byte(keywords), &c.Keywords); err != nil {
			return nil, fmt.Errorf("unmarshal keywords: %w", err)
		}
		c.Embedding = domain.Embedding{
			Vector:     decodeVector(embedding),
			Provenance: domain.Provenance(provenance),
		}
		chunks = append(chunks, c)
	}
	return chunks, rows.Err()
}

// ListDocuments returns all indexed documents ordered by ingestion time.
func (s *DocumentStore) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, content, type, sections, keywords, created_at
		FROM documents ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

// DeleteDocument removes a document and its chunks.
func (s *DocumentStore) DeleteDocument(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// scanner abstracts sql.Row and sql.Rows for scanDocument.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*domain.Document, error) {
	var doc domain.Document
	var docType, sections, keywords string
	var createdAt time.Time
	if err := row.Scan(&doc.ID, &doc.Name, &doc.Content, &docType,
		&sections, &keywords, &createdAt); err != nil {
		return nil, err
	}
	doc.Type = domain.DocumentType(docType)
	doc.CreatedAt = createdAt
	if err := json.Unmarshal([]byte(sections), &doc.Sections); err != nil {
		return nil, fmt.Errorf("unmarshal sections: %w", err)
	}
	if err := json.Unmarshal([]byte(keywords), &doc.Keywords); err != nil {
		return nil, fmt.Errorf("unmarshal keywords: %w", err)
	}
	return &doc, nil
}

// encodeVector packs a float32 vector as little-endian bytes.
func encodeVector(vec []float32) []byte {
	buf := make([]byte, len(vec)*4)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// decodeVector unpacks a little-endian byte blob into a float32 vector.
func decodeVector(buf []byte) []float32 {
	vec := make([]float32, len(buf)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return vec
}
