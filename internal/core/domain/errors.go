package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Nothing here is fatal
// to the process: every failure mode degrades to a lower-confidence but
// still-returned result where the contract allows it.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a document with that ID was already ingested.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input, such as an
	// empty question or an empty document set.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoDocuments indicates the index holds no documents for the request.
	ErrNoDocuments = errors.New("no documents indexed")

	// ErrNoConcepts indicates quiz generation found no extractable
	// concepts in any requested document. This is distinct from a
	// single poorly-structured document, which simply contributes
	// zero questions.
	ErrNoConcepts = errors.New("no extractable concepts")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. The deterministic fallback covers transient failures,
	// so this only surfaces from misconfiguration.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrGenerationUnavailable indicates the generation service is not
	// configured. Answers degrade to the extractive path.
	ErrGenerationUnavailable = errors.New("generation service unavailable")
)
