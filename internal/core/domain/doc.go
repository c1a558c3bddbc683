// Package domain defines the core business entities for StudyMate.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: an ingested study document with sections and keywords
//   - Chunk: a section-aware retrieval unit within a document
//   - Embedding: a fixed-length vector with its provenance
//   - Theme: a concept recurring across two or more documents
//   - QuizQuestion: a generated assessment item
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
