// Package services implements the core engine behind the driving
// ports: document ingestion, ranked retrieval, answer synthesis,
// cross-document theme synthesis, and quiz generation and grading.
//
// Services are explicitly constructed and receive their collaborators
// through constructors rather than ambient globals, so two engines with
// independent indexes can coexist in one process.
//
// # Import Rules
//
//   - Can Import: domain, ports, analysis, chunker, logger
//   - Cannot Import: Any adapter package
package services
