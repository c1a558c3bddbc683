package domain

import "time"

// DocumentType tags a document by the kind of study material it is.
// The tag is inferred from content heuristics at ingestion time and
// feeds the retrieval ranking (textbooks score a boost).
type DocumentType string

// Recognised document types.
const (
	// DocTypeTextbook is long-form chaptered material.
	DocTypeTextbook DocumentType = "textbook"

	// DocTypeLectureNotes is slide decks or lecture transcripts.
	DocTypeLectureNotes DocumentType = "lecture_notes"

	// DocTypeAssignment is homework or assignment sheets.
	DocTypeAssignment DocumentType = "assignment"

	// DocTypeResearchPaper is academic papers with an abstract.
	DocTypeResearchPaper DocumentType = "research_paper"

	// DocTypeStudyMaterial is the default when nothing else matches.
	DocTypeStudyMaterial DocumentType = "study_material"
)

// IsValid returns true if the document type is recognised.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocTypeTextbook, DocTypeLectureNotes, DocTypeAssignment,
		DocTypeResearchPaper, DocTypeStudyMaterial:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t DocumentType) String() string {
	return string(t)
}

// Section is a contiguous region of a document under one heading.
type Section struct {
	// Title is the heading text, e.g. "Chapter 3" or "Introduction".
	Title string

	// Content is the section body, heading excluded.
	Content string

	// StartOffset is the byte offset of the section within the document.
	StartOffset int
}

// Document represents an ingested study document.
// Documents are immutable after ingestion.
type Document struct {
	// ID is the unique identifier supplied by the ingestion pipeline.
	ID string

	// Name is the human-readable display name.
	Name string

	// Content is the full extracted plain text.
	Content string

	// Type is the inferred document type.
	Type DocumentType

	// Sections is the ordered list of detected sections.
	// Empty when no headings were found.
	Sections []Section

	// Keywords is the top-N frequency-ranked terms after stop-word
	// filtering, most frequent first.
	Keywords []string

	// CreatedAt is when the document was ingested.
	CreatedAt time.Time
}

// Chunk represents a retrievable unit within a document.
// Chunks are produced once at ingestion and never mutated.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Content is the chunk text.
	Content string

	// Section is the title of the section this chunk was cut from.
	// Empty when the document had no detected sections.
	Section string

	// Position is the ordinal position within the document.
	Position int

	// Keywords is the chunk-local keyword set used for ranking boosts.
	Keywords []string

	// Embedding is the vector representation for similarity search.
	Embedding Embedding
}
