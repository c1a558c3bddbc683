package domain

// RetrievalResult is a transient ranked hit produced by the retrieval
// engine. The score is cosine similarity after heuristic boosts, so it
// is not guaranteed to stay within [0, 1].
type RetrievalResult struct {
	// Chunk is the matched chunk.
	Chunk Chunk

	// DocumentID is the owning document.
	DocumentID string

	// DocumentName is the owning document's display name.
	DocumentName string

	// DocumentType is the owning document's inferred type.
	DocumentType DocumentType

	// Section is the chunk's section title, when known.
	Section string

	// Score is the boosted relevance score.
	Score float64
}

// SourceRef attributes part of an answer to a chunk of a document.
type SourceRef struct {
	// DocumentID is the cited document.
	DocumentID string

	// DocumentName is the cited document's display name.
	DocumentName string

	// Section is the cited section title, when known.
	Section string

	// Excerpt is a short snippet of the supporting chunk.
	Excerpt string

	// Score is the boosted relevance score of the supporting chunk.
	Score float64
}

// AnswerMode records how an answer's text was composed.
type AnswerMode string

// Answer composition modes.
const (
	// AnswerGenerated means the text came from the generation service.
	AnswerGenerated AnswerMode = "generated"

	// AnswerExtractive means the text was assembled from sentences
	// lifted verbatim out of the retrieved chunks.
	AnswerExtractive AnswerMode = "extractive"

	// AnswerRefusal means no supporting chunks were available and the
	// engine declined to answer.
	AnswerRefusal AnswerMode = "refusal"
)

// Answer is the response to a single question.
type Answer struct {
	// Question is the question as asked.
	Question string

	// Text is the answer body.
	Text string

	// Intent is the classified question intent.
	Intent Intent

	// Sources lists the chunks the answer is grounded on.
	Sources []SourceRef

	// Confidence is in [0, 1]; 0 means no supporting content was found.
	Confidence float64

	// Mode records whether the text was generated, extracted, or refused.
	Mode AnswerMode
}
