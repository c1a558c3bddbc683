package domain

import "fmt"

// Settings holds the tunable parameters of the engine. The defaults are
// empirically chosen; every multiplier and threshold can be overridden
// through the config store rather than being hard-coded in the services.
type Settings struct {
	// ChunkSize is the target chunk window size in words.
	ChunkSize int

	// ChunkOverlap is the number of words shared between consecutive
	// windows of the same section.
	ChunkOverlap int

	// MaxKeywords is how many frequency-ranked keywords are kept per
	// document.
	MaxKeywords int

	// TopK is the maximum number of retrieval results per query.
	TopK int

	// ThemeTopK is the retrieval depth used for cross-document
	// synthesis, wider than single-document mode.
	ThemeTopK int

	// ScoreThreshold drops retrieval results at or below this boosted
	// score.
	ScoreThreshold float64

	// TextbookBoost multiplies similarity for textbook documents.
	TextbookBoost float64

	// KeywordBoost is the per-shared-keyword multiplier increment:
	// score × (1 + KeywordBoost × overlap).
	KeywordBoost float64

	// ConfidenceScale scales the mean boosted score into an answer
	// confidence, capped at 1.
	ConfidenceScale float64

	// ConceptOverlap is the word-overlap threshold used by theme
	// synthesis: the fraction of a multi-word concept's words a chunk
	// must contain to support the concept without a literal match, and
	// the Jaccard threshold for merging near-duplicate theme labels.
	ConceptOverlap float64

	// ShortAnswerThreshold is the word-overlap similarity at which a
	// short answer counts as correct.
	ShortAnswerThreshold float64
}

// DefaultSettings returns the engine defaults.
func DefaultSettings() Settings {
	return Settings{
		ChunkSize:            200,
		ChunkOverlap:         40,
		MaxKeywords:          15,
		TopK:                 8,
		ThemeTopK:            20,
		ScoreThreshold:       0.25,
		TextbookBoost:        1.2,
		KeywordBoost:         0.1,
		ConfidenceScale:      1.2,
		ConceptOverlap:       0.7,
		ShortAnswerThreshold: 0.6,
	}
}

// Validate checks the settings for values the engine cannot work with.
func (s Settings) Validate() error {
	if s.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive", ErrInvalidInput)
	}
	if s.ChunkOverlap < 0 || s.ChunkOverlap >= s.ChunkSize {
		return fmt.Errorf("%w: chunk overlap must be in [0, chunk size)", ErrInvalidInput)
	}
	if s.TopK <= 0 || s.ThemeTopK <= 0 {
		return fmt.Errorf("%w: topK values must be positive", ErrInvalidInput)
	}
	if s.TextbookBoost < 1 {
		return fmt.Errorf("%w: textbook boost must be at least 1", ErrInvalidInput)
	}
	if s.ShortAnswerThreshold <= 0 || s.ShortAnswerThreshold > 1 {
		return fmt.Errorf("%w: short-answer threshold must be in (0, 1]", ErrInvalidInput)
	}
	if s.ConceptOverlap < 0 || s.ConceptOverlap > 1 {
		return fmt.Errorf("%w: concept overlap must be in [0, 1]", ErrInvalidInput)
	}
	return nil
}
