package domain

// ThemeExcerpt is a supporting passage for a theme from one document.
type ThemeExcerpt struct {
	// DocumentID is the source document.
	DocumentID string

	// DocumentName is the source document's display name.
	DocumentName string

	// Text is the excerpt, truncated to a bounded length.
	Text string

	// Section is the excerpt's section title, when known.
	Section string

	// Relevance is the boosted retrieval score of the source chunk.
	Relevance float64
}

// ThemeAnalysis is the per-document analysis line for a theme: the
// sentences in that document's best chunks that mention the concept.
type ThemeAnalysis struct {
	// DocumentID is the analysed document.
	DocumentID string

	// DocumentName is the analysed document's display name.
	DocumentName string

	// Text is the joined concept sentences, at most three.
	Text string
}

// Theme is a concept recurring across at least two distinct documents.
// Themes are built transiently per synthesis call and never persisted.
type Theme struct {
	// Label is the concept the theme is built around.
	Label string

	// DocumentIDs is the set of distinct documents supporting the
	// theme. Always two or more.
	DocumentIDs []string

	// Excerpts holds one supporting excerpt per contributing document.
	Excerpts []ThemeExcerpt

	// Analyses holds one analysis line per contributing document.
	Analyses []ThemeAnalysis
}

// ThemeReport is the structured result of a cross-document synthesis.
type ThemeReport struct {
	// Question is the research question as asked.
	Question string

	// DocumentNames lists the documents that contributed to any theme.
	DocumentNames []string

	// Themes is the discovered themes. Empty when no concept recurred
	// across documents.
	Themes []Theme

	// Narrative is the composed cross-document narrative.
	Narrative string

	// Confidence is in [0, 0.95].
	Confidence float64
}
