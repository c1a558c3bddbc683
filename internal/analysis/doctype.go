package analysis

import (
	"strings"

	"github.com/studymate-ai/studymate/internal/core/domain"
)

// DetectType infers a document type from content keywords. The checks
// run in priority order and the first hit wins; anything unrecognised
// is generic study material.
func DetectType(text string) domain.DocumentType {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "chapter") && strings.Contains(lower, "introduction"):
		return domain.DocTypeTextbook
	case strings.Contains(lower, "lecture") || strings.Contains(lower, "slides"):
		return domain.DocTypeLectureNotes
	case strings.Contains(lower, "assignment") || strings.Contains(lower, "homework"):
		return domain.DocTypeAssignment
	case strings.Contains(lower, "research") || strings.Contains(lower, "abstract"):
		return domain.DocTypeResearchPaper
	default:
		return domain.DocTypeStudyMaterial
	}
}
