package analysis

import (
	"regexp"
	"strings"

	"github.com/studymate-ai/studymate/internal/core/domain"
)

// headingPattern matches section heading lines: "Chapter N", "Section N",
// numbered sub-sections like "2.1 Gradient Descent", and common
// structural headings. Headings are short lines; long prose lines that
// merely start with one of these words are not headings.
var headingPattern = regexp.MustCompile(
	`(?mi)^[ \t]*(` +
		`chapter[ \t]+\d+[^\n]{0,80}` +
		`|section[ \t]+\d+[^\n]{0,80}` +
		`|\d+(?:\.\d+)+[ \t]+\S[^\n]{0,78}` +
		`|(?:introduction|conclusion|summary|definition|examples?|overview|abstract|references)[^\n]{0,60}` +
		`)[ \t]*$`)

// Sections splits text at detected heading lines. Each section carries
// its heading as the title, the body up to the next heading, and the
// byte offset of the heading within the text. Returns nil when no
// headings are found, in which case callers treat the whole text as one
// unnamed region.
func Sections(text string) []domain.Section {
	matches := headingPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]domain.Section, 0, len(matches))
	for i, m := range matches {
		title := strings.TrimSpace(text[m[0]:m[1]])

		bodyStart := m[1]
		bodyEnd := len(text)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}

		content := strings.TrimSpace(text[bodyStart:bodyEnd])
		sections = append(sections, domain.Section{
			Title:       title,
			Content:     content,
			StartOffset: m[0],
		})
	}
	return sections
}
