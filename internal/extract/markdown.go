package extract

import (
	"regexp"
	"strings"
)

var (
	mdCodeBlock    = regexp.MustCompile("(?s)```[^`]*```")
	mdInlineCode   = regexp.MustCompile("`[^`]+`")
	mdImage        = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	mdLink         = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	mdHeading      = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	mdBlockquote   = regexp.MustCompile(`(?m)^>\s*`)
	mdRule         = regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`)
	mdNewlines     = regexp.MustCompile(`\n{3,}`)
	mdBoldItalic   = strings.NewReplacer("**", "", "__", "", "*", "")
	mdUnderscoreRe = regexp.MustCompile(`\b_([^_]+)_\b`)
)

// stripMarkdown reduces markdown to plain text. Heading text and list
// items survive so section detection and concept extraction still see
// them.
func stripMarkdown(content string) string {
	content = crlf.ReplaceAllString(content, "\n")
	content = mdCodeBlock.ReplaceAllString(content, "")
	content = mdInlineCode.ReplaceAllString(content, "")
	content = mdImage.ReplaceAllString(content, "")
	content = mdLink.ReplaceAllString(content, "$1")
	content = mdHeading.ReplaceAllString(content, "")
	content = mdBlockquote.ReplaceAllString(content, "")
	content = mdRule.ReplaceAllString(content, "")
	content = mdUnderscoreRe.ReplaceAllString(content, "$1")
	content = mdBoldItalic.Replace(content)
	content = mdNewlines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
