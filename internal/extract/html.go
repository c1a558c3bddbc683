package extract

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlScript     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	htmlStyle      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	htmlHead       = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	htmlComment    = regexp.MustCompile(`(?s)<!--.*?-->`)
	htmlBlockOpen  = regexp.MustCompile(`(?i)<(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)[^>]*>`)
	htmlBlockClose = regexp.MustCompile(`(?i)</(p|div|br|hr|h[1-6]|li|tr|blockquote|pre|table|section|article)>`)
	htmlBreak      = regexp.MustCompile(`(?i)<(br|hr)\s*/?>`)
	htmlTag        = regexp.MustCompile(`<[^>]+>`)
	htmlSpaces     = regexp.MustCompile(`[ \t]+`)
	htmlNewlines   = regexp.MustCompile(`\n{3,}`)
)

// stripHTML removes markup and returns readable text, one trimmed line
// per block element.
func stripHTML(content string) string {
	content = htmlScript.ReplaceAllString(content, "")
	content = htmlStyle.ReplaceAllString(content, "")
	content = htmlHead.ReplaceAllString(content, "")
	content = htmlComment.ReplaceAllString(content, "")
	content = htmlBlockOpen.ReplaceAllString(content, "\n")
	content = htmlBlockClose.ReplaceAllString(content, "\n")
	content = htmlBreak.ReplaceAllString(content, "\n")
	content = htmlTag.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	content = htmlSpaces.ReplaceAllString(content, " ")
	content = htmlNewlines.ReplaceAllString(content, "\n\n")

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
