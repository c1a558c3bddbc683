// Package extract converts study-material files into plain text ready
// for chunking. Markdown and HTML syntax is stripped, DOCX archives are
// unpacked, and anything else is treated as plain text.
package extract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var crlf = regexp.MustCompile(`\r\n?`)

// Text converts raw file bytes into plain text based on the file
// extension.
func Text(path string, raw []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return stripMarkdown(string(raw)), nil
	case ".html", ".htm":
		return stripHTML(string(raw)), nil
	case ".docx":
		text, err := docxText(raw)
		if err != nil {
			return "", fmt.Errorf("extract %s: %w", filepath.Base(path), err)
		}
		return text, nil
	default:
		return plainText(string(raw)), nil
	}
}

// Supported reports whether the file extension is one the extractor
// understands as study material.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", ".md", ".markdown", ".html", ".htm", ".docx":
		return true
	}
	return false
}

// plainText normalizes line endings and trims surrounding whitespace.
func plainText(content string) string {
	return strings.TrimSpace(crlf.ReplaceAllString(content, "\n"))
}
