package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// ErrNotDocx marks content that is not a readable DOCX archive.
var ErrNotDocx = errors.New("not a docx file")

// wordDocument maps the paragraph/run/text nesting of
// word/document.xml.
type wordDocument struct {
	Body struct {
		Paragraphs []struct {
			Runs []struct {
				Text []struct {
					Content string `xml:",chardata"`
				} `xml:"t"`
			} `xml:"r"`
		} `xml:"p"`
	} `xml:"body"`
}

// docxText unzips a DOCX archive and concatenates the paragraph text of
// word/document.xml, one paragraph per line.
func docxText(raw []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", ErrNotDocx
	}

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", ErrNotDocx
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", ErrNotDocx
		}

		var doc wordDocument
		if err := xml.Unmarshal(content, &doc); err != nil {
			return "", ErrNotDocx
		}

		var b strings.Builder
		for i, para := range doc.Body.Paragraphs {
			if i > 0 {
				b.WriteString("\n")
			}
			for _, run := range para.Runs {
				for _, text := range run.Text {
					b.WriteString(text.Content)
				}
			}
		}
		return strings.TrimSpace(b.String()), nil
	}
	return "", ErrNotDocx
}
