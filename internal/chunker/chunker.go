// Package chunker provides a section-aware overlapping word-window
// chunking processor.
package chunker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/studymate-ai/studymate/internal/analysis"
	"github.com/studymate-ai/studymate/internal/core/domain"
)

// DefaultChunkSize is the default window size in words.
const DefaultChunkSize = 200

// DefaultOverlap is the default number of words shared between
// consecutive windows.
const DefaultOverlap = 40

// localKeywordLimit is how many keywords are attached to each chunk for
// ranking boosts.
const localKeywordLimit = 5

// Chunker splits document text into overlapping, section-aware passages.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the window size in words.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between windows in words.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Overlap must leave the window moving forward
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}

	return c
}

// Process splits a document into chunks. Sections are windowed
// independently so a chunk never straddles a heading, and every chunk
// carries its section title for later citation. Documents without
// detected sections are windowed as a single unnamed region.
func (c *Chunker) Process(doc *domain.Document) []domain.Chunk {
	type region struct {
		title string
		text  string
	}

	var regions []region
	if len(doc.Sections) == 0 {
		regions = []region{{text: doc.Content}}
	} else {
		for _, s := range doc.Sections {
			regions = append(regions, region{title: s.Title, text: s.Content})
		}
	}

	var chunks []domain.Chunk
	position := 0
	for _, r := range regions {
		for _, window := range c.windows(r.text) {
			chunks = append(chunks, domain.Chunk{
				ID:         uuid.New().String(),
				DocumentID: doc.ID,
				Content:    window,
				Section:    r.title,
				Position:   position,
				Keywords:   analysis.Keywords(window, localKeywordLimit),
			})
			position++
		}
	}
	return chunks
}

// windows cuts text into chunkSize-word windows sharing overlap words.
// Empty and whitespace-only windows are discarded.
func (c *Chunker) windows(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var out []string
	start := 0
	for start < len(words) {
		end := start + c.chunkSize
		if end > len(words) {
			end = len(words)
		}

		window := strings.TrimSpace(strings.Join(words[start:end], " "))
		if window != "" {
			out = append(out, window)
		}

		if end == len(words) {
			break
		}
		start = end - c.overlap
	}
	return out
}
