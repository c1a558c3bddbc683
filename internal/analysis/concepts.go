package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// Concept is a candidate quiz topic extracted from chunk text.
type Concept struct {
	// Term is the defined term, e.g. "Overfitting".
	Term string

	// Definition is the predicate of the definitional sentence, or the
	// list item text for list-derived concepts.
	Definition string

	// Statement is the full sentence or line the concept came from.
	Statement string

	// Importance scores how central the concept is to the text.
	// Derived from occurrence count plus an importance-signal bonus;
	// may exceed 1.
	Importance float64
}

// definitionPattern captures "X is Y.", "X are Y.", "X refers to Y.",
// "X means Y." and "X can be defined as Y." sentences. The term must
// start a sentence with a capital letter to skip mid-sentence copulas.
var definitionPattern = regexp.MustCompile(
	`([A-Z][A-Za-z0-9'\- ]{1,59}?)\s+(?:is|are|refers to|means|can be defined as)\s+([^.!?\n]{3,200}[.!?])`)

// listItemPattern captures numbered or bulleted lines between 10 and
// 100 characters.
var listItemPattern = regexp.MustCompile(`(?m)^[ \t]*(?:\d+[.)]|[-*•])[ \t]+(.{10,100})[ \t]*$`)

// importanceSignals are words whose presence near a concept marks it as
// central to the material.
var importanceSignals = []string{
	"important", "key", "main", "primary", "essential", "fundamental",
}

// ExtractConcepts finds definitional sentences and list items in text
// and scores each concept's importance. Results are sorted by
// importance, highest first, with duplicate terms collapsed.
func ExtractConcepts(text string) []Concept {
	var concepts []Concept
	seen := make(map[string]struct{})

	for _, m := range definitionPattern.FindAllStringSubmatch(text, -1) {
		term := strings.TrimSpace(m[1])
		definition := strings.TrimSpace(m[2])
		key := strings.ToLower(term)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		concepts = append(concepts, Concept{
			Term:       term,
			Definition: strings.TrimRight(definition, ".!?"),
			Statement:  strings.TrimSpace(m[0]),
		})
	}

	for _, m := range listItemPattern.FindAllStringSubmatch(text, -1) {
		item := strings.TrimSpace(m[1])
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		concepts = append(concepts, Concept{
			Term:       item,
			Definition: item,
			Statement:  item,
		})
	}

	for i := range concepts {
		concepts[i].Importance = conceptImportance(text, concepts[i].Term)
	}

	sort.SliceStable(concepts, func(i, j int) bool {
		return concepts[i].Importance > concepts[j].Importance
	})
	return concepts
}

// conceptImportance scores a concept by literal occurrence count
// (0.2 per occurrence, capped at 1.0) plus 0.3 when an importance
// signal word appears in a sentence mentioning the concept.
func conceptImportance(text, term string) float64 {
	lowerText := strings.ToLower(text)
	lowerTerm := strings.ToLower(term)

	score := 0.2 * float64(strings.Count(lowerText, lowerTerm))
	if score > 1.0 {
		score = 1.0
	}

	for _, sentence := range Sentences(lowerText) {
		if !strings.Contains(sentence, lowerTerm) {
			continue
		}
		for _, signal := range importanceSignals {
			if strings.Contains(sentence, signal) {
				return score + 0.3
			}
		}
	}
	return score
}
