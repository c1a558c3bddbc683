package analysis

import "sort"

// stopwords is the filter applied before keyword frequency ranking.
var stopwords = map[string]struct{}{}

func init() {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "it", "its", "this", "that",
		"these", "those", "from", "up", "down", "over", "under", "again",
		"further", "than", "so", "such", "into", "about", "between",
		"through", "during", "before", "after", "above", "below", "out",
		"off", "own", "same", "too", "very", "can", "will", "just", "not",
		"no", "nor", "only", "do", "does", "did", "have", "has", "had",
		"what", "which", "who", "whom", "when", "where", "why", "how",
		"all", "any", "both", "each", "few", "more", "most", "other",
		"some", "we", "you", "they", "he", "she", "i", "their", "there",
	}
	for _, w := range words {
		stopwords[w] = struct{}{}
	}
}

// IsStopword reports whether the lower-cased word is filtered from
// keyword extraction.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}

// Keywords returns up to limit frequency-ranked terms from the text,
// stop words removed and single characters ignored. Ties break
// alphabetically so the ranking is deterministic.
func Keywords(text string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	freq := make(map[string]int)
	for _, tok := range Tokens(text) {
		if len(tok) < 2 {
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}
		freq[tok]++
	}
	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}

// KeywordOverlap counts how many of the query's keywords appear in the
// chunk's keyword set. Used for the retrieval ranking boost.
func KeywordOverlap(queryKeywords, chunkKeywords []string) int {
	set := make(map[string]struct{}, len(chunkKeywords))
	for _, k := range chunkKeywords {
		set[k] = struct{}{}
	}
	overlap := 0
	for _, k := range queryKeywords {
		if _, ok := set[k]; ok {
			overlap++
		}
	}
	return overlap
}
