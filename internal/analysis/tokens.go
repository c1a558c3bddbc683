package analysis

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]+(?:['-][a-z0-9]+)*`)

// Tokens lower-cases text and splits it into word tokens, stripping
// punctuation. The same tokenisation is used for keywords, ranking
// boosts, and the deterministic fallback embedding, so it must stay
// stable across releases.
func Tokens(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Jaccard computes word-overlap similarity between two texts on their
// whitespace-delimited tokens: |A∩B| / |A∪B|. Empty inputs yield 0.
func Jaccard(a, b string) float64 {
	setA := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(a)) {
		setA[w] = struct{}{}
	}
	setB := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(b)) {
		setB[w] = struct{}{}
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	shared := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			shared++
		}
	}
	union := len(setA) + len(setB) - shared
	return float64(shared) / float64(union)
}
