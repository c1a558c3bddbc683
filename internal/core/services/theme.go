package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/studymate-ai/studymate/internal/analysis"
	"github.com/studymate-ai/studymate/internal/core/domain"
	"github.com/studymate-ai/studymate/internal/core/ports/driven"
	"github.com/studymate-ai/studymate/internal/core/ports/driving"
	"github.com/studymate-ai/studymate/internal/logger"
)

// themeExcerptLength bounds the supporting excerpt stored per theme.
const themeExcerptLength = 300

// maxAnalysisSentences caps the per-document analysis line.
const maxAnalysisSentences = 3

// maxThemeConcepts bounds the candidate concepts extracted from a
// research question.
const maxThemeConcepts = 5

// researchTriggers are the phrasings that mark a question as a
// cross-document research question.
var researchTriggers = []string{
	"what do these papers",
	"what do the papers",
	"what do these documents",
	"what do my documents",
	"across these documents",
	"across documents",
	"across the papers",
	"across my materials",
	"compare these papers",
	"compare the papers",
	"common themes",
	"recurring themes",
	"synthesis",
	"synthesize",
	"synthesise",
	"research shows",
	"literature say",
}

// conceptPattern captures the noun phrase after a topical preposition,
// e.g. "about ensemble methods" or "regarding transfer learning".
var conceptPattern = regexp.MustCompile(`(?i)\b(?:about|regarding|concerning|on the topic of)\s+([a-zA-Z][a-zA-Z'\- ]{2,40}?)(?:[.,;?!]|$)`)

// IsResearchQuestion reports whether the question uses research
// phrasing that warrants cross-document synthesis.
func IsResearchQuestion(question string) bool {
	lower := strings.ToLower(question)
	for _, trigger := range researchTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}

// ThemeService discovers concepts that recur across documents and
// composes a cross-document narrative. Themes are transient and never
// persisted.
type ThemeService struct {
	store     driven.DocumentStore
	retrieval driving.RetrievalService
	settings  domain.Settings
}

// NewThemeService creates a new theme synthesis service.
func NewThemeService(store driven.DocumentStore, retrieval driving.RetrievalService, settings domain.Settings) *ThemeService {
	return &ThemeService{store: store, retrieval: retrieval, settings: settings}
}

// Synthesize answers a research question by finding concepts that at
// least two documents discuss, pairing each with per-document excerpts
// and analysis lines, and composing a narrative over them.
func (s *ThemeService) Synthesize(ctx context.Context, question string, documentIDs []string) (*domain.ThemeReport, error) {
	defer logger.Stage("Theme Synthesis")()

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is empty", domain.ErrInvalidInput)
	}

	results, err := s.retrieval.Query(ctx, question, documentIDs, s.settings.ThemeTopK)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return s.emptyReport(question), nil
	}

	concepts := s.concepts(question)
	logger.Debug("Candidate concepts: %v", concepts)

	var themes []domain.Theme
	for _, concept := range concepts {
		if theme, ok := s.buildTheme(concept, results); ok {
			themes = append(themes, theme)
		}
	}
	themes = mergeOverlapping(themes, s.settings.ConceptOverlap)

	report := &domain.ThemeReport{
		Question:      question,
		DocumentNames: contributingDocuments(themes, results),
		Themes:        themes,
		Narrative:     s.narrative(question, themes),
		Confidence:    s.reportConfidence(themes, results),
	}
	logger.Info("Synthesized %d theme(s) with confidence %.2f", len(themes), report.Confidence)
	return report, nil
}

// concepts extracts candidate theme labels from the question: phrases
// after topical prepositions plus the top question keywords.
func (s *ThemeService) concepts(question string) []string {
	var concepts []string
	seen := make(map[string]bool)

	add := func(concept string) {
		concept = strings.ToLower(strings.TrimSpace(concept))
		if len(concept) < 3 || seen[concept] || analysis.IsStopword(concept) {
			return
		}
		seen[concept] = true
		concepts = append(concepts, concept)
	}

	for _, match := range conceptPattern.FindAllStringSubmatch(question, -1) {
		add(match[1])
	}
	for _, keyword := range analysis.Keywords(question, 3) {
		add(keyword)
	}
	if len(concepts) > maxThemeConcepts {
		concepts = concepts[:maxThemeConcepts]
	}
	return concepts
}

// buildTheme collects the chunks mentioning a concept. A theme holds
// only when two or more distinct documents mention the concept.
func (s *ThemeService) buildTheme(concept string, results []domain.RetrievalResult) (domain.Theme, bool) {
	// Best hit per document, in ranked order.
	best := make(map[string]domain.RetrievalResult)
	var order []string
	for _, r := range results {
		if !mentionsConcept(r.Chunk.Content, concept, s.settings.ConceptOverlap) {
			continue
		}
		if _, ok := best[r.DocumentID]; !ok {
			best[r.DocumentID] = r
			order = append(order, r.DocumentID)
		}
	}
	if len(order) < 2 {
		return domain.Theme{}, false
	}

	theme := domain.Theme{Label: concept, DocumentIDs: order}
	for _, id := range order {
		r := best[id]
		theme.Excerpts = append(theme.Excerpts, domain.ThemeExcerpt{
			DocumentID:   r.DocumentID,
			DocumentName: r.DocumentName,
			Text:         truncate(r.Chunk.Content, themeExcerptLength),
			Section:      r.Section,
			Relevance:    r.Score,
		})
		theme.Analyses = append(theme.Analyses, domain.ThemeAnalysis{
			DocumentID:   r.DocumentID,
			DocumentName: r.DocumentName,
			Text:         conceptSentences(r.Chunk.Content, concept, s.settings.ConceptOverlap),
		})
	}
	return theme, true
}

// mentionsConcept reports whether the text discusses the concept,
// either literally or, for multi-word concepts, when the fraction of
// concept words found in the text exceeds the overlap threshold.
func mentionsConcept(text, concept string, overlapThreshold float64) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, concept) {
		return true
	}
	words := strings.Fields(concept)
	if len(words) < 2 {
		return false
	}
	hits := 0
	for _, word := range words {
		if strings.Contains(lower, word) {
			hits++
		}
	}
	return float64(hits)/float64(len(words)) > overlapThreshold
}

// conceptSentences joins the sentences mentioning the concept, capped
// at maxAnalysisSentences.
func conceptSentences(text, concept string, overlapThreshold float64) string {
	var picked []string
	for _, sentence := range analysis.Sentences(text) {
		if mentionsConcept(sentence, concept, overlapThreshold) {
			picked = append(picked, sentence)
		}
		if len(picked) == maxAnalysisSentences {
			break
		}
	}
	if len(picked) == 0 {
		sentences := analysis.Sentences(text)
		picked = firstN(sentences, 1)
	}
	return strings.Join(picked, " ")
}

// mergeOverlapping drops themes whose label is contained in, or
// heavily word-overlaps, an earlier theme's label.
func mergeOverlapping(themes []domain.Theme, overlapThreshold float64) []domain.Theme {
	var merged []domain.Theme
	for _, theme := range themes {
		duplicate := false
		for _, kept := range merged {
			if strings.Contains(kept.Label, theme.Label) ||
				strings.Contains(theme.Label, kept.Label) ||
				analysis.Jaccard(kept.Label, theme.Label) > overlapThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			merged = append(merged, theme)
		}
	}
	return merged
}

// narrative composes the cross-document prose for the report.
func (s *ThemeService) narrative(question string, themes []domain.Theme) string {
	if len(themes) == 0 {
		return "Your documents do not share recurring themes relevant to this question. Each document may cover the topic in isolation; try asking about a single document instead."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Across your documents, %d recurring theme(s) relate to this question.\n", len(themes))
	for i, theme := range themes {
		fmt.Fprintf(&b, "\n%d. %s (discussed in %d documents)\n", i+1, titleCase(theme.Label), len(theme.DocumentIDs))
		for _, a := range theme.Analyses {
			fmt.Fprintf(&b, "   - %s: %s\n", a.DocumentName, a.Text)
		}
	}
	if insights := crossCuttingInsights(themes); insights != "" {
		b.WriteString("\nCross-cutting insights:\n")
		b.WriteString(insights)
	}
	return b.String()
}

// methodMarkers and theoryMarkers classify theme labels for the
// methodological versus theoretical split in the insights.
var (
	methodMarkers = []string{"method", "approach", "technique"}
	theoryMarkers = []string{"theory", "concept", "principle"}
)

func labelHasAny(label string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(label, marker) {
			return true
		}
	}
	return false
}

// crossCuttingInsights reports documents that span multiple themes,
// the methodological versus theoretical split among the theme labels,
// and themes shared by most of the contributing documents.
func crossCuttingInsights(themes []domain.Theme) string {
	themeCount := make(map[string]int)
	nameByID := make(map[string]string)
	allDocs := make(map[string]bool)
	for _, theme := range themes {
		for _, ex := range theme.Excerpts {
			themeCount[ex.DocumentID]++
			nameByID[ex.DocumentID] = ex.DocumentName
			allDocs[ex.DocumentID] = true
		}
	}

	var lines []string
	var spanning []string
	for id, n := range themeCount {
		if n > 1 {
			spanning = append(spanning, nameByID[id])
		}
	}
	sort.Strings(spanning)
	if len(spanning) > 0 {
		lines = append(lines, fmt.Sprintf("   - %s span multiple themes, suggesting broad coverage.", strings.Join(spanning, ", ")))
	}

	var methodical, theoretical []string
	for _, theme := range themes {
		switch {
		case labelHasAny(theme.Label, methodMarkers):
			methodical = append(methodical, titleCase(theme.Label))
		case labelHasAny(theme.Label, theoryMarkers):
			theoretical = append(theoretical, titleCase(theme.Label))
		}
	}
	if len(methodical) > 0 && len(theoretical) > 0 {
		lines = append(lines, fmt.Sprintf("   - Methodological themes (%s) are balanced by theoretical ones (%s).",
			strings.Join(methodical, ", "), strings.Join(theoretical, ", ")))
	}

	for _, theme := range themes {
		if float64(len(theme.DocumentIDs))/float64(len(allDocs)) >= 0.7 {
			lines = append(lines, fmt.Sprintf("   - %q appears in most of your documents, marking it as a consensus theme.", theme.Label))
		}
	}

	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// reportConfidence scores how well supported the synthesis is: theme
// count dominates, with small bonuses for breadth and retrieval
// relevance. Capped at 0.95 because synthesis is heuristic.
func (s *ThemeService) reportConfidence(themes []domain.Theme, results []domain.RetrievalResult) float64 {
	base := 0.2 * float64(len(themes))
	if base > 0.8 {
		base = 0.8
	}

	if len(themes) > 0 {
		var docSum int
		for _, theme := range themes {
			docSum += len(theme.DocumentIDs)
		}
		if float64(docSum)/float64(len(themes)) >= 2 {
			base += 0.1
		}
	}

	if len(results) > 0 {
		var scoreSum float64
		for _, r := range results {
			scoreSum += r.Score
		}
		avg := scoreSum / float64(len(results))
		if avg > 1 {
			avg = 1
		}
		base += 0.1 * avg
	}

	if base > 0.95 {
		base = 0.95
	}
	return base
}

// contributingDocuments lists the display names of every document that
// supports at least one theme; with no themes it lists the retrieved
// documents instead.
func contributingDocuments(themes []domain.Theme, results []domain.RetrievalResult) []string {
	names := make(map[string]bool)
	if len(themes) > 0 {
		for _, theme := range themes {
			for _, ex := range theme.Excerpts {
				names[ex.DocumentName] = true
			}
		}
	} else {
		for _, r := range results {
			names[r.DocumentName] = true
		}
	}
	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// titleCase upper-cases the first letter of each word.
func titleCase(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// emptyReport is the neutral result when retrieval finds nothing.
func (s *ThemeService) emptyReport(question string) *domain.ThemeReport {
	return &domain.ThemeReport{
		Question:   question,
		Narrative:  "No indexed content matched this question, so no cross-document themes could be synthesized.",
		Confidence: 0,
	}
}
