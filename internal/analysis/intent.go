package analysis

import (
	"strings"

	"github.com/studymate-ai/studymate/internal/core/domain"
)

// intentRules maps trigger substrings to intents. Order matters: the
// first matching rule wins, so "what is the difference" classifies as
// definition, not comparison.
var intentRules = []struct {
	triggers []string
	intent   domain.Intent
}{
	{[]string{"what is", "define"}, domain.IntentDefinition},
	{[]string{"how", "explain"}, domain.IntentExplanation},
	{[]string{"summarize", "summary"}, domain.IntentSummary},
	{[]string{"compare", "difference"}, domain.IntentComparison},
	{[]string{"example", "instance"}, domain.IntentExample},
}

// ClassifyIntent labels a question by its rhetorical intent using
// case-insensitive substring matching. Questions matching no rule are
// general.
func ClassifyIntent(question string) domain.Intent {
	lower := strings.ToLower(question)
	for _, rule := range intentRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return rule.intent
			}
		}
	}
	return domain.IntentGeneral
}
