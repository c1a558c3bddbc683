package domain

// Intent is a coarse label for what kind of answer a question expects.
// It selects the instruction template used during synthesis and is
// surfaced to callers for display and analytics.
type Intent string

// Recognised question intents.
const (
	IntentDefinition  Intent = "definition"
	IntentExplanation Intent = "explanation"
	IntentSummary     Intent = "summary"
	IntentComparison  Intent = "comparison"
	IntentExample     Intent = "example"
	IntentGeneral     Intent = "general"
)

// IsValid returns true if the intent is recognised.
func (i Intent) IsValid() bool {
	switch i {
	case IntentDefinition, IntentExplanation, IntentSummary,
		IntentComparison, IntentExample, IntentGeneral:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (i Intent) String() string {
	return string(i)
}
