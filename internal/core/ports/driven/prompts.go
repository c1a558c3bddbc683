package driven

// PromptStore provides access to the instruction templates used when
// composing generation prompts. Implementations may load templates from
// files or embed them in the binary.
type PromptStore interface {
	// Load returns the template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached templates, forcing fresh loads on next
	// access.
	Reload()
}

// Well-known prompt names, one per question intent. Each template is an
// instruction block; the retrieved chunk context is appended after it.
const (
	// PromptDefinition asks for a precise definition from the context.
	PromptDefinition = "definition"

	// PromptExplanation asks for a step-by-step explanation.
	PromptExplanation = "explanation"

	// PromptSummary asks for a concise summary of the context.
	PromptSummary = "summary"

	// PromptComparison asks for similarities and differences.
	PromptComparison = "comparison"

	// PromptExample asks for concrete examples from the context.
	PromptExample = "example"

	// PromptGeneral is the default answering instruction.
	PromptGeneral = "general"
)
