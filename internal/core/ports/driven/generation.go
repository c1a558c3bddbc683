package driven

import "context"

// GenerationService produces free text from a prompt. This is the only
// generative boundary in the engine: everything before the call
// (retrieval, context assembly) and after it (fallbacks, attribution)
// is owned by the core.
//
// This is an optional service - when nil or unreachable, answer
// synthesis degrades to the extractive template path.
type GenerationService interface {
	// Generate produces text for a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the generation model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour. Zero values
// mean the implementation's defaults.
type GenerateOptions struct {
	// MaxLength is the maximum number of tokens to generate.
	MaxLength int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64

	// TopP is the nucleus sampling cutoff.
	TopP float64
}
