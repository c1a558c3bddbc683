// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentStore: document and chunk persistence
//   - EmbeddingService: text to fixed-length vectors
//
// # Optional Interfaces
//
// These can be nil - the engine degrades gracefully:
//
//   - GenerationService: answer composition. Without it, answers fall
//     back to the extractive template path.
//   - PromptStore: customisable instruction templates. Without it,
//     embedded defaults are used.
//   - ConfigStore: tunable engine parameters. Without it, defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
