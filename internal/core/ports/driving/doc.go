// Package driving defines the interfaces through which callers drive
// the core engine.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and any future transport implement their handlers against
// these interfaces, and core services implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
