// Package file provides file-based configuration adapters: a TOML
// config store for the engine's tunable parameters and a prompt store
// for user-editable instruction templates.
package file
