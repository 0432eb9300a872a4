// Package file provides the TOML-backed ConfigStore adapter.
// Configuration persists to the local filesystem and replaces the
// interactive format-confirmation flow of the original tool: the core
// is callable with zero interactive surface, the stored defaults plus
// command flags decide everything.
package file
