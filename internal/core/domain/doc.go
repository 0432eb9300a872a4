// Package domain defines the core entities of Glosskit.
//
// This package is the innermost layer of the hexagonal architecture.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: One parsed interlinear example
//   - Corpus: An ordered collection of records
//   - PairGroup: A minimal-pair cluster
//   - GlossClass: A gloss-identity equivalence class
//   - Diagnostic: A tolerated data-quality problem
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
