package domain

import "fmt"

// DiagnosticKind classifies a parse diagnostic.
type DiagnosticKind string

const (
	// DiagMalformedBlock marks a dropped block: unterminated at end of
	// input, or restarted by a second open marker.
	DiagMalformedBlock DiagnosticKind = "malformed_block"

	// DiagMissingField marks a record lacking a required field (gloss
	// line, morpheme line, or identifier). The record is retained but
	// degrades to never-matches in search and to a degenerate cluster
	// member in grouping.
	DiagMissingField DiagnosticKind = "missing_field"

	// DiagDuplicateRef marks a record whose identifier repeats an
	// earlier record's. Duplicates are passed through unchanged.
	DiagDuplicateRef DiagnosticKind = "duplicate_ref"
)

// Diagnostic is a tolerated data-quality problem found while parsing.
// Diagnostics never abort a parse; they accompany the corpus so callers
// can report them.
type Diagnostic struct {
	// Kind classifies the problem.
	Kind DiagnosticKind

	// Line is the 1-based source line the problem was detected at,
	// or zero when no single line applies.
	Line int

	// Ref is the affected record's identifier, when known.
	Ref string

	// Message is a human-readable description.
	Message string
}

// String renders the diagnostic for terminal output.
func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", d.Kind, d.Line, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}
