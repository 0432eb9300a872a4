package domain

import "fmt"

// ContextTypeUnspecified is substituted at render time when a record's
// context tag carries no type attribute.
const ContextTypeUnspecified = "unspecified"

// ExportFormat identifies an output encoding.
type ExportFormat string

// The closed set of output encodings.
const (
	// FormatNone disables export.
	FormatNone ExportFormat = "none"

	// FormatPassthrough re-emits the original WRIML blocks verbatim.
	FormatPassthrough ExportFormat = "passthrough"

	// FormatPlain renders a narrative plain-text block per record.
	FormatPlain ExportFormat = "plain"

	// FormatTabular renders a row-oriented metadata block.
	FormatTabular ExportFormat = "tabular"

	// FormatLaTeX wraps each record in a glexample environment with a
	// fixed field order.
	FormatLaTeX ExportFormat = "latex"
)

// ParseExportFormat maps a user-supplied name to a format. Anything
// outside the closed set returns ErrUnsupportedFormat; already-computed
// results stay valid for a retry with a recognised format.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%q: %w", s, ErrUnsupportedFormat)
	}
	return f, nil
}

// IsValid returns true if the export format is recognised.
func (f ExportFormat) IsValid() bool {
	switch f {
	case FormatNone, FormatPassthrough, FormatPlain, FormatTabular, FormatLaTeX:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f ExportFormat) String() string {
	return string(f)
}

// Extension returns the file extension for artifacts in this format,
// including the leading dot. FormatNone has no artifact and returns the
// empty string.
func (f ExportFormat) Extension() string {
	switch f {
	case FormatPassthrough:
		return ".wriml"
	case FormatPlain:
		return ".txt"
	case FormatTabular:
		return ".tab"
	case FormatLaTeX:
		return ".tex"
	default:
		return ""
	}
}

// Description returns a human-readable description of the format.
func (f ExportFormat) Description() string {
	switch f {
	case FormatNone:
		return "No export"
	case FormatPassthrough:
		return "Pass-through WRIML markup"
	case FormatPlain:
		return "Plain narrative text block"
	case FormatTabular:
		return "Row-oriented tabular metadata block"
	case FormatLaTeX:
		return "LaTeX document-preparation block"
	default:
		return "Unknown"
	}
}
