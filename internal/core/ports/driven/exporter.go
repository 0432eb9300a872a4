package driven

import (
	"io"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

// Exporter renders records into one output encoding.
// Implementations must preserve corpus and group order, and must
// substitute domain.ContextTypeUnspecified when a record's context type
// attribute is absent.
type Exporter interface {
	// Format returns the encoding this exporter produces.
	Format() domain.ExportFormat

	// ExportRecords renders an ordered record sequence.
	ExportRecords(w io.Writer, records []domain.Record) error

	// ExportPairGroups renders minimal-pair clusters, preserving group
	// discovery order and member order within each group.
	ExportPairGroups(w io.Writer, groups []domain.PairGroup) error

	// ExportGlossClasses renders gloss-identity classes in
	// first-appearance key order.
	ExportGlossClasses(w io.Writer, classes []domain.GlossClass) error
}
