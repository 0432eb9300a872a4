package driving

import (
	"context"
	"io"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

// ExportService renders computed results into a requested encoding.
// An unrecognised format fails the export step only; the computed
// results stay valid for a retry.
type ExportService interface {
	// Records renders an ordered record sequence to w.
	Records(ctx context.Context, format domain.ExportFormat, records []domain.Record, w io.Writer) error

	// PairGroups renders minimal-pair clusters to w.
	PairGroups(ctx context.Context, format domain.ExportFormat, groups []domain.PairGroup, w io.Writer) error

	// GlossClasses renders gloss-identity classes to w.
	GlossClasses(ctx context.Context, format domain.ExportFormat, classes []domain.GlossClass, w io.Writer) error

	// OutputPath derives the artifact name from the input corpus path,
	// an operation suffix (e.g. "_pairs"), and the format extension.
	OutputPath(inputURI, suffix string, format domain.ExportFormat) string
}
