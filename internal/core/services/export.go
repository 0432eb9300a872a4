package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
	"github.com/glosskit/glosskit-cli/internal/core/ports/driven"
	"github.com/glosskit/glosskit-cli/internal/core/ports/driving"
	"github.com/glosskit/glosskit-cli/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService dispatches computed results to the exporter registered
// for the requested format. An unknown or unregistered format fails the
// export step only; the caller's computed results stay intact.
type ExportService struct {
	exporters map[domain.ExportFormat]driven.Exporter
}

// NewExportService creates an export service over the given exporters.
func NewExportService(exporters ...driven.Exporter) *ExportService {
	m := make(map[domain.ExportFormat]driven.Exporter, len(exporters))
	for _, e := range exporters {
		m[e.Format()] = e
	}
	return &ExportService{exporters: m}
}

// Records renders an ordered record sequence to w.
func (s *ExportService) Records(ctx context.Context, format domain.ExportFormat, records []domain.Record, w io.Writer) error {
	e, err := s.exporter(ctx, format)
	if err != nil {
		return err
	}
	logger.Debug("Exporting %d records as %s", len(records), format)
	return e.ExportRecords(w, records)
}

// PairGroups renders minimal-pair clusters to w.
func (s *ExportService) PairGroups(ctx context.Context, format domain.ExportFormat, groups []domain.PairGroup, w io.Writer) error {
	e, err := s.exporter(ctx, format)
	if err != nil {
		return err
	}
	logger.Debug("Exporting %d pair groups as %s", len(groups), format)
	return e.ExportPairGroups(w, groups)
}

// GlossClasses renders gloss-identity classes to w.
func (s *ExportService) GlossClasses(ctx context.Context, format domain.ExportFormat, classes []domain.GlossClass, w io.Writer) error {
	e, err := s.exporter(ctx, format)
	if err != nil {
		return err
	}
	logger.Debug("Exporting %d gloss classes as %s", len(classes), format)
	return e.ExportGlossClasses(w, classes)
}

// OutputPath derives the artifact name next to the input corpus:
// base name, operation suffix, format extension.
func (s *ExportService) OutputPath(inputURI, suffix string, format domain.ExportFormat) string {
	base := strings.TrimSuffix(inputURI, filepath.Ext(inputURI))
	return base + suffix + format.Extension()
}

func (s *ExportService) exporter(ctx context.Context, format domain.ExportFormat) (driven.Exporter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, ok := s.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%q: %w", format, domain.ErrUnsupportedFormat)
	}
	return e, nil
}
