package export

import (
	"bufio"
	"io"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
	"github.com/glosskit/glosskit-cli/internal/core/ports/driven"
	"github.com/glosskit/glosskit-cli/internal/wriml"
)

// Ensure Passthrough implements the interface.
var _ driven.Exporter = (*Passthrough)(nil)

// Passthrough re-emits each record's verbatim source block between
// normalised block markers. Exporting a freshly parsed corpus
// reproduces the input byte for byte, modulo delimiter normalisation.
// Group renditions add no headers so the output stays parseable WRIML;
// groups are separated by a blank line.
type Passthrough struct{}

// NewPassthrough creates a new pass-through exporter.
func NewPassthrough() *Passthrough {
	return &Passthrough{}
}

// Format returns the encoding this exporter produces.
func (e *Passthrough) Format() domain.ExportFormat {
	return domain.FormatPassthrough
}

// ExportRecords renders an ordered record sequence.
func (e *Passthrough) ExportRecords(w io.Writer, records []domain.Record) error {
	bw := bufio.NewWriter(w)
	for i := range records {
		e.writeBlock(bw, &records[i])
	}
	return bw.Flush()
}

// ExportPairGroups renders minimal-pair clusters.
func (e *Passthrough) ExportPairGroups(w io.Writer, groups []domain.PairGroup) error {
	bw := bufio.NewWriter(w)
	for gi := range groups {
		if gi > 0 {
			bw.WriteString("\n")
		}
		for i := range groups[gi].Members {
			e.writeBlock(bw, &groups[gi].Members[i])
		}
	}
	return bw.Flush()
}

// ExportGlossClasses renders gloss-identity classes.
func (e *Passthrough) ExportGlossClasses(w io.Writer, classes []domain.GlossClass) error {
	bw := bufio.NewWriter(w)
	for ci := range classes {
		if ci > 0 {
			bw.WriteString("\n")
		}
		for i := range classes[ci].Members {
			e.writeBlock(bw, &classes[ci].Members[i])
		}
	}
	return bw.Flush()
}

func (e *Passthrough) writeBlock(bw *bufio.Writer, rec *domain.Record) {
	bw.WriteString(wriml.BlockOpen)
	bw.WriteString("\n")
	for _, line := range rec.RawLines {
		bw.WriteString(line)
		bw.WriteString("\n")
	}
	bw.WriteString(wriml.BlockClose)
	bw.WriteString("\n")
}
