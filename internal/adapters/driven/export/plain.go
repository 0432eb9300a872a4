package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
	"github.com/glosskit/glosskit-cli/internal/core/ports/driven"
)

// Ensure Plain implements the interface.
var _ driven.Exporter = (*Plain)(nil)

// Plain renders a narrative text block per record, one field per line,
// blank line between records.
type Plain struct{}

// NewPlain creates a new plain-text exporter.
func NewPlain() *Plain {
	return &Plain{}
}

// Format returns the encoding this exporter produces.
func (e *Plain) Format() domain.ExportFormat {
	return domain.FormatPlain
}

// ExportRecords renders an ordered record sequence.
func (e *Plain) ExportRecords(w io.Writer, records []domain.Record) error {
	bw := bufio.NewWriter(w)
	for i := range records {
		if i > 0 {
			bw.WriteString("\n")
		}
		e.writeRecord(bw, &records[i])
	}
	return bw.Flush()
}

// ExportPairGroups renders minimal-pair clusters under group headers.
func (e *Plain) ExportPairGroups(w io.Writer, groups []domain.PairGroup) error {
	bw := bufio.NewWriter(w)
	for gi := range groups {
		if gi > 0 {
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "== %s ==\n\n", pairGroupTitle(gi, &groups[gi]))
		for i := range groups[gi].Members {
			if i > 0 {
				bw.WriteString("\n")
			}
			e.writeRecord(bw, &groups[gi].Members[i])
		}
	}
	return bw.Flush()
}

// ExportGlossClasses renders gloss-identity classes under class headers.
func (e *Plain) ExportGlossClasses(w io.Writer, classes []domain.GlossClass) error {
	bw := bufio.NewWriter(w)
	for ci := range classes {
		if ci > 0 {
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "== %s ==\n\n", glossClassTitle(ci, &classes[ci]))
		for i := range classes[ci].Members {
			if i > 0 {
				bw.WriteString("\n")
			}
			e.writeRecord(bw, &classes[ci].Members[i])
		}
	}
	return bw.Flush()
}

func (e *Plain) writeRecord(bw *bufio.Writer, rec *domain.Record) {
	fmt.Fprintf(bw, "[%s]\n", recordLabel(rec))
	if rec.Context != "" {
		fmt.Fprintf(bw, "Context (%s): %s\n", contextType(rec), rec.Context)
	}
	if rec.Judgment != "" {
		fmt.Fprintf(bw, "Judgment: %s\n", rec.Judgment)
	}
	if rec.Text != "" {
		fmt.Fprintf(bw, "%s\n", rec.Text)
	}
	if rec.Morphemes != "" {
		fmt.Fprintf(bw, "%s\n", rec.Morphemes)
	}
	if rec.Gloss != "" {
		fmt.Fprintf(bw, "%s\n", rec.Gloss)
	}
	if rec.Translation != "" {
		fmt.Fprintf(bw, "'%s'\n", rec.Translation)
	}
	if rec.Literal != "" {
		fmt.Fprintf(bw, "(lit. %s)\n", rec.Literal)
	}
}
