package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
	"github.com/glosskit/glosskit-cli/internal/core/ports/driven"
)

// Ensure Tabular implements the interface.
var _ driven.Exporter = (*Tabular)(nil)

// tabularColumns is the fixed header row of the metadata block.
var tabularColumns = []string{
	"id", "context", "type", "judgment", "text",
	"morphemes", "gloss", "translation", "literal",
}

// Tabular renders a row-oriented metadata block: a header row followed
// by one row per record. When stdout is a terminal the per-cell width
// clamps so a row fits the screen; redirected output is not truncated.
type Tabular struct {
	cellWidth int
}

// NewTabular creates a tabular exporter, detecting the terminal width.
func NewTabular() *Tabular {
	width := 0
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}
	return NewTabularWithWidth(width)
}

// NewTabularWithWidth creates a tabular exporter with an explicit
// terminal width. Zero disables cell truncation.
func NewTabularWithWidth(width int) *Tabular {
	cell := 0
	if width > 0 {
		cell = width / len(tabularColumns)
		if cell < 6 {
			cell = 6
		}
	}
	return &Tabular{cellWidth: cell}
}

// Format returns the encoding this exporter produces.
func (e *Tabular) Format() domain.ExportFormat {
	return domain.FormatTabular
}

// ExportRecords renders an ordered record sequence.
func (e *Tabular) ExportRecords(w io.Writer, records []domain.Record) error {
	tw := e.newWriter(w)
	e.writeHeader(tw)
	for i := range records {
		e.writeRow(tw, &records[i])
	}
	return tw.Flush()
}

// ExportPairGroups renders minimal-pair clusters as sections.
func (e *Tabular) ExportPairGroups(w io.Writer, groups []domain.PairGroup) error {
	for gi := range groups {
		if gi > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "# %s\n", pairGroupTitle(gi, &groups[gi]))
		if err := e.ExportRecords(w, groups[gi].Members); err != nil {
			return err
		}
	}
	return nil
}

// ExportGlossClasses renders gloss-identity classes as sections.
func (e *Tabular) ExportGlossClasses(w io.Writer, classes []domain.GlossClass) error {
	for ci := range classes {
		if ci > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "# %s\n", glossClassTitle(ci, &classes[ci]))
		if err := e.ExportRecords(w, classes[ci].Members); err != nil {
			return err
		}
	}
	return nil
}

func (e *Tabular) newWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
}

func (e *Tabular) writeHeader(tw *tabwriter.Writer) {
	fmt.Fprintln(tw, strings.Join(tabularColumns, "\t"))
}

func (e *Tabular) writeRow(tw *tabwriter.Writer, rec *domain.Record) {
	cells := []string{
		recordLabel(rec),
		rec.Context,
		contextType(rec),
		rec.Judgment,
		rec.Text,
		rec.Morphemes,
		rec.Gloss,
		rec.Translation,
		rec.Literal,
	}
	for i, c := range cells {
		cells[i] = e.clamp(c)
	}
	fmt.Fprintln(tw, strings.Join(cells, "\t"))
}

// clamp truncates a cell to the per-cell width, marking the cut.
func (e *Tabular) clamp(cell string) string {
	if e.cellWidth <= 0 {
		return cell
	}
	runes := []rune(cell)
	if len(runes) <= e.cellWidth {
		return cell
	}
	return string(runes[:e.cellWidth-1]) + "…"
}
