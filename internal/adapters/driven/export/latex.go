package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
	"github.com/glosskit/glosskit-cli/internal/core/ports/driven"
)

// Ensure LaTeX implements the interface.
var _ driven.Exporter = (*LaTeX)(nil)

// LaTeX renders each record as a glexample environment. The field order
// inside the environment is fixed: context, judgment, unsegmented text,
// morphemes, gloss, translation, literal translation, identifier.
// Document preamble and closing are the caller's concern; this exporter
// emits only the example blocks.
type LaTeX struct{}

// NewLaTeX creates a new LaTeX exporter.
func NewLaTeX() *LaTeX {
	return &LaTeX{}
}

// Format returns the encoding this exporter produces.
func (e *LaTeX) Format() domain.ExportFormat {
	return domain.FormatLaTeX
}

// ExportRecords renders an ordered record sequence.
func (e *LaTeX) ExportRecords(w io.Writer, records []domain.Record) error {
	bw := bufio.NewWriter(w)
	for i := range records {
		if i > 0 {
			bw.WriteString("\n")
		}
		e.writeRecord(bw, &records[i])
	}
	return bw.Flush()
}

// ExportPairGroups renders minimal-pair clusters as unnumbered sections.
func (e *LaTeX) ExportPairGroups(w io.Writer, groups []domain.PairGroup) error {
	bw := bufio.NewWriter(w)
	for gi := range groups {
		if gi > 0 {
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "\\section*{%s}\n\n", escape(pairGroupTitle(gi, &groups[gi])))
		for i := range groups[gi].Members {
			if i > 0 {
				bw.WriteString("\n")
			}
			e.writeRecord(bw, &groups[gi].Members[i])
		}
	}
	return bw.Flush()
}

// ExportGlossClasses renders gloss-identity classes as unnumbered sections.
func (e *LaTeX) ExportGlossClasses(w io.Writer, classes []domain.GlossClass) error {
	bw := bufio.NewWriter(w)
	for ci := range classes {
		if ci > 0 {
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "\\section*{%s}\n\n", escape(glossClassTitle(ci, &classes[ci])))
		for i := range classes[ci].Members {
			if i > 0 {
				bw.WriteString("\n")
			}
			e.writeRecord(bw, &classes[ci].Members[i])
		}
	}
	return bw.Flush()
}

func (e *LaTeX) writeRecord(bw *bufio.Writer, rec *domain.Record) {
	bw.WriteString("\\begin{glexample}\n")
	fmt.Fprintf(bw, "  \\context[%s]{%s}\n", escape(contextType(rec)), escape(rec.Context))
	fmt.Fprintf(bw, "  \\judgment{%s}\n", escape(rec.Judgment))
	fmt.Fprintf(bw, "  \\unsegmented{%s}\n", escape(rec.Text))
	fmt.Fprintf(bw, "  \\morphemes{%s}\n", escape(rec.Morphemes))
	fmt.Fprintf(bw, "  \\gloss{%s}\n", escape(rec.Gloss))
	fmt.Fprintf(bw, "  \\translation{%s}\n", escape(rec.Translation))
	fmt.Fprintf(bw, "  \\literal{%s}\n", escape(rec.Literal))
	fmt.Fprintf(bw, "  \\exref{%s}\n", escape(rec.Ref))
	bw.WriteString("\\end{glexample}\n")
}

// latexEscaper handles the characters LaTeX treats specially in text.
var latexEscaper = strings.NewReplacer(
	"\\", "\\textbackslash{}",
	"&", "\\&",
	"%", "\\%",
	"$", "\\$",
	"#", "\\#",
	"_", "\\_",
	"{", "\\{",
	"}", "\\}",
	"~", "\\textasciitilde{}",
	"^", "\\textasciicircum{}",
)

func escape(s string) string {
	return latexEscaper.Replace(s)
}
