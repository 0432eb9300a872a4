package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

func TestLaTeXExportRecords(t *testing.T) {
	var buf bytes.Buffer
	e := NewLaTeX()
	require.NoError(t, e.ExportRecords(&buf, []domain.Record{sampleRecord()}))

	want := "\\begin{glexample}\n" +
		"  \\context[question]{What happened?}\n" +
		"  \\judgment{*}\n" +
		"  \\unsegmented{the dog runned}\n" +
		"  \\morphemes{the dog run-PST}\n" +
		"  \\gloss{the dog run-PST}\n" +
		"  \\translation{The dog ran.}\n" +
		"  \\literal{the dog did run}\n" +
		"  \\exref{ex1}\n" +
		"\\end{glexample}\n"
	assert.Equal(t, want, buf.String())
}

func TestLaTeXFixedFieldOrderWithAbsentFields(t *testing.T) {
	// Absent fields render as empty arguments; the command sequence
	// never changes.
	var buf bytes.Buffer
	e := NewLaTeX()
	rec := domain.Record{Ref: "ex2", Gloss: "3SG say"}
	require.NoError(t, e.ExportRecords(&buf, []domain.Record{rec}))

	want := "\\begin{glexample}\n" +
		"  \\context[unspecified]{}\n" +
		"  \\judgment{}\n" +
		"  \\unsegmented{}\n" +
		"  \\morphemes{}\n" +
		"  \\gloss{3SG say}\n" +
		"  \\translation{}\n" +
		"  \\literal{}\n" +
		"  \\exref{ex2}\n" +
		"\\end{glexample}\n"
	assert.Equal(t, want, buf.String())
}

func TestLaTeXEscaping(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ampersand", input: "salt & pepper", want: "salt \\& pepper"},
		{name: "percent", input: "50%", want: "50\\%"},
		{name: "underscore", input: "run_PST", want: "run\\_PST"},
		{name: "hash and dollar", input: "#1 $5", want: "\\#1 \\$5"},
		{name: "braces", input: "{x}", want: "\\{x\\}"},
		{name: "tilde", input: "~x", want: "\\textasciitilde{}x"},
		{name: "caret", input: "^gl", want: "\\textasciicircum{}gl"},
		{name: "backslash", input: "a\\b", want: "a\\textbackslash{}b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escape(tt.input))
		})
	}
}

func TestLaTeXExportPairGroups(t *testing.T) {
	var buf bytes.Buffer
	e := NewLaTeX()
	groups := []domain.PairGroup{
		{Members: []domain.Record{{Ref: "ex1", Gloss: "1SG say"}}},
	}
	require.NoError(t, e.ExportPairGroups(&buf, groups))

	out := buf.String()
	assert.Contains(t, out, "\\section*{Minimal pair group 1 (seed ex1)}")
	assert.Contains(t, out, "\\begin{glexample}")
}

func TestLaTeXExportGlossClasses(t *testing.T) {
	var buf bytes.Buffer
	e := NewLaTeX()
	classes := []domain.GlossClass{
		{Key: "1SG say", Members: []domain.Record{{Ref: "ex1", Gloss: "1SG say"}}},
	}
	require.NoError(t, e.ExportGlossClasses(&buf, classes))

	assert.Contains(t, buf.String(), "\\section*{Context variants 1: \"1SG say\"}")
}
