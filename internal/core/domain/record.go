package domain

// Record is one parsed interlinear example.
// It is constructed once by the WRIML parser and never mutated afterwards.
type Record struct {
	// ID is the internal unique identifier assigned at parse time.
	ID string

	// Ref is the corpus-supplied identifier, taken from the ^id tag or
	// the legacy ^ref tag, whichever appears first in the block.
	// Uniqueness across a corpus is not enforced.
	Ref string

	// Context is the free-text context prompt, if any.
	Context string

	// ContextType is the optional type attribute of the context tag.
	// Nil means the attribute was absent. Exporters substitute the
	// ContextTypeUnspecified sentinel at render time; parsing preserves
	// the absence.
	ContextType *string

	// Judgment is the acceptability judgment. The empty string means
	// the example is acceptable in its context.
	Judgment string

	// Text is the unsegmented example text.
	Text string

	// Morphemes is the morpheme line. Required for search and grouping;
	// its absence is a data-quality diagnostic, not a parse failure.
	Morphemes string

	// Gloss is the gloss line, aligned positionally with Morphemes by
	// the corpus author. Alignment is not re-validated.
	Gloss string

	// Translation is the free translation, if any.
	Translation string

	// Literal is the literal translation, if any.
	Literal string

	// RawLines holds the verbatim lines of the source block, markers
	// excluded, for lossless pass-through export.
	RawLines []string
}

// GlossTokens returns the ordered token sequence of the gloss line.
// A record without a gloss line yields no tokens and so never matches
// in search or the minimal-pair relation.
func (r *Record) GlossTokens() []string {
	return Tokenize(r.Gloss)
}

// MorphemeTokens returns the ordered token sequence of the morpheme line.
func (r *Record) MorphemeTokens() []string {
	return Tokenize(r.Morphemes)
}

// Corpus is an ordered collection of records. Record order is the order
// of appearance in the source text; grouping and search consume it as the
// tie-break for stable output ordering.
type Corpus struct {
	// URI is the location the corpus was loaded from.
	URI string

	// Records are the parsed examples in source order.
	Records []Record
}

// Len returns the number of records in the corpus.
func (c *Corpus) Len() int {
	return len(c.Records)
}
