package wriml

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

// newRecordID assigns the internal record identifier. It is distinct
// from the corpus-supplied ^id/^ref identifier, which may be absent or
// duplicated.
func newRecordID() string {
	return uuid.New().String()
}

// Parse turns raw corpus text into an ordered corpus plus the
// diagnostics accumulated along the way: dropped malformed blocks,
// records missing required fields, duplicated identifiers.
//
// Diagnostics are tolerated partial failures; Parse itself never fails.
// Records with missing required fields are retained, they simply never
// match in search and degrade in grouping.
func Parse(text, uri string) (*domain.Corpus, []domain.Diagnostic) {
	blocks, diags := ExtractBlocks(text)

	corpus := &domain.Corpus{URI: uri}
	seenRefs := make(map[string]bool)

	for _, b := range blocks {
		rec := ParseBlock(b)

		if missing := missingFields(rec); len(missing) > 0 {
			diags = append(diags, domain.Diagnostic{
				Kind:    domain.DiagMissingField,
				Line:    b.StartLine,
				Ref:     rec.Ref,
				Message: fmt.Sprintf("record lacks required %s", strings.Join(missing, ", ")),
			})
		}

		if rec.Ref != "" {
			if seenRefs[rec.Ref] {
				diags = append(diags, domain.Diagnostic{
					Kind:    domain.DiagDuplicateRef,
					Line:    b.StartLine,
					Ref:     rec.Ref,
					Message: fmt.Sprintf("identifier %q already used by an earlier record", rec.Ref),
				})
			}
			seenRefs[rec.Ref] = true
		}

		corpus.Records = append(corpus.Records, rec)
	}

	return corpus, diags
}

// missingFields lists the required fields a record lacks. One
// diagnostic is emitted per affected record, naming all of them.
func missingFields(rec domain.Record) []string {
	var missing []string
	if rec.Gloss == "" {
		missing = append(missing, "gloss line")
	}
	if rec.Morphemes == "" {
		missing = append(missing, "morpheme line")
	}
	if rec.Ref == "" {
		missing = append(missing, "identifier")
	}
	return missing
}
