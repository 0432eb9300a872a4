package domain

// PairGroup is one minimal-pair cluster. Membership is decided against
// the group's seed record only (single linkage to seed): two members of
// the same group need not be minimal pairs of each other. This
// reproduces the grouping behaviour of the original analysis tool; see
// GroupingService.MinimalPairs for the construction rule.
type PairGroup struct {
	// Members are the records in discovery order. The first member is
	// the seed. Every record of a corpus belongs to exactly one group.
	Members []Record
}

// Seed returns the record the group was opened with.
func (g *PairGroup) Seed() Record {
	return g.Members[0]
}

// GlossClass is one gloss-identity equivalence class: the records
// sharing a character-identical normalised gloss line. Unlike minimal
// pair grouping this is a strict partition.
type GlossClass struct {
	// Key is the whitespace-normalised gloss line shared by all
	// members. The empty string is a valid key, so records without a
	// gloss line share one class.
	Key string

	// Members are the records in corpus order.
	Members []Record
}

// SearchField selects which token line a search runs over.
type SearchField string

const (
	// FieldGloss searches the tokenised gloss line.
	FieldGloss SearchField = "gloss"

	// FieldMorpheme searches the tokenised morpheme line.
	FieldMorpheme SearchField = "morpheme"
)

// IsValid returns true if the search field is recognised.
func (f SearchField) IsValid() bool {
	switch f {
	case FieldGloss, FieldMorpheme:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f SearchField) String() string {
	return string(f)
}
