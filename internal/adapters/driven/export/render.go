package export

import (
	"fmt"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

// contextType resolves the render-time context type: the attribute
// value when present, the sentinel otherwise.
func contextType(rec *domain.Record) string {
	if rec.ContextType != nil {
		return *rec.ContextType
	}
	return domain.ContextTypeUnspecified
}

// recordLabel names a record in group headers and listings. Records
// missing an identifier fall back to their internal ID.
func recordLabel(rec *domain.Record) string {
	if rec.Ref != "" {
		return rec.Ref
	}
	return rec.ID
}

// pairGroupTitle names one minimal-pair cluster.
func pairGroupTitle(i int, g *domain.PairGroup) string {
	seed := g.Seed()
	return fmt.Sprintf("Minimal pair group %d (seed %s)", i+1, recordLabel(&seed))
}

// glossClassTitle names one gloss-identity class.
func glossClassTitle(i int, c *domain.GlossClass) string {
	key := c.Key
	if key == "" {
		key = "(no gloss)"
	}
	return fmt.Sprintf("Context variants %d: %q", i+1, key)
}
