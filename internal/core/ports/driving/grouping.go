package driving

import (
	"context"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

// GroupingService clusters a corpus. Both policies consume the full
// corpus at once; there is no incremental mode.
type GroupingService interface {
	// MinimalPairs clusters records by the minimal-pair relation over
	// gloss token sets. Membership is decided against each group's
	// seed only (single linkage to seed), so the result is not a
	// strict equivalence partition. Group order follows corpus order
	// of seed discovery.
	MinimalPairs(ctx context.Context, corpus *domain.Corpus) ([]domain.PairGroup, error)

	// GlossVariants partitions records into exact equivalence classes
	// keyed by the whitespace-normalised gloss line. Class order
	// follows first appearance of each distinct key.
	GlossVariants(ctx context.Context, corpus *domain.Corpus) ([]domain.GlossClass, error)
}
