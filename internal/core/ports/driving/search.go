package driving

import (
	"context"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

// SearchService filters a corpus by exact token membership.
// An empty result is a valid, successful outcome, never an error.
type SearchService interface {
	// ByGloss keeps records whose tokenised gloss line contains target
	// as an exact, case-sensitive element, preserving corpus order.
	ByGloss(ctx context.Context, corpus *domain.Corpus, target string) ([]domain.Record, error)

	// ByMorpheme is the identical contract over the morpheme line.
	ByMorpheme(ctx context.Context, corpus *domain.Corpus, target string) ([]domain.Record, error)
}
