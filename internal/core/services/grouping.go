package services

import (
	"context"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
	"github.com/glosskit/glosskit-cli/internal/core/ports/driving"
	"github.com/glosskit/glosskit-cli/internal/logger"
)

// Ensure GroupingService implements the interface.
var _ driving.GroupingService = (*GroupingService)(nil)

// GroupingService clusters a fully parsed corpus. Minimal-pair
// clustering is the quadratic stage (O(n²) seed comparisons in the
// worst case), so both methods check for cancellation before scanning.
type GroupingService struct{}

// NewGroupingService creates a new grouping service.
func NewGroupingService() *GroupingService {
	return &GroupingService{}
}

// MinimalPairs clusters records whose gloss token sets differ from a
// group seed's by exactly one token.
//
// Records are processed in corpus order. Each not-yet-assigned record
// opens a new group and every later unassigned record satisfying the
// minimal-pair relation with that seed joins it. Membership is tested
// against the seed only, never against other members, so two members of
// one group need not be minimal pairs of each other. That single
// linkage to seed reproduces the original analysis tool exactly; a
// linguistically stricter clustering would demand mutual pairwise
// minimality.
//
// A record with an empty gloss line still gets a group: its token set
// is empty and it pairs only with single-token glosses.
func (s *GroupingService) MinimalPairs(ctx context.Context, corpus *domain.Corpus) ([]domain.PairGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Minimal Pair Clustering")
	logger.Debug("Corpus: %d records", corpus.Len())

	n := corpus.Len()
	sets := make([]domain.TokenSet, n)
	for i := range corpus.Records {
		sets[i] = domain.NewTokenSet(corpus.Records[i].GlossTokens())
	}

	assigned := make([]bool, n)
	var groups []domain.PairGroup

	for i := 0; i < n; i++ {
		if assigned[i] {
			continue
		}
		assigned[i] = true
		group := domain.PairGroup{Members: []domain.Record{corpus.Records[i]}}

		for j := i + 1; j < n; j++ {
			if assigned[j] {
				continue
			}
			if sets[i].SymmetricDifferenceSize(sets[j]) == 1 {
				assigned[j] = true
				group.Members = append(group.Members, corpus.Records[j])
			}
		}
		groups = append(groups, group)
	}

	logger.Info("Formed %d groups", len(groups))
	return groups, nil
}

// GlossVariants partitions records into exact equivalence classes keyed
// by the whitespace-normalised gloss line. The empty string is a valid
// key, so records without a gloss line end up in one shared class
// rather than raising an error.
func (s *GroupingService) GlossVariants(ctx context.Context, corpus *domain.Corpus) ([]domain.GlossClass, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Gloss Identity Clustering")
	logger.Debug("Corpus: %d records", corpus.Len())

	index := make(map[string]int)
	var classes []domain.GlossClass

	for _, rec := range corpus.Records {
		key := domain.NormalizeGloss(rec.Gloss)
		i, ok := index[key]
		if !ok {
			i = len(classes)
			index[key] = i
			classes = append(classes, domain.GlossClass{Key: key})
		}
		classes[i].Members = append(classes[i].Members, rec)
	}

	logger.Info("Formed %d classes", len(classes))
	return classes, nil
}
