package services

import (
	"context"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
	"github.com/glosskit/glosskit-cli/internal/core/ports/driving"
	"github.com/glosskit/glosskit-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService filters a corpus by exact token membership in the gloss
// or morpheme token sequence. Both operations are pure filters: they
// return a fresh slice in corpus order and never report "no matches" as
// an error.
type SearchService struct{}

// NewSearchService creates a new search service.
func NewSearchService() *SearchService {
	return &SearchService{}
}

// ByGloss keeps records whose tokenised gloss line contains target as
// an exact, case-sensitive element.
func (s *SearchService) ByGloss(ctx context.Context, corpus *domain.Corpus, target string) ([]domain.Record, error) {
	return s.search(ctx, corpus, target, domain.FieldGloss)
}

// ByMorpheme keeps records whose tokenised morpheme line contains
// target as an exact, case-sensitive element.
func (s *SearchService) ByMorpheme(ctx context.Context, corpus *domain.Corpus, target string) ([]domain.Record, error) {
	return s.search(ctx, corpus, target, domain.FieldMorpheme)
}

func (s *SearchService) search(ctx context.Context, corpus *domain.Corpus, target string, field domain.SearchField) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Token Search")
	logger.Debug("Field: %s, target: %q", field, target)

	results := []domain.Record{}
	for _, rec := range corpus.Records {
		var tokens []string
		switch field {
		case domain.FieldMorpheme:
			tokens = rec.MorphemeTokens()
		default:
			tokens = rec.GlossTokens()
		}
		// A missing line tokenises to an empty sequence and never matches.
		if domain.NewTokenSet(tokens).Contains(target) {
			results = append(results, rec)
		}
	}

	logger.Info("Matched %d of %d records", len(results), corpus.Len())
	return results, nil
}
