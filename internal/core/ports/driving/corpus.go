package driving

import (
	"context"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

// CorpusService loads and parses corpora.
type CorpusService interface {
	// Load reads the corpus at uri and parses it fully before
	// returning. Diagnostics report tolerated problems (malformed
	// blocks, missing required fields, duplicate identifiers); the
	// only fatal error is an unreadable source.
	Load(ctx context.Context, uri string) (*domain.Corpus, []domain.Diagnostic, error)
}
