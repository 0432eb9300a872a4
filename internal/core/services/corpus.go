package services

import (
	"context"
	"fmt"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
	"github.com/glosskit/glosskit-cli/internal/core/ports/driven"
	"github.com/glosskit/glosskit-cli/internal/core/ports/driving"
	"github.com/glosskit/glosskit-cli/internal/logger"
	"github.com/glosskit/glosskit-cli/internal/wriml"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService loads corpus text through a CorpusSource and parses it
// into records. Each call rebuilds the corpus from scratch; nothing is
// cached between invocations.
type CorpusService struct {
	source driven.CorpusSource
}

// NewCorpusService creates a new corpus service.
func NewCorpusService(source driven.CorpusSource) *CorpusService {
	return &CorpusService{source: source}
}

// Load reads and fully parses the corpus at uri.
// Parse diagnostics are returned and echoed to the verbose log; the
// only fatal error is an unreadable source.
func (s *CorpusService) Load(ctx context.Context, uri string) (*domain.Corpus, []domain.Diagnostic, error) {
	logger.Section("Corpus Load")
	logger.Debug("Source: %s", uri)

	text, err := s.source.Load(ctx, uri)
	if err != nil {
		return nil, nil, fmt.Errorf("loading corpus: %w", err)
	}

	corpus, diags := wriml.Parse(text, uri)
	logger.Info("Parsed %d records, %d diagnostics", corpus.Len(), len(diags))
	for _, d := range diags {
		logger.Warn("%s", d)
	}

	return corpus, diags, nil
}
