package tui

import (
	"github.com/glosskit/glosskit-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Corpus loads and parses corpora.
	Corpus driving.CorpusService

	// Search provides token search.
	Search driving.SearchService

	// CorpusPath is the corpus to browse.
	CorpusPath string
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Corpus == nil {
		return ErrMissingCorpusService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.CorpusPath == "" {
		return ErrMissingCorpusPath
	}
	return nil
}
