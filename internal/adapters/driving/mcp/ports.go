package mcp

import (
	"github.com/glosskit/glosskit-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Corpus loads and parses corpora.
	Corpus driving.CorpusService

	// Search provides token search.
	Search driving.SearchService

	// Grouping provides minimal-pair and gloss-identity clustering.
	Grouping driving.GroupingService

	// DefaultCorpus is the corpus path used when a tool call omits one.
	DefaultCorpus string
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
	if p.Grouping == nil {
		return ErrMissingGroupingService
	}
	return nil
}
