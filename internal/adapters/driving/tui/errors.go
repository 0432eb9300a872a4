package tui

import "errors"

// Sentinel errors for TUI construction.
var (
	// ErrMissingCorpusService indicates the corpus service port was not provided.
	ErrMissingCorpusService = errors.New("corpus service is required")

	// ErrMissingSearchService indicates the search service port was not provided.
	ErrMissingSearchService = errors.New("search service is required")

	// ErrMissingCorpusPath indicates no corpus path was provided.
	ErrMissingCorpusPath = errors.New("corpus path is required")
)
