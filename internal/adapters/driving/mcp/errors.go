// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Glosskit. It lets AI assistants search and cluster a local WRIML
// corpus through tools and read records as resources.
package mcp

import "errors"

// Wiring errors returned by Ports.Validate.
var (
	// ErrMissingCorpusService is returned when the corpus service is not provided.
	ErrMissingCorpusService = errors.New("mcp: corpus service is required")

	// ErrMissingSearchService is returned when the search service is not provided.
	ErrMissingSearchService = errors.New("mcp: search service is required")

	// ErrMissingGroupingService is returned when the grouping service is not provided.
	ErrMissingGroupingService = errors.New("mcp: grouping service is required")
)
