package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for Glosskit resources.
const uriScheme = "glosskit://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource listing every record of the default corpus.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "records",
		Name:        "records",
		Description: "All parsed example records of the configured corpus",
		MIMEType:    "application/json",
	}, s.handleRecordsResource)

	// Template for one record by its corpus identifier.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "records/{ref}",
		Name:        "record",
		Description: "One example record, as verbatim WRIML block lines",
		MIMEType:    "text/plain",
	}, s.handleRecordResource)
}

// handleRecordsResource returns the full record listing.
func (s *Server) handleRecordsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	path, err := s.corpusPath("")
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	corpus, _, err := s.ports.Corpus.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	data, err := json.MarshalIndent(toRecordOutputs(corpus.Records), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling records: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRecordResource returns one record's verbatim block.
func (s *Server) handleRecordResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	ref := extractRef(req.Params.URI)
	if ref == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	path, err := s.corpusPath("")
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	corpus, _, err := s.ports.Corpus.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	// Duplicate identifiers pass through unchanged, so the first
	// record with the identifier wins here too.
	for i := range corpus.Records {
		if corpus.Records[i].Ref == ref {
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{{
					URI:      req.Params.URI,
					MIMEType: "text/plain",
					Text:     strings.Join(corpus.Records[i].RawLines, "\n"),
				}},
			}, nil
		}
	}
	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// extractRef pulls the record identifier out of a
// glosskit://records/{ref} URI.
func extractRef(uri string) string {
	rest, ok := strings.CutPrefix(uri, uriScheme+"records/")
	if !ok {
		return ""
	}
	return rest
}
