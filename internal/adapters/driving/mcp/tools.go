package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/glosskit/glosskit-cli/internal/core/domain"
)

// SearchInput is the input schema for the token search tools.
type SearchInput struct {
	Target string `json:"target" jsonschema:"the exact case-sensitive token to look for"`
	Corpus string `json:"corpus,omitempty" jsonschema:"path to the WRIML corpus (default: the configured corpus)"`
}

// GroupInput is the input schema for the clustering tools.
type GroupInput struct {
	Corpus string `json:"corpus,omitempty" jsonschema:"path to the WRIML corpus (default: the configured corpus)"`
}

// RecordOutput represents one example record.
type RecordOutput struct {
	Ref         string `json:"ref,omitempty"`
	Context     string `json:"context,omitempty"`
	ContextType string `json:"context_type,omitempty"`
	Judgment    string `json:"judgment,omitempty"`
	Text        string `json:"text,omitempty"`
	Morphemes   string `json:"morphemes,omitempty"`
	Gloss       string `json:"gloss,omitempty"`
	Translation string `json:"translation,omitempty"`
	Literal     string `json:"literal,omitempty"`
}

// SearchOutput is the output schema for the token search tools.
type SearchOutput struct {
	Matches []RecordOutput `json:"matches"`
	Count   int            `json:"count"`
}

// GroupOutput represents one cluster.
type GroupOutput struct {
	Key     string         `json:"key,omitempty"`
	Members []RecordOutput `json:"members"`
}

// GroupsOutput is the output schema for the clustering tools.
type GroupsOutput struct {
	Groups []GroupOutput `json:"groups"`
	Count  int           `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "gloss_search",
		Description: "Find examples whose gloss line contains a token",
	}, s.handleGlossSearch)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "morpheme_search",
		Description: "Find examples whose morpheme line contains a token",
	}, s.handleMorphemeSearch)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "minimal_pairs",
		Description: "Cluster examples into minimal-pair groups by gloss tokens",
	}, s.handleMinimalPairs)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "gloss_variants",
		Description: "Cluster examples sharing an identical gloss line",
	}, s.handleGlossVariants)
}

func toRecordOutput(rec *domain.Record) RecordOutput {
	out := RecordOutput{
		Ref:         rec.Ref,
		Context:     rec.Context,
		Judgment:    rec.Judgment,
		Text:        rec.Text,
		Morphemes:   rec.Morphemes,
		Gloss:       rec.Gloss,
		Translation: rec.Translation,
		Literal:     rec.Literal,
	}
	if rec.ContextType != nil {
		out.ContextType = *rec.ContextType
	}
	return out
}

func toRecordOutputs(records []domain.Record) []RecordOutput {
	out := make([]RecordOutput, len(records))
	for i := range records {
		out[i] = toRecordOutput(&records[i])
	}
	return out
}

// handleGlossSearch handles the gloss_search tool invocation.
func (s *Server) handleGlossSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	return s.handleTokenSearch(ctx, input, domain.FieldGloss)
}

// handleMorphemeSearch handles the morpheme_search tool invocation.
func (s *Server) handleMorphemeSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	return s.handleTokenSearch(ctx, input, domain.FieldMorpheme)
}

func (s *Server) handleTokenSearch(
	ctx context.Context,
	input SearchInput,
	field domain.SearchField,
) (*mcp.CallToolResult, SearchOutput, error) {
	path, err := s.corpusPath(input.Corpus)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	corpus, _, err := s.ports.Corpus.Load(ctx, path)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	var matches []domain.Record
	if field == domain.FieldMorpheme {
		matches, err = s.ports.Search.ByMorpheme(ctx, corpus, input.Target)
	} else {
		matches, err = s.ports.Search.ByGloss(ctx, corpus, input.Target)
	}
	if err != nil {
		return nil, SearchOutput{}, err
	}

	return nil, SearchOutput{
		Matches: toRecordOutputs(matches),
		Count:   len(matches),
	}, nil
}

// handleMinimalPairs handles the minimal_pairs tool invocation.
func (s *Server) handleMinimalPairs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GroupInput,
) (*mcp.CallToolResult, GroupsOutput, error) {
	path, err := s.corpusPath(input.Corpus)
	if err != nil {
		return nil, GroupsOutput{}, err
	}

	corpus, _, err := s.ports.Corpus.Load(ctx, path)
	if err != nil {
		return nil, GroupsOutput{}, err
	}

	groups, err := s.ports.Grouping.MinimalPairs(ctx, corpus)
	if err != nil {
		return nil, GroupsOutput{}, err
	}

	output := GroupsOutput{Groups: make([]GroupOutput, len(groups)), Count: len(groups)}
	for i := range groups {
		seed := groups[i].Seed()
		output.Groups[i] = GroupOutput{
			Key:     seed.Ref,
			Members: toRecordOutputs(groups[i].Members),
		}
	}
	return nil, output, nil
}

// handleGlossVariants handles the gloss_variants tool invocation.
func (s *Server) handleGlossVariants(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GroupInput,
) (*mcp.CallToolResult, GroupsOutput, error) {
	path, err := s.corpusPath(input.Corpus)
	if err != nil {
		return nil, GroupsOutput{}, err
	}

	corpus, _, err := s.ports.Corpus.Load(ctx, path)
	if err != nil {
		return nil, GroupsOutput{}, err
	}

	classes, err := s.ports.Grouping.GlossVariants(ctx, corpus)
	if err != nil {
		return nil, GroupsOutput{}, err
	}

	output := GroupsOutput{Groups: make([]GroupOutput, len(classes)), Count: len(classes)}
	for i := range classes {
		output.Groups[i] = GroupOutput{
			Key:     classes[i].Key,
			Members: toRecordOutputs(classes[i].Members),
		}
	}
	return nil, output, nil
}
